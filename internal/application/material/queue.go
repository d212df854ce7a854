package material

import (
	"context"
	"time"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// ScanQueueUseCase cola FIFO de confirmación física: los materiales gastados o
// retirados, por orden de registro, esperan su escaneo de baja. No guarda
// estado propio: es una consulta viva más un paso mutador (Confirmar), con lo
// que sobrevive a reinicios sin reconstrucción. Entre Next y Confirmar hay una
// ventana de carrera si escanean dos sesiones a la vez; se asume un único
// consumidor (el puesto de escaneo) y el UPDATE condicionado de Escanear hace
// inocuo el doble servicio.
type ScanQueueUseCase struct {
	mats      repository.MaterialRepository
	lifecycle *LifecycleUseCase
	resolver  dommaterial.Resolver

	now func() time.Time
}

// NewScanQueueUseCase construye la cola sobre el repositorio de lectura y el
// motor de ciclo de vida para el paso mutador. No necesita operarios: marcar
// gastado/retirado desasigna, así que las vistas de la cola nunca llevan uno.
func NewScanQueueUseCase(mats repository.MaterialRepository, lifecycle *LifecycleUseCase, resolver dommaterial.Resolver) *ScanQueueUseCase {
	return &ScanQueueUseCase{
		mats:      mats,
		lifecycle: lifecycle,
		resolver:  resolver,
		now:       time.Now,
	}
}

// Next devuelve el siguiente material pendiente de escanear (o Material nil si
// la cola está vacía) junto con los contadores de pendientes y escaneados.
func (uc *ScanQueueUseCase) Next(ctx context.Context) (*dto.QueueStepResponse, error) {
	pendientes, err := uc.mats.CountParaEscanear(ctx)
	if err != nil {
		return nil, err
	}
	escaneados, err := uc.mats.CountEscaneados(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.QueueStepResponse{Pendientes: pendientes, Escaneados: escaneados}
	if pendientes == 0 {
		return resp, nil
	}

	lista, err := uc.mats.ListParaEscanear(ctx)
	if err != nil {
		return nil, err
	}
	if len(lista) == 0 {
		// La cuenta y la lista pueden discrepar si otro consumidor confirmó en medio
		resp.Pendientes = 0
		return resp, nil
	}
	v := vista(uc.resolver, lista[0], nil, uc.now())
	resp.Material = &v
	return resp, nil
}

// Pendientes devuelve cuántos materiales quedan por escanear.
func (uc *ScanQueueUseCase) Pendientes(ctx context.Context) (int, error) {
	return uc.mats.CountParaEscanear(ctx)
}

// Confirmar escanea el material y reevalúa la cola. Si el material ya no
// estaba gastado/retirado, avanzado=false y la cola no cambia.
func (uc *ScanQueueUseCase) Confirmar(ctx context.Context, codigo string) (*dto.ScanConfirmResponse, error) {
	avanzado, err := uc.lifecycle.Escanear(ctx, codigo)
	if err != nil {
		return nil, err
	}
	paso, err := uc.Next(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ScanConfirmResponse{
		Avanzado:   avanzado,
		Siguiente:  paso.Material,
		Pendientes: paso.Pendientes,
	}, nil
}
