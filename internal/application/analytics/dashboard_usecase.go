package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	dommaterial "github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
)

// maxCaducadosCriticos recorte de la lista de caducados en el panel; el total
// completo viaja aparte en Alertas.TotalCaducados.
const maxCaducadosCriticos = 5

// DashboardUseCase agrega contadores por estado y cubos de alerta sobre toda
// la colección de materiales. Lectura pura: se recalcula en cada llamada contra
// la fecha actual, sin caché, de modo que dos llamadas separadas por un cambio
// de día pueden discrepar.
type DashboardUseCase struct {
	mats     repository.MaterialRepository
	ops      repository.OperarioRepository
	resolver dommaterial.Resolver

	now func() time.Time
}

// NewDashboardUseCase construye el agregador del panel.
func NewDashboardUseCase(mats repository.MaterialRepository, ops repository.OperarioRepository, resolver dommaterial.Resolver) *DashboardUseCase {
	return &DashboardUseCase{mats: mats, ops: ops, resolver: resolver, now: time.Now}
}

// Contadores recorre todos los materiales y devuelve los contadores por estado
// base, las alertas de caducidad (excluyendo gastados/retirados/escaneados) y
// las métricas agregadas. "vence prox" y "caducado" cuentan también los
// materiales en uso cuya caducidad cumple la condición, y "precintado" cuenta
// los precintados sin operario aunque su base sea otra.
func (uc *DashboardUseCase) Contadores(ctx context.Context) (*dto.ContadoresResponse, error) {
	todos, err := uc.mats.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ahora := uc.now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC)
	manana := hoy.AddDate(0, 0, 1)

	ctr := map[string]int{}
	var caducados, vencenHoy, vencenManana []dto.AlertaMaterial

	for _, m := range todos {
		base := uc.resolver.BaseState(m.Caducidad, m.OperarioNumero, m.Estado, ahora)
		ctr[base]++

		terminal := dommaterial.EsTerminal(m.Estado)
		cad, cadErr := dommaterial.ParseDate(m.Caducidad)

		if cadErr == nil && !terminal {
			switch {
			case cad.Before(hoy):
				caducados = append(caducados, uc.alerta(ctx, m, int(hoy.Sub(cad).Hours()/24)))
			case cad.Equal(hoy):
				vencenHoy = append(vencenHoy, uc.alerta(ctx, m, 0))
			case cad.Equal(manana):
				vencenManana = append(vencenManana, uc.alerta(ctx, m, 0))
			}

			// Solapamientos: un material en uso también cuenta en vence prox / caducado
			if cad.Before(hoy) && base != dommaterial.EstadoCaducado {
				ctr[dommaterial.EstadoCaducado]++
			}
			if !cad.Before(hoy) && !cad.After(hoy.AddDate(0, 0, uc.resolver.AvisoDias)) && base != dommaterial.EstadoVenceProx {
				ctr[dommaterial.EstadoVenceProx]++
			}
		}

		if m.Estado == dommaterial.EstadoPrecintado && m.OperarioNumero == "" {
			ctr[dommaterial.EstadoPrecintado]++
		}
	}

	totalMateriales := len(todos)
	totalActivos := ctr[dommaterial.EstadoDisponible] + ctr[dommaterial.EstadoEnUso] +
		ctr[dommaterial.EstadoVenceProx] + ctr[dommaterial.EstadoPrecintado]

	recorte := caducados
	if len(recorte) > maxCaducadosCriticos {
		recorte = recorte[:maxCaducadosCriticos]
	}

	return &dto.ContadoresResponse{
		Caducado:   ctr[dommaterial.EstadoCaducado],
		EnUso:      ctr[dommaterial.EstadoEnUso],
		VenceProx:  ctr[dommaterial.EstadoVenceProx],
		Disponible: ctr[dommaterial.EstadoDisponible],
		Precintado: ctr[dommaterial.EstadoPrecintado],
		Retirado:   ctr[dommaterial.EstadoRetirado],
		Gastado:    ctr[dommaterial.EstadoGastado],
		Escaneado:  ctr[dommaterial.EstadoEscaneado],

		TotalMateriales: totalMateriales,
		TotalActivos:    totalActivos,
		PorcentajeUso:   porcentajeUso(ctr[dommaterial.EstadoEnUso], totalActivos),

		Alertas: dto.Alertas{
			CaducadosCriticos: noNil(recorte),
			VencenHoy:         noNil(vencenHoy),
			VencenManana:      noNil(vencenManana),
			TotalCaducados:    len(caducados),
			TotalVencenHoy:    len(vencenHoy),
			TotalVencenManana: len(vencenManana),
		},
	}, nil
}

// porcentajeUso calcula en uso / activos * 100 redondeado a 1 decimal con
// aritmética decimal para evitar los artefactos binarios (0.30000000004).
func porcentajeUso(enUso, totalActivos int) float64 {
	if totalActivos == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(enUso)).
		Div(decimal.NewFromInt(int64(totalActivos))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := pct.Float64()
	return f
}

func (uc *DashboardUseCase) alerta(ctx context.Context, m *entity.Material, diasCaducado int) dto.AlertaMaterial {
	descripcion := m.Descripcion
	if descripcion == "" {
		descripcion = "Sin descripción"
	}
	operario := ""
	if m.OperarioNumero != "" {
		operario = m.OperarioNumero
		if o, err := uc.ops.GetByNumero(ctx, m.OperarioNumero); err == nil && o != nil {
			operario = o.Display()
		}
	}
	return dto.AlertaMaterial{
		Codigo:       m.Codigo,
		Descripcion:  descripcion,
		Caducidad:    m.Caducidad,
		DiasCaducado: diasCaducado,
		Operario:     operario,
	}
}

func noNil(s []dto.AlertaMaterial) []dto.AlertaMaterial {
	if s == nil {
		return []dto.AlertaMaterial{}
	}
	return s
}
