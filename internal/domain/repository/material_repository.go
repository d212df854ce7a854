package repository

import (
	"context"
	"time"

	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// MaterialUpdate actualización parcial de los datos editables de un material.
// Un puntero nil significa "no tocar el campo"; un puntero a "" limpia el campo
// (solo válido para Ean).
type MaterialUpdate struct {
	Caducidad   *string
	Ean         *string
	Descripcion *string
}

// Vacia indica si no se pidió ningún cambio.
func (u MaterialUpdate) Vacia() bool {
	return u.Caducidad == nil && u.Ean == nil && u.Descripcion == nil
}

// MaterialRepository puerto de persistencia de materiales. Cada método es una
// operación atómica sobre el almacén; la composición transaccional de varias
// llamadas la aporta el TxRunner de la capa de aplicación.
//
// Los métodos Get* devuelven (nil, nil) cuando la fila no existe.
type MaterialRepository interface {
	GetByCodigo(ctx context.Context, codigo string) (*entity.Material, error)

	// Create persiste un material nuevo. Devuelve domain.ErrDuplicate si el
	// código ya existe (colisión de clave única).
	Create(ctx context.Context, m *entity.Material) error

	// UpdateDatos aplica una actualización parcial de caducidad/EAN/descripción.
	// Devuelve false si el código no existe.
	UpdateDatos(ctx context.Context, codigo string, u MaterialUpdate) (bool, error)

	// Asignar fija operario y fecha de asignación.
	Asignar(ctx context.Context, codigo, operarioNumero string, fecha time.Time) (bool, error)

	// Devolver limpia operario y fecha de asignación sin tocar el estado.
	Devolver(ctx context.Context, codigo string) (bool, error)

	// MarcarEstado fija el estado guardado (gastado/retirado) y limpia el operario.
	MarcarEstado(ctx context.Context, codigo, estado string) (bool, error)

	// Desprecintar limpia el estado guardado si era precintado (la derivación
	// pasa a depender solo de fecha y operario); no-op en cualquier otro estado.
	Desprecintar(ctx context.Context, codigo string) (bool, error)

	// Escanear pasa a escaneado solo desde gastado o retirado. Devuelve false
	// (sin error) si el material no estaba en uno de esos estados.
	Escanear(ctx context.Context, codigo string) (bool, error)

	// ListAll devuelve todos los materiales sin orden garantizado; el orden y
	// filtrado los hace la capa de aplicación con el estado derivado.
	ListAll(ctx context.Context) ([]*entity.Material, error)

	// ListParaEscanear devuelve los materiales gastados o retirados pendientes
	// de confirmación física, ordenados por fecha de registro ascendente.
	ListParaEscanear(ctx context.Context) ([]*entity.Material, error)
	CountParaEscanear(ctx context.Context) (int, error)
	CountEscaneados(ctx context.Context) (int, error)

	// DescripcionDistinta busca otra descripción no nula registrada para el EAN
	// en un material distinto de excluirCodigo. Devuelve ("", false) si no hay.
	DescripcionDistinta(ctx context.Context, ean, descripcion, excluirCodigo string) (string, bool, error)

	// ListByEanOperario devuelve los materiales de un operario con ese EAN,
	// excluyendo excluirCodigo, sin filtrar por estado (lo resuelve el detector).
	ListByEanOperario(ctx context.Context, ean, operarioNumero, excluirCodigo string) ([]*entity.Material, error)

	CountByOperario(ctx context.Context, operarioNumero string) (int, error)
	EstadosByOperario(ctx context.Context, operarioNumero string) (map[string]int, error)

	// DeleteByCodigo borrado administrativo, fuera del ciclo de vida.
	DeleteByCodigo(ctx context.Context, codigo string) (bool, error)

	// DeleteGastadosRetirados elimina los materiales gastados y retirados (purga
	// tras exportación). Los escaneados no se tocan: no forman parte del CSV de
	// exportación previa. Devuelve el número de filas eliminadas.
	DeleteGastadosRetirados(ctx context.Context) (int64, error)
}
