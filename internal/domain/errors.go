package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de ciclo de vida nunca deja un material a medio actualizar: cualquiera
// de estos errores implica que no hubo mutación.
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrDuplicate              = errors.New("ya existe un material con ese código")
	ErrCodigoInvalido         = errors.New("código interno inválido (7 dígitos)")
	ErrEanInvalido            = errors.New("EAN inválido (13 dígitos)")
	ErrFechaInvalida          = errors.New("fecha de caducidad inválida o ya vencida")
	ErrDescripcionObligatoria = errors.New("la descripción es obligatoria")
	ErrSinCambios             = errors.New("no se indicó ningún campo a actualizar")
	ErrMaterialCaducado       = errors.New("no se puede asignar: material caducado")
	ErrConfirmacionRequerida  = errors.New("el material vence pronto: confirma para asignar")
	ErrConflictoOperario      = errors.New("el operario ya tiene otro material activo con el mismo EAN")
	ErrConsistenciaEan        = errors.New("el EAN ya existe con otra descripción")
	ErrOperarioInactivo       = errors.New("operario inexistente o inactivo")
	ErrOperarioConMateriales  = errors.New("el operario tiene materiales asignados")
	ErrRolInvalido            = errors.New("rol inválido")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
)

// ConflictoDescripcion detalla un conflicto EAN↔descripción: la descripción ya
// registrada para el EAN que impide usar la nueva. Envuelve ErrConsistenciaEan
// para que errors.Is siga funcionando en los handlers.
type ConflictoDescripcion struct {
	Ean       string
	Existente string
	Propuesta string
}

func (e *ConflictoDescripcion) Error() string {
	return "EAN " + e.Ean + " ya existe con descripción '" + e.Existente + "'; no se puede usar '" + e.Propuesta + "'"
}

// Unwrap permite errors.Is(err, ErrConsistenciaEan).
func (e *ConflictoDescripcion) Unwrap() error { return ErrConsistenciaEan }
