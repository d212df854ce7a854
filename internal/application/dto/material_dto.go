package dto

// RegisterMaterialRequest alta de un material precintado.
// Caducidad acepta entrada humana: ddmmaa, ddmmaaaa, con separadores o ISO.
type RegisterMaterialRequest struct {
	Codigo      string `json:"codigo"`
	Caducidad   string `json:"caducidad"`
	Ean         string `json:"ean,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

// UpdateMaterialRequest actualización parcial; nil = no tocar el campo.
// Ean admite "" para borrar el EAN; la descripción no puede quedar vacía.
type UpdateMaterialRequest struct {
	Caducidad   *string `json:"caducidad"`
	Ean         *string `json:"ean"`
	Descripcion *string `json:"descripcion"`
}

// AssignMaterialRequest asignación directa a un operario. Confirmado repite la
// petición aceptando el aviso de "vence pronto".
type AssignMaterialRequest struct {
	OperarioNumero string `json:"operario_numero"`
	Confirmado     bool   `json:"confirmado"`
}

// MaterialView vista de un material con su estado derivado a la fecha de consulta.
type MaterialView struct {
	ID            string `json:"id"`
	Codigo        string `json:"codigo"`
	Ean           string `json:"ean"`         // "-" si no tiene
	Descripcion   string `json:"descripcion"` // "-" si no tiene
	Caducidad     string `json:"caducidad"`
	Estado        string `json:"estado"`       // estado base
	EstadoLabel   string `json:"estado_label"` // con prefijo P· si precintado
	AsignadoAt    string `json:"asignado_at"`  // dd/mm/aaaa HH:MM:SS o "-"
	Operario      string `json:"operario"`     // "numero - nombre" o "-"
	EstadoCritico string `json:"estado_critico,omitempty"`
}

// QueueStepResponse paso de la cola de escaneo: siguiente material y pendientes.
type QueueStepResponse struct {
	Material   *MaterialView `json:"material"` // nil si la cola está vacía
	Pendientes int           `json:"pendientes"`
	Escaneados int           `json:"escaneados"`
}

// ScanConfirmResponse resultado de confirmar el escaneo de un material.
type ScanConfirmResponse struct {
	Avanzado   bool          `json:"avanzado"` // false = el material no estaba gastado/retirado
	Siguiente  *MaterialView `json:"siguiente"`
	Pendientes int           `json:"pendientes"`
}

// DescripcionEanResponse respuesta del autocompletado de descripción por EAN.
type DescripcionEanResponse struct {
	Descripcion string `json:"descripcion"`
	Existe      bool   `json:"existe"`
}

// CheckCodigoResponse disponibilidad de un código interno.
type CheckCodigoResponse struct {
	Codigo     string `json:"codigo"`
	Disponible bool   `json:"disponible"`
}
