package dto

// CreateOperarioRequest alta de operario. Pin es opcional; si se indica se
// guarda hasheado con bcrypt.
type CreateOperarioRequest struct {
	Numero string `json:"numero"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"` // operario | almacenero | admin
	Pin    string `json:"pin,omitempty"`
}

// UpdateOperarioRequest cambio de nombre y rol.
type UpdateOperarioRequest struct {
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// OperarioResponse operario sin campos sensibles.
type OperarioResponse struct {
	Numero string `json:"numero"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

// EstadisticasOperario resumen de materiales de un operario.
type EstadisticasOperario struct {
	MaterialesAsignados int            `json:"materiales_asignados"`
	PorEstado           map[string]int `json:"por_estado"`
}
