package dto

// AlertaMaterial material con caducidad crítica para los widgets del panel.
type AlertaMaterial struct {
	Codigo       string `json:"codigo"`
	Descripcion  string `json:"descripcion"`
	Caducidad    string `json:"caducidad"`
	DiasCaducado int    `json:"dias_caducado,omitempty"`
	Operario     string `json:"operario,omitempty"`
}

// Alertas agrupaciones de aviso del panel. CaducadosCriticos va recortada a los
// primeros elementos; los totales llevan la cuenta completa.
type Alertas struct {
	CaducadosCriticos []AlertaMaterial `json:"caducados_criticos"`
	VencenHoy         []AlertaMaterial `json:"vencen_hoy"`
	VencenManana      []AlertaMaterial `json:"vencen_manana"`
	TotalCaducados    int              `json:"total_caducados"`
	TotalVencenHoy    int              `json:"total_vencen_hoy"`
	TotalVencenManana int              `json:"total_vencen_manana"`
}

// ContadoresResponse contadores por estado más métricas agregadas.
// Se recalcula en cada llamada; no hay caché.
type ContadoresResponse struct {
	Caducado   int `json:"caducado"`
	EnUso      int `json:"en uso"`
	VenceProx  int `json:"vence prox"`
	Disponible int `json:"disponible"`
	Precintado int `json:"precintado"`
	Retirado   int `json:"retirado"`
	Gastado    int `json:"gastado"`
	Escaneado  int `json:"escaneado"`

	TotalMateriales int     `json:"total_materiales"`
	TotalActivos    int     `json:"total_activos"`
	PorcentajeUso   float64 `json:"porcentaje_uso"` // en uso / activos * 100, 1 decimal

	Alertas Alertas `json:"alertas"`
}
