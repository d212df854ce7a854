package dto

// LoginRequest acceso por número de operario. El PIN solo se exige si el
// operario tiene uno configurado.
type LoginRequest struct {
	Numero string `json:"numero"`
	Pin    string `json:"pin,omitempty"`
}

// LoginResponse token JWT y datos del operario autenticado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Operario OperarioResponse `json:"operario"`
}
