package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
	"github.com/jhoicas/materiales-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase acceso por número de operario. El núcleo de materiales no sabe
// de permisos: aquí solo se emite el token con el rol y el middleware HTTP lo
// aplica en cada ruta.
type AuthUseCase struct {
	ops    repository.OperarioRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(ops repository.OperarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{ops: ops, jwtCfg: jwtCfg}
}

// Login autentica por número de operario. Si el operario tiene PIN configurado
// se verifica contra su hash bcrypt; sin PIN configurado basta el número (los
// operarios de planta entran sin contraseña). Genera un JWT con el rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	numero := strings.TrimSpace(in.Numero)
	if numero == "" {
		return nil, domain.ErrUnauthorized
	}
	o, err := uc.ops.GetByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if o == nil || !o.Activo {
		return nil, domain.ErrOperarioInactivo
	}
	if o.PinHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(o.PinHash), []byte(in.Pin)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, o.Numero, o.Nombre, o.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Operario: dto.OperarioResponse{
			Numero: o.Numero,
			Nombre: o.Nombre,
			Rol:    o.Rol,
			Activo: o.Activo,
		},
	}, nil
}
