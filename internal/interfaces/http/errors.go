package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/domain"
)

// respondError traduce los errores del dominio a HTTP. Los errores de
// validación son 400, los de ausencia 404, los de colisión de estado 409 y el
// resto 500 sin filtrar el detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	var conflicto *domain.ConflictoDescripcion
	if errors.As(err, &conflicto) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONSISTENCIA_EAN",
			Message: "el EAN " + conflicto.Ean + " ya tiene la descripción «" + conflicto.Existente + "»",
		})
	}

	switch {
	case errors.Is(err, domain.ErrCodigoInvalido):
		return bad(c, "CODIGO_INVALIDO", "el código debe tener 7 dígitos")
	case errors.Is(err, domain.ErrEanInvalido):
		return bad(c, "EAN_INVALIDO", "el EAN debe tener 13 dígitos")
	case errors.Is(err, domain.ErrFechaInvalida):
		return bad(c, "FECHA_INVALIDA", "fecha de caducidad inválida o en el pasado")
	case errors.Is(err, domain.ErrDescripcionObligatoria):
		return bad(c, "DESCRIPCION_OBLIGATORIA", "la descripción es obligatoria")
	case errors.Is(err, domain.ErrSinCambios):
		return bad(c, "SIN_CAMBIOS", "no se indicó ningún cambio")
	case errors.Is(err, domain.ErrRolInvalido):
		return bad(c, "ROL_INVALIDO", "rol desconocido")
	case errors.Is(err, domain.ErrOperarioInactivo):
		return bad(c, "OPERARIO_INACTIVO", "operario inexistente o dado de baja")
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "el código ya existe"})
	case errors.Is(err, domain.ErrMaterialCaducado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MATERIAL_CADUCADO", Message: "un material caducado no se puede asignar"})
	case errors.Is(err, domain.ErrConfirmacionRequerida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRMACION_REQUERIDA", Message: "el material vence pronto; repita con confirmado=true"})
	case errors.Is(err, domain.ErrConflictoOperario):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICTO_OPERARIO", Message: "el operario ya tiene un material activo con ese EAN"})
	case errors.Is(err, domain.ErrConsistenciaEan):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONSISTENCIA_EAN", Message: "descripción en conflicto con el EAN"})
	case errors.Is(err, domain.ErrOperarioConMateriales):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OPERARIO_CON_MATERIALES", Message: "el operario tiene materiales asignados"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "error interno"})
}

func bad(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
