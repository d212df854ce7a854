package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/importer"
)

// ImportHandler importaciones masivas por CSV (multipart, campo "file").
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportOperarios godoc
// @Summary      Importar operarios desde CSV
// @Description  Formato numero;nombre[;rol[;activo]]. Acepta UTF-8 y Latin-1, separador coma o punto y coma.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "fichero CSV"
// @Success      200   {object}  importer.Resultado
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/operarios [post]
func (h *ImportHandler) ImportOperarios(c *fiber.Ctx) error {
	f, err := h.abrirFichero(c)
	if err != nil {
		return bad(c, "INVALID_FILE", "se espera un fichero CSV en el campo 'file'")
	}
	defer f.Close()
	res, err := h.uc.ImportOperarios(c.Context(), f)
	if err != nil {
		return bad(c, "INVALID_FILE", err.Error())
	}
	return c.JSON(res)
}

// ImportMateriales godoc
// @Summary      Importar materiales desde CSV
// @Description  Formato codigo;caducidad[;ean[;descripcion]]. Cada fila pasa por el alta normal.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "fichero CSV"
// @Success      200   {object}  importer.Resultado
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/materiales [post]
func (h *ImportHandler) ImportMateriales(c *fiber.Ctx) error {
	f, err := h.abrirFichero(c)
	if err != nil {
		return bad(c, "INVALID_FILE", "se espera un fichero CSV en el campo 'file'")
	}
	defer f.Close()
	res, err := h.uc.ImportMateriales(c.Context(), f)
	if err != nil {
		return bad(c, "INVALID_FILE", err.Error())
	}
	return c.JSON(res)
}

func (h *ImportHandler) abrirFichero(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	return fh.Open()
}
