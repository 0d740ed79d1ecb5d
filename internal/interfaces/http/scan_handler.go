package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
)

// ScanHandler registra conferencias de materiales por lectura de QR.
type ScanHandler struct {
	uc *usecase.MaterialUseCase
}

// NewScanHandler construye el handler de conferencia.
func NewScanHandler(uc *usecase.MaterialUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan godoc
// @Summary      Registrar lectura de QR (conferencia)
// @Description  Reubica el material al sector/sala donde ocurrió el escaneo y lo marca como conferido.
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "qr_hash, sector, room"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ConfirmScan(c.Context(), in)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(dto.ScanResponse{
		Message:  "conferencia registrada",
		Material: *out,
	})
}
