package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/analytics"
	"github.com/jhoicas/materiales-api/internal/application/dto"
)

// DashboardHandler estadísticas y proyecciones de ubicación (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas generales de conferencia
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sectors godoc
// @Summary      Sectores únicos registrados
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/sectors [get]
func (h *DashboardHandler) Sectors(c *fiber.Ctx) error {
	out, err := h.uc.ListSectors(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Rooms godoc
// @Summary      Salas de un sector
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Param        sector  path  string  true  "Sector"
// @Success      200  {array}  string
// @Router       /api/sectors/{sector}/rooms [get]
func (h *DashboardHandler) Rooms(c *fiber.Ctx) error {
	sector, err := decodeParam(c, "sector")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "sector inválido"})
	}
	out, err := h.uc.ListRooms(c.Context(), sector)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MaterialsAt godoc
// @Summary      Materiales de un sector y sala
// @Tags         sectors
// @Security     Bearer
// @Produce      json
// @Param        sector  path  string  true  "Sector"
// @Param        room    path  string  true  "Sala"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/sectors/{sector}/rooms/{room}/materials [get]
func (h *DashboardHandler) MaterialsAt(c *fiber.Ctx) error {
	sector, err := decodeParam(c, "sector")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "sector inválido"})
	}
	room, err := decodeParam(c, "room")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "sala inválida"})
	}
	out, err := h.uc.ListMaterialsAt(c.Context(), sector, room)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// decodeParam lee un path param decodificando el percent-encoding
// (los sectores suelen llevar espacios: "Almac%C3%A9n%20Central").
func decodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
