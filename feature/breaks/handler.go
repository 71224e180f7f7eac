package breaks

import (
	"surf-atlas/core/logger"
	"surf-atlas/core/utils"
	"surf-atlas/feature/breaks/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the break catalogue.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalogue routes. The countries route is
// registered before the id route so it is not captured by the parameter.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/breaks")
	group.Get("/", h.HandleListBreaks)
	group.Get("/countries", h.HandleListCountries)
	group.Get("/:id", h.HandleGetBreak)
}

// HandleListBreaks lists catalogued surf breaks.
// @Summary List Surf Breaks
// @Description List catalogued surf breaks, optionally filtered by country or name.
// @Tags breaks
// @Accept json
// @Produce json
// @Param country query string false "Exact match on the standardized country name"
// @Param q query string false "Substring match on the break name"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.SurfBreak "Surf Breaks"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /breaks [get]
func (h *Handler) HandleListBreaks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := models.ListFilter{
		Country: c.Query("country"),
		Query:   c.Query("q"),
		Limit:   utils.ToInt(c.Query("limit")),
		Offset:  utils.ToInt(c.Query("offset")),
	}

	items, err := h.service.List(c.Context(), filter)
	if err != nil {
		l.Error("Break listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if items == nil {
		items = []models.SurfBreak{}
	}

	return c.JSON(items)
}

// HandleListCountries counts catalogued breaks per country.
// @Summary List Countries
// @Description Count catalogued surf breaks per country, busiest first.
// @Tags breaks
// @Accept json
// @Produce json
// @Success 200 {array} models.CountryCount "Country Counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /breaks/countries [get]
func (h *Handler) HandleListCountries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	counts, err := h.service.Countries(c.Context())
	if err != nil {
		l.Error("Country aggregation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if counts == nil {
		counts = []models.CountryCount{}
	}

	return c.JSON(counts)
}

// HandleGetBreak returns a single surf break.
// @Summary Get Surf Break
// @Description Get a single catalogued surf break by ID.
// @Tags breaks
// @Accept json
// @Produce json
// @Param id path int true "Break ID"
// @Success 200 {object} models.SurfBreak "Surf Break"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /breaks/{id} [get]
func (h *Handler) HandleGetBreak(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id := utils.ToInt(c.Params("id"))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be a positive integer",
		})
	}

	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		l.Error("Break lookup failed", zap.Error(err), zap.Int("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "break not found",
		})
	}

	return c.JSON(item)
}
