package runs

import (
	"surf-atlas/core/logger"
	"surf-atlas/core/utils"
	"surf-atlas/feature/runs/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
	group.Get("/:id/stats", h.HandleGetRunStats)
}

// HandleListRuns lists recorded reconciliation runs.
// @Summary List Runs
// @Description List recorded reconciliation runs, newest first.
// @Tags runs
// @Accept json
// @Produce json
// @Param limit query int false "Maximum rows to return (default 50)"
// @Success 200 {array} models.RunReport "Run Reports"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reports, err := h.service.List(c.Context(), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if reports == nil {
		reports = []models.RunReport{}
	}

	return c.JSON(reports)
}

// HandleGetRun returns a single run report.
// @Summary Get Run
// @Description Get a single reconciliation run report by ID.
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.RunReport "Run Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	report, err := h.service.Get(c.Context(), id)
	if err != nil {
		l.Error("Run lookup failed", zap.Error(err), zap.String("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "run not found",
		})
	}

	return c.JSON(report)
}

// HandleGetRunStats returns the merge counters of one run.
// @Summary Get Run Stats
// @Description Get the per-pass merge counters of a reconciliation run.
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} reconcile.Stats "Merge Statistics"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs/{id}/stats [get]
func (h *Handler) HandleGetRunStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	report, err := h.service.Get(c.Context(), id)
	if err != nil {
		l.Error("Run lookup failed", zap.Error(err), zap.String("id", id))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "run not found",
		})
	}

	return c.JSON(StatsFor(report))
}
