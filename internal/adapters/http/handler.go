package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/melih/craftbot/internal/core/domain"
	"github.com/melih/craftbot/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 5 * time.Second

// Handler serves the read-only ops endpoints next to the bot.
type Handler struct {
	service  ports.ContainerService
	gatherer prometheus.Gatherer
}

func NewHandler(service ports.ContainerService, gatherer prometheus.Gatherer) *Handler {
	return &Handler{service: service, gatherer: gatherer}
}

func (h *Handler) SetupRoutes(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	v1 := app.Group("/api/v1")
	v1.Get("/containers", h.ListContainers)
}

// Health reports whether the container engine answers.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	if err := h.service.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "healthy"})
}

type ContainerStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ListContainers returns every registry entry in order with its engine status.
func (h *Handler) ListContainers(c *fiber.Ctx) error {
	statuses, err := h.service.ListContainers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	containers := domain.Containers()
	result := make([]ContainerStatus, 0, len(containers))
	for _, known := range containers {
		result = append(result, ContainerStatus{
			Name:   known.String(),
			Status: statuses.StatusOf(known),
		})
	}
	return c.JSON(result)
}
