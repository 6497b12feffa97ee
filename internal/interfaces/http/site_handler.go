package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/dto"
)

// Pinger verificação de saúde do banco; *pgxpool.Pool satisfaz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SiteHandler rotas públicas sem regra de negócio.
type SiteHandler struct {
	service string
	db      Pinger
	site    dto.SiteConfigResponse
}

// NewSiteHandler db nil (driver memory) sempre responde ok.
func NewSiteHandler(service string, db Pinger, site dto.SiteConfigResponse) *SiteHandler {
	return &SiteHandler{service: service, db: db, site: site}
}

// Health godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *SiteHandler) Health(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok", "service": h.service, "database": "ok"}
	if h.db == nil {
		status["database"] = "memory"
		return c.JSON(status)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}

// SiteConfig links usados pelo site público.
func (h *SiteHandler) SiteConfig(c *fiber.Ctx) error {
	return c.JSON(h.site)
}
