package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/usecase"
)

// MetricsHandler indicadores do painel.
type MetricsHandler struct {
	uc *usecase.MetricsUseCase
}

func NewMetricsHandler(uc *usecase.MetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// ServiceDistribution godoc
// @Summary      Distribuição de ações por categoria de serviço
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceDistributionItem
// @Router       /api/metrics/service-distribution [get]
func (h *MetricsHandler) ServiceDistribution(c *fiber.Ctx) error {
	out, err := h.uc.ServiceDistribution(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyCampaigns godoc
// @Summary      Ações por mês
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "quantidade de meses (padrão 6, máximo 24)"
// @Success      200  {array}  dto.MonthlyCampaignItem
// @Router       /api/metrics/monthly-campaigns [get]
func (h *MetricsHandler) MonthlyCampaigns(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyCampaigns(c.UserContext(), c.QueryInt("months", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Cards do painel
// @Description  Saldo e contas em aberto vêm zerados para papéis sem acesso ao financeiro.
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/metrics/dashboard [get]
func (h *MetricsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
