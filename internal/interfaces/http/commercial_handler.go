package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
)

// CommercialHandler funil comercial e ordens de serviço.
type CommercialHandler struct {
	uc *usecase.CommercialUseCase
}

func NewCommercialHandler(uc *usecase.CommercialUseCase) *CommercialHandler {
	return &CommercialHandler{uc: uc}
}

func (h *CommercialHandler) ListRecords(c *fiber.Ctx) error {
	out, err := h.uc.ListRecords(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommercialHandler) GetRecord(c *fiber.Ctx) error {
	out, err := h.uc.GetRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommercialHandler) CreateRecord(c *fiber.Ctx) error {
	var in dto.CommercialRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateRecord(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CommercialHandler) UpdateRecord(c *fiber.Ctx) error {
	var in dto.CommercialRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRecord(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommercialHandler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.uc.DeleteRecord(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

func (h *CommercialHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommercialHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOrder godoc
// @Summary      Criar ordem de serviço
// @Description  Sem total (ou total zero) o valor é a soma de quantidade × valor unitário dos itens.
// @Tags         commercial
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "ordem"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/commercial/orders [post]
func (h *CommercialHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrder(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CommercialHandler) UpdateOrder(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOrder(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommercialHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

func (h *CommercialHandler) OrderSummary(c *fiber.Ctx) error {
	out, err := h.uc.OrderSummary(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
