package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
)

// TransactionHandler livro-caixa (admin e manager).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar lançamentos
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        type      query  string  false  "entrada, saida ou despesa"
// @Param        status    query  string  false  "Pago, Pendente ou Cancelado"
// @Param        category  query  string  false  "categoria"
// @Param        de        query  string  false  "data inicial"
// @Param        ate       query  string  false  "data final"
// @Success      200  {object}  dto.ListResponse[dto.TransactionResponse]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Replace PUT: substitui o lançamento inteiro (data e valor obrigatórios).
func (h *TransactionHandler) Replace(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Replace(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patch PATCH: altera só os campos enviados.
func (h *TransactionHandler) Patch(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Patch(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

// Summary godoc
// @Summary      Resumo do livro-caixa
// @Description  saldo = entradas - saídas - despesas; cancelados ficam de fora.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LedgerSummaryResponse
// @Router       /api/transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AccountHandler contas a pagar ou a receber, conforme kind.
type AccountHandler struct {
	uc   *usecase.AccountUseCase
	kind string
}

func NewAccountHandler(uc *usecase.AccountUseCase, kind string) *AccountHandler {
	return &AccountHandler{uc: uc, kind: kind}
}

// List godoc
// @Summary      Listar contas
// @Description  O filtro status usa o status derivado (pago, pendente, vencido, cancelado).
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "status derivado"
// @Success      200  {object}  dto.ListResponse[dto.AccountEntryResponse]
// @Router       /api/contas-pagar [get]
// @Router       /api/contas-receber [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), h.kind, listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), h.kind, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), h.kind, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.AccountEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), h.kind, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), h.kind, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

func (h *AccountHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), h.kind, listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
