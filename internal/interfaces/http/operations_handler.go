package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
)

// ─── Materiais ────────────────────────────────────────────────────────────────

// MaterialHandler distribuição de materiais.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiais distribuídos
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "busca por cliente ou responsável"
// @Param        de     query  string  false  "data inicial (DD/MM/AAAA ou AAAA-MM-DD)"
// @Param        ate    query  string  false  "data final"
// @Param        month  query  string  false  "AAAA-MM"
// @Success      200  {object}  dto.ListResponse[dto.MaterialResponse]
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

// ─── Ações ────────────────────────────────────────────────────────────────────

// ActionHandler ações promocionais.
type ActionHandler struct {
	uc *usecase.ActionUseCase
}

func NewActionHandler(uc *usecase.ActionUseCase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

// List godoc
// @Summary      Listar ações
// @Tags         actions
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "busca"
// @Param        status     query  string  false  "em aberto, em processo, finalizado, cancelado"
// @Param        type       query  string  false  "tipo de ação"
// @Param        client_id  query  string  false  "cliente vinculado"
// @Success      200  {object}  dto.ListResponse[dto.ActionResponse]
// @Router       /api/actions [get]
func (h *ActionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ActionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ActionHandler) Create(c *fiber.Ctx) error {
	var in dto.ActionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ActionHandler) Update(c *fiber.Ctx) error {
	var in dto.ActionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ActionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

func (h *ActionHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ─── Vagas ────────────────────────────────────────────────────────────────────

type VacancyHandler struct {
	uc *usecase.VacancyUseCase
}

func NewVacancyHandler(uc *usecase.VacancyUseCase) *VacancyHandler {
	return &VacancyHandler{uc: uc}
}

func (h *VacancyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *VacancyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	var in dto.VacancyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	var in dto.VacancyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *VacancyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}
