package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
)

// FleetHandler veículos e abastecimentos.
type FleetHandler struct {
	uc *usecase.FleetUseCase
}

func NewFleetHandler(uc *usecase.FleetUseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

func (h *FleetHandler) ListVehicles(c *fiber.Ctx) error {
	out, err := h.uc.ListVehicles(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FleetHandler) GetVehicle(c *fiber.Ctx) error {
	out, err := h.uc.GetVehicle(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateVehicle godoc
// @Summary      Cadastrar veículo
// @Tags         fleet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VehicleRequest  true  "veículo"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "placa já cadastrada"
// @Router       /api/fleet/vehicles [post]
func (h *FleetHandler) CreateVehicle(c *fiber.Ctx) error {
	var in dto.VehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateVehicle(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FleetHandler) UpdateVehicle(c *fiber.Ctx) error {
	var in dto.VehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateVehicle(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FleetHandler) DeleteVehicle(c *fiber.Ctx) error {
	if err := h.uc.DeleteVehicle(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

// ListFuelLogs godoc
// @Summary      Listar abastecimentos
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Param        plate      query  string  false  "placa"
// @Param        fuel_type  query  string  false  "combustível"
// @Param        de         query  string  false  "data inicial"
// @Param        ate        query  string  false  "data final"
// @Param        month      query  string  false  "AAAA-MM"
// @Success      200  {object}  dto.ListResponse[dto.FuelLogResponse]
// @Router       /api/fleet/fuel-logs [get]
func (h *FleetHandler) ListFuelLogs(c *fiber.Ctx) error {
	out, err := h.uc.ListFuelLogs(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FleetHandler) GetFuelLog(c *fiber.Ctx) error {
	out, err := h.uc.GetFuelLog(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FleetHandler) CreateFuelLog(c *fiber.Ctx) error {
	var in dto.FuelLogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateFuelLog(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FleetHandler) UpdateFuelLog(c *fiber.Ctx) error {
	var in dto.FuelLogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateFuelLog(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FleetHandler) DeleteFuelLog(c *fiber.Ctx) error {
	if err := h.uc.DeleteFuelLog(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return noContent(c)
}

// FuelSummary godoc
// @Summary      Resumo de abastecimentos
// @Description  Litros, valor, preço médio, distância e km/l no recorte filtrado.
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FuelSummaryResponse
// @Router       /api/fleet/fuel-logs/summary [get]
func (h *FleetHandler) FuelSummary(c *fiber.Ctx) error {
	out, err := h.uc.FuelSummary(c.UserContext(), listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
