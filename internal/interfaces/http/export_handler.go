package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/relampago/backoffice-api/internal/application/export"
)

// ExportHandler download dos datasets em CSV, JSON ou PDF.
type ExportHandler struct {
	uc *export.ExportUseCase
}

func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar dataset
// @Description  Aceita os mesmos filtros da listagem correspondente. disposition=inline abre o PDF no navegador.
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/json
// @Produce      application/pdf
// @Param        dataset      path   string  true   "clients, materials, actions, vacancies, vehicles, fuel-logs, commercial-records, commercial-orders, transactions, contas-pagar, contas-receber, users"
// @Param        format       query  string  false  "csv (padrão), json ou pdf"
// @Param        disposition  query  string  false  "attachment (padrão) ou inline"
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/{dataset} [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format := export.Format(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	file, err := h.uc.Export(c.UserContext(), actorFrom(c), c.Params("dataset"), format, listFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	disposition := "attachment"
	if strings.EqualFold(c.Query("disposition"), "inline") {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename="%s"`, disposition, file.Name))
	return c.Send(file.Data)
}
