package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/relampago/backoffice-api/internal/application/dto"
)

// Filtros categóricos aceitos na query string além dos comuns.
var extraFilterKeys = []string{"type", "client", "client_id", "stage", "role", "category", "segment", "plate", "fuel_type"}

// listFilter lê q, status, de, ate, month, limit, offset e os filtros extras.
func listFilter(c *fiber.Ctx) dto.ListFilter {
	f := dto.ListFilter{
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 0),
			Offset: c.QueryInt("offset", 0),
		},
		Q:      strings.TrimSpace(c.Query("q")),
		Status: strings.TrimSpace(c.Query("status")),
		From:   strings.TrimSpace(c.Query("de")),
		To:     strings.TrimSpace(c.Query("ate")),
		Month:  strings.TrimSpace(c.Query("month")),
	}
	for _, k := range extraFilterKeys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			if f.Extra == nil {
				f.Extra = make(map[string]string)
			}
			f.Extra[k] = v
		}
	}
	return f
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
