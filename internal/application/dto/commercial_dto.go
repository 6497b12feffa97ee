package dto

import (
	"time"

	"github.com/relampago/backoffice-api/pkg/br"
)

type CommercialRecordRequest struct {
	Name    *string    `json:"name"`
	Company *string    `json:"company"`
	Phone   *string    `json:"phone"`
	Email   *string    `json:"email"`
	Stage   *string    `json:"stage"`
	Value   *br.Number `json:"value"`
	Source  *string    `json:"source"`
	Notes   *string    `json:"notes"`
}

type CommercialRecordResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Stage     string    `json:"stage"`
	Value     br.Number `json:"value"`
	Source    string    `json:"source"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItemDTO struct {
	Description string    `json:"description"`
	Quantity    br.Number `json:"quantity"`
	UnitValue   br.Number `json:"unit_value"`
	Subtotal    br.Number `json:"subtotal"`
}

// OrderRequest total zero ou ausente é a soma dos itens.
type OrderRequest struct {
	Client      *string        `json:"client"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	Date        *string        `json:"date"`
	Items       []OrderItemDTO `json:"items"`
	Total       *br.Number     `json:"total"`
}

type OrderResponse struct {
	ID          string         `json:"id"`
	Client      string         `json:"client"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Date        string         `json:"date"`
	Items       []OrderItemDTO `json:"items"`
	Total       br.Number      `json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type OrderStatusTotal struct {
	Status string    `json:"status"`
	Count  int       `json:"count"`
	Total  br.Number `json:"total"`
}

type OrderSummaryResponse struct {
	Count    int                `json:"count"`
	Total    br.Number          `json:"total"`
	ByStatus []OrderStatusTotal `json:"by_status"`
}
