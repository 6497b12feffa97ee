package dto

import (
	"time"

	"github.com/relampago/backoffice-api/pkg/br"
)

// MaterialRequest datas em DD/MM/AAAA ou AAAA-MM-DD.
type MaterialRequest struct {
	Date        *string    `json:"date"`
	Quantity    *br.Number `json:"quantity"`
	ClientName  *string    `json:"client_name"`
	Responsible *string    `json:"responsible"`
	SampleURL   *string    `json:"sample_url"`
	ProtocolURL *string    `json:"protocol_url"`
	Notes       *string    `json:"notes"`
}

type MaterialResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Quantity    br.Number `json:"quantity"`
	ClientName  string    `json:"client_name"`
	Responsible string    `json:"responsible"`
	SampleURL   string    `json:"sample_url"`
	ProtocolURL string    `json:"protocol_url"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActionRequest entrada de ação promocional.
type ActionRequest struct {
	ClientID         *string    `json:"client_id"`
	ClientName       *string    `json:"client_name"`
	CompanyName      *string    `json:"company_name"`
	Types            []string   `json:"types"`
	StartDate        *string    `json:"start_date"`
	StartTime        *string    `json:"start_time"`
	EndDate          *string    `json:"end_date"`
	EndTime          *string    `json:"end_time"`
	DayPeriods       []string   `json:"day_periods"`
	MaterialQty      *br.Number `json:"material_qty"`
	MaterialPhotoURL *string    `json:"material_photo_url"`
	Supervisor       *string    `json:"supervisor"`
	Team             []string   `json:"team"`
	Notes            *string    `json:"notes"`
	Status           *string    `json:"status"`
}

type ActionResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id,omitempty"`
	ClientName       string    `json:"client_name"`
	CompanyName      string    `json:"company_name"`
	Types            []string  `json:"types"`
	StartDate        string    `json:"start_date"`
	StartTime        string    `json:"start_time"`
	EndDate          string    `json:"end_date"`
	EndTime          string    `json:"end_time"`
	DayPeriods       []string  `json:"day_periods"`
	MaterialQty      br.Number `json:"material_qty"`
	MaterialPhotoURL string    `json:"material_photo_url"`
	Supervisor       string    `json:"supervisor"`
	Team             []string  `json:"team"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ActionStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type VacancyRequest struct {
	IndicationName *string `json:"indication_name"`
	Role           *string `json:"role"`
	Client         *string `json:"client"`
	Contact        *string `json:"contact"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
}

type VacancyResponse struct {
	ID             string    `json:"id"`
	IndicationName string    `json:"indication_name"`
	Role           string    `json:"role"`
	Client         string    `json:"client"`
	Contact        string    `json:"contact"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ContactRequest formulário público do site.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactStatusRequest struct {
	Status string `json:"status"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
