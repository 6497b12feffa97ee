package dto

import "time"

// ClientRequest entrada de criação/edição de cliente. Na edição, campos nil ficam como estão.
type ClientRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Segment  *string `json:"segment"`
	Segmento *string `json:"segmento"` // nome usado nas planilhas antigas
	CPFCNPJ  *string `json:"cpf_cnpj"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zip_code"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Segment   string    `json:"segment"`
	CPFCNPJ   string    `json:"cpf_cnpj"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientStatsResponse contagens para os cards da tela de clientes.
type ClientStatsResponse struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	BySegment map[string]int `json:"by_segment"`
}

// ImportError linha rejeitada na importação (linha 1 é o cabeçalho).
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResult struct {
	ImportedCount int           `json:"imported_count"`
	Errors        []ImportError `json:"errors"`
}
