package dto

// PageRequest paginação das listagens. Limit 0 devolve a lista inteira.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage corrige valores negativos e aplica o teto de Limit.
func (p *PageRequest) DefaultPage() {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > 500 {
		p.Limit = 500
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados da página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ListFilter filtros de query string comuns às listagens.
type ListFilter struct {
	PageRequest
	Q      string            `query:"q"`
	Status string            `query:"status"`
	From   string            `query:"de"` // DD/MM/AAAA ou AAAA-MM-DD
	To     string            `query:"ate"`
	Month  string            `query:"month"` // AAAA-MM
	Extra  map[string]string `query:"-"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo simples de confirmação.
type MessageResponse struct {
	Message string `json:"message"`
}

// Actor quem executa a operação (vem do token).
type Actor struct {
	UserID string
	Role   string
}
