package entity

import "time"

const (
	ContactStatusNovo       = "novo"
	ContactStatusLido       = "lido"
	ContactStatusRespondido = "respondido"
)

// Contact mensagem enviada pelo formulário do site.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
	Status    string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
