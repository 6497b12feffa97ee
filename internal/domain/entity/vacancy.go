package entity

import "time"

const (
	VacancyStatusAberta    = "Aberta"
	VacancyStatusAvaliacao = "Em avaliação"
	VacancyStatusFechada   = "Fechada"
)

// Vacancy é uma indicação para vaga (quem indicou, cargo, cliente solicitante).
type Vacancy struct {
	ID             string
	IndicationName string
	Role           string
	Client         string
	Contact        string
	Notes          string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
