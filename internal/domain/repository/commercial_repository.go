package repository

import "github.com/relampago/backoffice-api/internal/domain/entity"

type CommercialRecordRepository interface {
	CRUD[entity.CommercialRecord]
}

// OrderRepository persiste a ordem com seus itens.
type OrderRepository interface {
	CRUD[entity.Order]
}
