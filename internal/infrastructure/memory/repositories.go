package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
)

type ClientRepo struct{ *Store[entity.Client] }

func NewClientRepo() *ClientRepo {
	return &ClientRepo{NewStore(func(c *entity.Client) string { return c.ID })}
}

func (r *ClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	return r.find(func(c *entity.Client) bool { return strings.EqualFold(c.Email, email) }), nil
}

type UserRepo struct{ *Store[entity.User] }

func NewUserRepo() *UserRepo {
	return &UserRepo{NewStore(func(u *entity.User) string { return u.ID })}
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) }), nil
}

type ActionRepo struct{ *Store[entity.Action] }

func NewActionRepo() *ActionRepo {
	return &ActionRepo{NewStore(func(a *entity.Action) string { return a.ID })}
}

func (r *ActionRepo) CountByClient(_ context.Context, clientID string) (int, error) {
	return r.count(func(a *entity.Action) bool { return a.ClientID == clientID }), nil
}

type VehicleRepo struct{ *Store[entity.Vehicle] }

func NewVehicleRepo() *VehicleRepo {
	return &VehicleRepo{NewStore(func(v *entity.Vehicle) string { return v.ID })}
}

func (r *VehicleRepo) GetByPlate(_ context.Context, plate string) (*entity.Vehicle, error) {
	return r.find(func(v *entity.Vehicle) bool { return v.Plate == plate }), nil
}

type AccountRepo struct{ *Store[entity.AccountEntry] }

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{NewStore(func(e *entity.AccountEntry) string { return e.ID })}
}

func (r *AccountRepo) ListByKind(ctx context.Context, kind string) ([]*entity.AccountEntry, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, e := range all {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func NewMaterialRepo() *Store[entity.Material] {
	return NewStore(func(m *entity.Material) string { return m.ID })
}

func NewVacancyRepo() *Store[entity.Vacancy] {
	return NewStore(func(v *entity.Vacancy) string { return v.ID })
}

func NewContactRepo() *Store[entity.Contact] {
	return NewStore(func(c *entity.Contact) string { return c.ID })
}

func NewFuelLogRepo() *Store[entity.FuelLog] {
	return NewStore(func(l *entity.FuelLog) string { return l.ID })
}

func NewCommercialRecordRepo() *Store[entity.CommercialRecord] {
	return NewStore(func(r *entity.CommercialRecord) string { return r.ID })
}

// NewOrderRepo os itens são copiados para a ordem guardada não ser alterada por fora.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{NewStore(func(o *entity.Order) string { return o.ID })}
}

type OrderRepo struct{ *Store[entity.Order] }

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	return r.Store.Create(ctx, withOwnItems(o))
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	return r.Store.Update(ctx, withOwnItems(o))
}

func withOwnItems(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	return &c
}

func NewTransactionRepo() *Store[entity.Transaction] {
	return NewStore(func(t *entity.Transaction) string { return t.ID })
}

// TxRunner serializa as operações transacionais; não há rollback em memória.
type TxRunner struct {
	mu      sync.Mutex
	clients repository.ClientRepository
	actions repository.ActionRepository
}

func NewTxRunner(clients repository.ClientRepository, actions repository.ActionRepository) *TxRunner {
	return &TxRunner{clients: clients, actions: actions}
}

func (t *TxRunner) Run(_ context.Context, fn func(repository.ClientRepository, repository.ActionRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.clients, t.actions)
}

var (
	_ repository.ClientRepository           = (*ClientRepo)(nil)
	_ repository.UserRepository             = (*UserRepo)(nil)
	_ repository.ActionRepository           = (*ActionRepo)(nil)
	_ repository.VehicleRepository          = (*VehicleRepo)(nil)
	_ repository.AccountRepository          = (*AccountRepo)(nil)
	_ repository.MaterialRepository         = (*Store[entity.Material])(nil)
	_ repository.VacancyRepository          = (*Store[entity.Vacancy])(nil)
	_ repository.ContactRepository          = (*Store[entity.Contact])(nil)
	_ repository.FuelLogRepository          = (*Store[entity.FuelLog])(nil)
	_ repository.CommercialRecordRepository = (*Store[entity.CommercialRecord])(nil)
	_ repository.OrderRepository            = (*OrderRepo)(nil)
	_ repository.TransactionRepository      = (*Store[entity.Transaction])(nil)
)

// Repos conjunto completo de repositórios em memória.
type Repos struct {
	Clients      *ClientRepo
	Users        *UserRepo
	Materials    *Store[entity.Material]
	Actions      *ActionRepo
	Vacancies    *Store[entity.Vacancy]
	Contacts     *Store[entity.Contact]
	Vehicles     *VehicleRepo
	FuelLogs     *Store[entity.FuelLog]
	Records      *Store[entity.CommercialRecord]
	Orders       *OrderRepo
	Transactions *Store[entity.Transaction]
	Accounts     *AccountRepo
	Tx           *TxRunner
}

func NewRepos() *Repos {
	r := &Repos{
		Clients:      NewClientRepo(),
		Users:        NewUserRepo(),
		Materials:    NewMaterialRepo(),
		Actions:      NewActionRepo(),
		Vacancies:    NewVacancyRepo(),
		Contacts:     NewContactRepo(),
		Vehicles:     NewVehicleRepo(),
		FuelLogs:     NewFuelLogRepo(),
		Records:      NewCommercialRecordRepo(),
		Orders:       NewOrderRepo(),
		Transactions: NewTransactionRepo(),
		Accounts:     NewAccountRepo(),
	}
	r.Tx = NewTxRunner(r.Clients, r.Actions)
	return r
}
