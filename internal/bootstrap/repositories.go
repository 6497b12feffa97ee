package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/relampago/backoffice-api/internal/infrastructure/postgres"
)

// Repositories portas de persistência usadas pelos casos de uso.
type Repositories struct {
	Users        repository.UserRepository
	Clients      repository.ClientRepository
	Materials    repository.MaterialRepository
	Actions      repository.ActionRepository
	Vacancies    repository.VacancyRepository
	Contacts     repository.ContactRepository
	Vehicles     repository.VehicleRepository
	FuelLogs     repository.FuelLogRepository
	Records      repository.CommercialRecordRepository
	Orders       repository.OrderRepository
	Transactions repository.TransactionRepository
	Accounts     repository.AccountRepository
	Tx           ports.TxRunner
}

// PostgresRepositories repositórios sobre o pool pgx.
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        postgres.NewUserRepository(pool),
		Clients:      postgres.NewClientRepository(pool),
		Materials:    postgres.NewMaterialRepository(pool),
		Actions:      postgres.NewActionRepository(pool),
		Vacancies:    postgres.NewVacancyRepository(pool),
		Contacts:     postgres.NewContactRepository(pool),
		Vehicles:     postgres.NewVehicleRepository(pool),
		FuelLogs:     postgres.NewFuelLogRepository(pool),
		Records:      postgres.NewCommercialRecordRepository(pool),
		Orders:       postgres.NewOrderRepository(pool),
		Transactions: postgres.NewTransactionRepository(pool),
		Accounts:     postgres.NewAccountRepository(pool),
		Tx:           postgres.NewTxRunner(pool),
	}
}

// MemoryRepositories DB_DRIVER=memory e testes.
func MemoryRepositories() Repositories {
	r := memory.NewRepos()
	return Repositories{
		Users:        r.Users,
		Clients:      r.Clients,
		Materials:    r.Materials,
		Actions:      r.Actions,
		Vacancies:    r.Vacancies,
		Contacts:     r.Contacts,
		Vehicles:     r.Vehicles,
		FuelLogs:     r.FuelLogs,
		Records:      r.Records,
		Orders:       r.Orders,
		Transactions: r.Transactions,
		Accounts:     r.Accounts,
		Tx:           r.Tx,
	}
}
