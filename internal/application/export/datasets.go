package export

import (
	"context"
	"strconv"
	"strings"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/pkg/br"
)

var datasetOrder = []string{
	"clients", "materials", "actions", "vacancies", "vehicles", "fuel-logs",
	"commercial-records", "commercial-orders", "transactions", "contas-pagar", "contas-receber", "users",
}

var financeRoles = []string{entity.RoleAdmin, entity.RoleManager}

func money(n br.Number) string { return br.FormatDecimalBR(n.Decimal, 2) }

func qty(n br.Number) string { return strings.Replace(n.String(), ".", ",", 1) }

func brDate(iso string) string {
	if iso == "" {
		return ""
	}
	s, err := br.ISOToBR(iso)
	if err != nil {
		return iso
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func cols(pairs ...string) []Column {
	out := make([]Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Column{Key: pairs[i], Header: pairs[i+1]})
	}
	return out
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	out := make([][]string, 0, len(items))
	for _, it := range items {
		out = append(out, row(it))
	}
	return out
}

func buildDatasets(src Sources) map[string]dataset {
	ds := map[string]dataset{}

	if src.Clients != nil {
		ds["clients"] = dataset{
			title:   "Clientes",
			columns: cols("name", "Nome", "company", "Empresa", "email", "E-mail", "phone", "Telefone", "segment", "Segmento", "city", "Cidade", "status", "Status"),
			load: func(ctx context.Context, actor dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Clients.List(ctx, actor, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(c dto.ClientResponse) []string {
					return []string{c.Name, c.Company, c.Email, c.Phone, c.Segment, c.City, c.Status}
				}), nil
			},
		}
	}
	if src.Materials != nil {
		ds["materials"] = dataset{
			title:   "Materiais",
			columns: cols("date", "Data", "client_name", "Cliente", "quantity", "Quantidade", "responsible", "Responsável", "notes", "Observações"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Materials.List(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(m dto.MaterialResponse) []string {
					return []string{brDate(m.Date), m.ClientName, qty(m.Quantity), m.Responsible, m.Notes}
				}), nil
			},
		}
	}
	if src.Actions != nil {
		ds["actions"] = dataset{
			title:   "Ações",
			columns: cols("start_date", "Início", "end_date", "Término", "client_name", "Cliente", "types", "Tipos", "supervisor", "Supervisor", "material_qty", "Material", "status", "Status"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Actions.List(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(a dto.ActionResponse) []string {
					return []string{brDate(a.StartDate), brDate(a.EndDate), a.ClientName, strings.Join(a.Types, ", "), a.Supervisor, qty(a.MaterialQty), a.Status}
				}), nil
			},
		}
	}
	if src.Vacancies != nil {
		ds["vacancies"] = dataset{
			title:   "Vagas",
			columns: cols("indication_name", "Indicação", "role", "Cargo", "client", "Cliente", "contact", "Contato", "status", "Status"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Vacancies.List(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(v dto.VacancyResponse) []string {
					return []string{v.IndicationName, v.Role, v.Client, v.Contact, v.Status}
				}), nil
			},
		}
	}
	if src.Fleet != nil {
		ds["vehicles"] = dataset{
			title:   "Veículos",
			columns: cols("plate", "Placa", "brand", "Marca", "model", "Modelo", "year", "Ano", "active", "Ativo"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Fleet.ListVehicles(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(v dto.VehicleResponse) []string {
					year := ""
					if v.Year > 0 {
						year = strconv.Itoa(v.Year)
					}
					return []string{v.Plate, v.Brand, v.Model, year, yesNo(v.Active)}
				}), nil
			},
		}
		ds["fuel-logs"] = dataset{
			title:   "Abastecimentos",
			columns: cols("date", "Data", "plate", "Placa", "driver", "Motorista", "liters", "Litros", "price_per_liter", "Preço/L", "total", "Total", "odometer", "Hodômetro", "station", "Posto"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Fleet.ListFuelLogs(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(l dto.FuelLogResponse) []string {
					return []string{brDate(l.Date), l.Plate, l.Driver, qty(l.Liters), br.FormatDecimalBR(l.PricePerLiter.Decimal, 3), money(l.Total), strconv.FormatInt(l.Odometer, 10), l.Station}
				}), nil
			},
		}
	}
	if src.Commercial != nil {
		ds["commercial-records"] = dataset{
			title:   "Comercial",
			columns: cols("name", "Nome", "company", "Empresa", "phone", "Telefone", "email", "E-mail", "stage", "Etapa", "value", "Valor", "source", "Origem"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Commercial.ListRecords(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(r dto.CommercialRecordResponse) []string {
					return []string{r.Name, r.Company, r.Phone, r.Email, r.Stage, money(r.Value), r.Source}
				}), nil
			},
		}
		ds["commercial-orders"] = dataset{
			title:   "Ordens de Serviço",
			columns: cols("date", "Data", "client", "Cliente", "title", "Título", "status", "Status", "items", "Itens", "total", "Total"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Commercial.ListOrders(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(o dto.OrderResponse) []string {
					return []string{brDate(o.Date), o.Client, o.Title, o.Status, strconv.Itoa(len(o.Items)), money(o.Total)}
				}), nil
			},
		}
	}
	if src.Transactions != nil {
		ds["transactions"] = dataset{
			title:   "Lançamentos",
			roles:   financeRoles,
			columns: cols("date", "Data", "type", "Tipo", "description", "Descrição", "category", "Categoria", "amount", "Valor", "status", "Status", "payment_method", "Forma de pagamento"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Transactions.List(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(t dto.TransactionResponse) []string {
					return []string{brDate(t.Date), t.Type, t.Description, t.Category, money(t.Amount), t.Status, t.PaymentMethod}
				}), nil
			},
		}
	}
	if src.Accounts != nil {
		for name, kind := range map[string]string{"contas-pagar": entity.AccountPayable, "contas-receber": entity.AccountReceivable} {
			kind := kind
			title, party := "Contas a Pagar", "Fornecedor"
			if kind == entity.AccountReceivable {
				title, party = "Contas a Receber", "Cliente"
			}
			ds[name] = dataset{
				title:   title,
				roles:   financeRoles,
				columns: cols("due_date", "Vencimento", "document", "Documento", "description", "Descrição", "counterparty", party, "amount", "Valor", "amount_paid", "Pago", "open_amount", "Em aberto", "status", "Status"),
				load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
					res, err := src.Accounts.List(ctx, kind, f)
					if err != nil {
						return nil, err
					}
					return rowsOf(res.Items, func(e dto.AccountEntryResponse) []string {
						return []string{brDate(e.DueDate), e.Document, e.Description, e.Counterparty, money(e.Amount), money(e.AmountPaid), money(e.OpenAmount), e.Status}
					}), nil
				},
			}
		}
	}
	if src.Users != nil {
		ds["users"] = dataset{
			title:   "Usuários",
			roles:   []string{entity.RoleAdmin},
			columns: cols("name", "Nome", "username", "Usuário", "email", "E-mail", "role", "Papel", "active", "Ativo"),
			load: func(ctx context.Context, _ dto.Actor, f dto.ListFilter) ([][]string, error) {
				res, err := src.Users.List(ctx, f)
				if err != nil {
					return nil, err
				}
				return rowsOf(res.Items, func(u dto.UserResponse) []string {
					return []string{u.Name, u.Username, u.Email, u.Role, yesNo(u.Active)}
				}), nil
			},
		}
	}
	return ds
}
