package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/commercial"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/br"
)

// CommercialUseCase funil comercial e ordens de serviço.
type CommercialUseCase struct {
	records repository.CommercialRecordRepository
	orders  repository.OrderRepository
	clock   Clock
}

func NewCommercialUseCase(records repository.CommercialRecordRepository, orders repository.OrderRepository, clock Clock) *CommercialUseCase {
	return &CommercialUseCase{records: records, orders: orders, clock: clock}
}

// ─── Registros ───────────────────────────────────────────────────────────────

func (uc *CommercialUseCase) ListRecords(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.CommercialRecordResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	all, err := uc.records.List(ctx)
	if err != nil {
		return nil, err
	}
	stage := p.Get("stage")
	if stage == "" {
		stage = p.Status
	}
	items := query.Filter(all, func(r *entity.CommercialRecord) bool {
		return query.MatchText(p.Text, r.Name, r.Company, r.Email, r.Phone, r.Source) &&
			query.MatchEqual(stage, r.Stage) &&
			p.MatchDate(r.CreatedAt)
	})
	byDateDesc(items, func(r *entity.CommercialRecord) time.Time { return r.CreatedAt }, func(r *entity.CommercialRecord) time.Time { return r.UpdatedAt })
	return paginate(mapAll(items, toRecordResponse), p), nil
}

func (uc *CommercialUseCase) GetRecord(ctx context.Context, id string) (*dto.CommercialRecordResponse, error) {
	r, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	out := toRecordResponse(r)
	return &out, nil
}

func (uc *CommercialUseCase) CreateRecord(ctx context.Context, in dto.CommercialRecordRequest) (*dto.CommercialRecordResponse, error) {
	now := time.Now()
	r := &entity.CommercialRecord{ID: uuid.New().String(), Stage: entity.DefaultCommercialStage, CreatedAt: now, UpdatedAt: now}
	if err := applyRecord(r, in); err != nil {
		return nil, err
	}
	if err := uc.records.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toRecordResponse(r)
	return &out, nil
}

func (uc *CommercialUseCase) UpdateRecord(ctx context.Context, id string, in dto.CommercialRecordRequest) (*dto.CommercialRecordResponse, error) {
	r, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyRecord(r, in); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now()
	if err := uc.records.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toRecordResponse(r)
	return &out, nil
}

func (uc *CommercialUseCase) DeleteRecord(ctx context.Context, id string) error {
	return uc.records.Delete(ctx, id)
}

func applyRecord(r *entity.CommercialRecord, in dto.CommercialRecordRequest) error {
	setString(&r.Name, in.Name)
	setString(&r.Company, in.Company)
	setString(&r.Phone, in.Phone)
	setString(&r.Email, in.Email)
	setString(&r.Stage, in.Stage)
	setString(&r.Source, in.Source)
	setString(&r.Notes, in.Notes)
	setNumber(&r.Value, in.Value)
	if r.Stage == "" {
		r.Stage = entity.DefaultCommercialStage
	}
	if r.Name == "" {
		return invalid("nome é obrigatório")
	}
	if r.Email != "" && !validEmail(r.Email) {
		return invalid("e-mail inválido: %q", r.Email)
	}
	if r.Value.IsNegative() {
		return invalid("valor não pode ser negativo")
	}
	return nil
}

// ─── Ordens de serviço ───────────────────────────────────────────────────────

func (uc *CommercialUseCase) filteredOrders(ctx context.Context, p query.Params) ([]*entity.Order, error) {
	all, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(o *entity.Order) bool {
		return query.MatchText(p.Text, o.Client, o.Title, o.Description) &&
			query.MatchEqual(p.Status, o.Status) &&
			p.MatchDate(o.Date)
	})
	byDateDesc(items, func(o *entity.Order) time.Time { return o.Date }, func(o *entity.Order) time.Time { return o.CreatedAt })
	return items, nil
}

func (uc *CommercialUseCase) ListOrders(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.OrderResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filteredOrders(ctx, p)
	if err != nil {
		return nil, err
	}
	return paginate(mapAll(items, toOrderResponse), p), nil
}

func (uc *CommercialUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	out := toOrderResponse(o)
	return &out, nil
}

// CreateOrder data ausente vira hoje; título ausente vira "Ordem de Serviço".
func (uc *CommercialUseCase) CreateOrder(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	o := &entity.Order{
		ID:        uuid.New().String(),
		Title:     entity.DefaultOrderTitle,
		Status:    entity.OrderStatusAberta,
		Date:      uc.clock.Today(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyOrder(o, in); err != nil {
		return nil, err
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

func (uc *CommercialUseCase) UpdateOrder(ctx context.Context, id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyOrder(o, in); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	out := toOrderResponse(o)
	return &out, nil
}

func (uc *CommercialUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.orders.Delete(ctx, id)
}

func (uc *CommercialUseCase) OrderSummary(ctx context.Context, f dto.ListFilter) (*dto.OrderSummaryResponse, error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	items, err := uc.filteredOrders(ctx, p)
	if err != nil {
		return nil, err
	}
	s := commercial.Summarize(items)
	out := &dto.OrderSummaryResponse{Count: s.Count, Total: br.NewNumber(s.Total), ByStatus: []dto.OrderStatusTotal{}}
	for _, st := range s.ByStatus {
		out.ByStatus = append(out.ByStatus, dto.OrderStatusTotal{Status: st.Status, Count: st.Count, Total: br.NewNumber(st.Total)})
	}
	return out, nil
}

func applyOrder(o *entity.Order, in dto.OrderRequest) error {
	setString(&o.Client, in.Client)
	setString(&o.Title, in.Title)
	setString(&o.Description, in.Description)
	if o.Title == "" {
		o.Title = entity.DefaultOrderTitle
	}
	if in.Status != nil {
		st, ok := commercial.NormalizeOrderStatus(*in.Status)
		if !ok {
			return invalid("status de ordem inválido: %q", *in.Status)
		}
		o.Status = st
	}
	if in.Date != nil && trimmed(in.Date) != "" {
		d, err := parseDate("data", *in.Date)
		if err != nil {
			return err
		}
		o.Date = d
	}
	if in.Items != nil {
		items := make([]entity.OrderItem, 0, len(in.Items))
		for i, it := range in.Items {
			item := entity.OrderItem{Description: strings.TrimSpace(it.Description), Quantity: it.Quantity.Decimal, UnitValue: it.UnitValue.Decimal}
			if item.Description == "" {
				return invalid("item %d: descrição é obrigatória", i+1)
			}
			if !item.Quantity.IsPositive() || item.UnitValue.IsNegative() {
				return invalid("item %d: quantidade ou valor inválido", i+1)
			}
			items = append(items, item)
		}
		o.Items = items
	}
	if o.Client == "" {
		return invalid("cliente é obrigatório")
	}
	total := number(in.Total)
	switch {
	case total.IsNegative():
		return invalid("total não pode ser negativo")
	case total.IsPositive():
		o.Total = total
	case in.Total != nil || in.Items != nil || o.Total.IsZero():
		o.Total = commercial.ItemsTotal(o.Items)
	}
	return nil
}

func toRecordResponse(r *entity.CommercialRecord) dto.CommercialRecordResponse {
	return dto.CommercialRecordResponse{
		ID:        r.ID,
		Name:      r.Name,
		Company:   r.Company,
		Phone:     r.Phone,
		Email:     r.Email,
		Stage:     r.Stage,
		Value:     br.NewNumber(r.Value),
		Source:    r.Source,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			Description: it.Description,
			Quantity:    br.NewNumber(it.Quantity),
			UnitValue:   br.NewNumber(it.UnitValue),
			Subtotal:    br.NewNumber(it.Subtotal().Round(2)),
		})
	}
	return dto.OrderResponse{
		ID:          o.ID,
		Client:      o.Client,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		Date:        br.FormatISO(o.Date),
		Items:       items,
		Total:       br.NewNumber(o.Total),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

