package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

const notifyTimeout = 15 * time.Second

// ContactUseCase formulário de contato do site e caixa de entrada do admin.
type ContactUseCase struct {
	repo     repository.ContactRepository
	notifier ports.ContactNotifier
}

// NewContactUseCase notifier nil desliga o aviso por e-mail.
func NewContactUseCase(repo repository.ContactRepository, notifier ports.ContactNotifier) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier}
}

// Submit grava a mensagem e dispara o aviso em segundo plano; falha no envio só é registrada em log.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest, ip, userAgent string) (*dto.ContactResponse, error) {
	c := &entity.Contact{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Company:   strings.TrimSpace(in.Company),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    entity.ContactStatusNovo,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	switch {
	case c.Name == "":
		return nil, invalid("nome é obrigatório")
	case !validEmail(c.Email):
		return nil, invalid("e-mail inválido: %q", c.Email)
	case c.Subject == "":
		return nil, invalid("assunto é obrigatório")
	case c.Message == "":
		return nil, invalid("mensagem é obrigatória")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		go func(c entity.Contact) {
			nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
			defer cancel()
			if err := uc.notifier.NotifyContact(nctx, &c); err != nil {
				log.Warn().Err(err).Str("contact_id", c.ID).Msg("falha ao enviar aviso de contato")
			}
		}(*c)
	}
	out := toContactResponse(c)
	return &out, nil
}

func (uc *ContactUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.ContactResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(c *entity.Contact) bool {
		return query.MatchText(p.Text, c.Name, c.Email, c.Company, c.Subject, c.Message) &&
			query.MatchEqual(p.Status, c.Status) &&
			p.MatchDate(c.CreatedAt)
	})
	byDateDesc(items, func(c *entity.Contact) time.Time { return c.CreatedAt }, func(c *entity.Contact) time.Time { return c.CreatedAt })
	return paginate(mapAll(items, toContactResponse), p), nil
}

// SetStatus novo, lido ou respondido.
func (uc *ContactUseCase) SetStatus(ctx context.Context, id, status string) (*dto.ContactResponse, error) {
	st := query.Fold(status)
	switch st {
	case entity.ContactStatusNovo, entity.ContactStatusLido, entity.ContactStatusRespondido:
	default:
		return nil, invalid("status de contato inválido: %q", status)
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Status = st
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toContactResponse(c)
	return &out, nil
}

func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toContactResponse(c *entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		IPAddress: c.IPAddress,
		CreatedAt: c.CreatedAt,
	}
}
