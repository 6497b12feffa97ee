package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanNotifier struct {
	got chan entity.Contact
	err error
}

func (n *chanNotifier) NotifyContact(_ context.Context, c *entity.Contact) error {
	n.got <- *c
	return n.err
}

func validContact() dto.ContactRequest {
	return dto.ContactRequest{
		Name:    "Marta",
		Email:   "marta@padaria.com",
		Subject: "Orçamento",
		Message: "Quero panfletagem no bairro.",
	}
}

func TestContactUseCase_SubmitGravaENotifica(t *testing.T) {
	ctx := context.Background()
	notifier := &chanNotifier{got: make(chan entity.Contact, 1), err: errors.New("smtp fora")}
	uc := usecase.NewContactUseCase(memory.NewContactRepo(), notifier)

	out, err := uc.Submit(ctx, validContact(), "10.0.0.1", "teste")
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusNovo, out.Status)

	select {
	case c := <-notifier.got:
		assert.Equal(t, out.ID, c.ID)
		assert.Equal(t, "10.0.0.1", c.IPAddress)
	case <-time.After(2 * time.Second):
		t.Fatal("aviso de contato não foi disparado")
	}

	list, err := uc.List(ctx, dto.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total, "falha no aviso não desfaz a gravação")
}

func TestContactUseCase_SubmitValida(t *testing.T) {
	uc := usecase.NewContactUseCase(memory.NewContactRepo(), nil)

	semEmail := validContact()
	semEmail.Email = "marta"
	semMensagem := validContact()
	semMensagem.Message = "  "

	for _, in := range []dto.ContactRequest{semEmail, semMensagem} {
		_, err := uc.Submit(context.Background(), in, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
