package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/relampago/backoffice-api/internal/domain/entity"
)

type fakeSender struct {
	sent  []*gomail.Message
	err   error
	block chan struct{}
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.block != nil {
		<-f.block
	}
	f.sent = append(f.sent, m...)
	return f.err
}

func contato() *entity.Contact {
	return &entity.Contact{
		ID: "c1", Name: "Maria Souza", Email: "maria@empresa.com", Phone: "(65) 99999-0000",
		Subject: "Orçamento", Message: "Quero panfletagem no bairro.", CreatedAt: time.Now(),
	}
}

func TestSMTPNotifier_MontaMensagem(t *testing.T) {
	fake := &fakeSender{}
	n := &SMTPNotifier{sender: fake, from: "no-reply@relampago.com", notifyTo: "comercial@relampago.com"}

	require.NoError(t, n.NotifyContact(context.Background(), contato()))
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"comercial@relampago.com"}, msg.GetHeader("To"))
	assert.Contains(t, msg.GetHeader("Reply-To")[0], "maria@empresa.com")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Maria Souza")
}

func TestSMTPNotifier_PropagaErro(t *testing.T) {
	n := &SMTPNotifier{sender: &fakeSender{err: errors.New("auth failed")}, from: "a@b.com", notifyTo: "c@d.com"}
	assert.Error(t, n.NotifyContact(context.Background(), contato()))
}

func TestSMTPNotifier_RespeitaPrazo(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	n := &SMTPNotifier{sender: &fakeSender{block: block}, from: "a@b.com", notifyTo: "c@d.com"}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := n.NotifyContact(ctx, contato())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
