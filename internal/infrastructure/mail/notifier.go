// Package mail envia avisos por SMTP com gomail.
package mail

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/pkg/config"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

var _ ports.ContactNotifier = (*SMTPNotifier)(nil)

// SMTPNotifier avisa a equipe comercial sobre contatos recebidos pelo site.
type SMTPNotifier struct {
	sender   sender
	from     string
	notifyTo string
}

func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		sender:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		notifyTo: cfg.NotifyTo,
	}
}

// NotifyContact o envio roda fora do ctx (gomail não aceita contexto); ctx só limita a espera.
func (n *SMTPNotifier) NotifyContact(ctx context.Context, c *entity.Contact) error {
	msg := n.buildMessage(c)
	done := make(chan error, 1)
	go func() { done <- n.sender.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w", ctx.Err())
	}
}

func (n *SMTPNotifier) buildMessage(c *entity.Contact) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.notifyTo)
	m.SetAddressHeader("Reply-To", c.Email, c.Name)
	m.SetHeader("Subject", "Novo contato pelo site: "+c.Subject)

	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", c.Name)
	fmt.Fprintf(&b, "E-mail: %s\n", c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", c.Phone)
	}
	if c.Company != "" {
		fmt.Fprintf(&b, "Empresa: %s\n", c.Company)
	}
	fmt.Fprintf(&b, "Recebido em: %s\n\n", c.CreatedAt.Format("02/01/2006 15:04"))
	b.WriteString(c.Message)
	m.SetBody("text/plain", b.String())
	return m
}
