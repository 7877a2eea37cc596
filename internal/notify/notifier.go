package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/go-playground/validator/v10"

	"github.com/heavybuild/heavybuild-pro/internal/adapter/mail"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// ErrRecipientSkipped means the message was not sent because the address is missing or malformed.
var ErrRecipientSkipped = errors.New("recipient skipped")

//go:embed templates/*.html
var templateFS embed.FS

const (
	subjectConfirmation = "Order Confirmation - HeavyBuild Pro"
	subjectAdminAlert   = "New Order Received"
	subjectCancellation = "Order Cancelled - HeavyBuild Pro"
)

// Notifier sends order lifecycle emails.
type Notifier interface {
	SendConfirmation(ctx context.Context, order *model.Order, contact model.Contact) error
	SendAdminAlert(ctx context.Context, order *model.Order, contact model.Contact) error
	SendCancellation(ctx context.Context, order *model.Order, contact model.Contact) error
}

// EmailNotifier renders html templates and hands them to a mailer.
type EmailNotifier struct {
	mailer     mail.Mailer
	adminEmail string
	templates  *template.Template
	validate   *validator.Validate
}

type view struct {
	Order   *model.Order
	Contact model.Contact
}

// NewEmailNotifier parses embedded templates.
func NewEmailNotifier(mailer mail.Mailer, adminEmail string) (*EmailNotifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &EmailNotifier{
		mailer:     mailer,
		adminEmail: adminEmail,
		templates:  tmpl,
		validate:   validator.New(),
	}, nil
}

func (n *EmailNotifier) SendConfirmation(ctx context.Context, order *model.Order, contact model.Contact) error {
	return n.send(ctx, contact.Email, subjectConfirmation, "confirmation.html", view{Order: order, Contact: contact})
}

func (n *EmailNotifier) SendAdminAlert(ctx context.Context, order *model.Order, contact model.Contact) error {
	return n.send(ctx, n.adminEmail, subjectAdminAlert, "admin_alert.html", view{Order: order, Contact: contact})
}

func (n *EmailNotifier) SendCancellation(ctx context.Context, order *model.Order, contact model.Contact) error {
	return n.send(ctx, contact.Email, subjectCancellation, "cancellation.html", view{Order: order, Contact: contact})
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, name string, data view) error {
	if err := n.validate.Var(to, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrRecipientSkipped, to)
	}

	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := n.mailer.Send(ctx, to, subject, body.String()); err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	return nil
}
