package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heavybuild/heavybuild-pro/internal/config"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

type sentMail struct {
	to      string
	subject string
	html    string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, html string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return m.err
}

func sampleOrder() *model.Order {
	return &model.Order{
		ID:       uuid.MustParse("5b1c1d0e-8f0a-4a63-9d2e-6f0b5a1e9c11"),
		Currency: "INR",
		Items: []model.OrderItem{
			{ProductID: "p1", Name: "Hydraulic <Press>", Quantity: 2, UnitPrice: decimal.RequireFromString("1000")},
		},
		ShippingAddress: model.ShippingAddress{Line1: "12 Plant Rd", City: "Pune", PostalCode: "411001", Country: "IN"},
		TotalPrice:      decimal.RequireFromString("2000"),
		Payment:         model.PaymentResult{GatewayPaymentID: "pay_123"},
		IsPaid:          true,
	}
}

func newTestNotifier(t *testing.T, mailer *recordingMailer) *EmailNotifier {
	t.Helper()
	n, err := NewEmailNotifier(mailer, "admin@heavybuild.test")
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}
	return n
}

func TestSendConfirmation(t *testing.T) {
	mailer := &recordingMailer{}
	n := newTestNotifier(t, mailer)

	contact := model.Contact{Name: "Asha", Email: "asha@example.com"}
	if err := n.SendConfirmation(context.Background(), sampleOrder(), contact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.to != "asha@example.com" || msg.subject != subjectConfirmation {
		t.Fatalf("unexpected envelope: %+v", msg)
	}
	for _, want := range []string{"Asha", "5b1c1d0e-8f0a-4a63-9d2e-6f0b5a1e9c11", "2000.00 INR", "Hydraulic &lt;Press&gt;", "Pune"} {
		if !strings.Contains(msg.html, want) {
			t.Fatalf("expected body to contain %q:\n%s", want, msg.html)
		}
	}
}

func TestSendAdminAlert(t *testing.T) {
	mailer := &recordingMailer{}
	n := newTestNotifier(t, mailer)

	contact := model.Contact{Name: "asha", Email: "asha@example.com", Phone: "+91 99999 00000"}
	if err := n.SendAdminAlert(context.Background(), sampleOrder(), contact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mailer.sent[0]
	if msg.to != "admin@heavybuild.test" || msg.subject != subjectAdminAlert {
		t.Fatalf("unexpected envelope: %+v", msg)
	}
	if !strings.Contains(msg.html, "received from asha") || !strings.Contains(msg.html, "pay_123") {
		t.Fatalf("unexpected body:\n%s", msg.html)
	}
}

func TestSendCancellation(t *testing.T) {
	mailer := &recordingMailer{}
	n := newTestNotifier(t, mailer)

	if err := n.SendCancellation(context.Background(), sampleOrder(), model.Contact{Name: "Asha", Email: "asha@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mailer.sent[0]
	if msg.subject != subjectCancellation || !strings.Contains(msg.html, "has been cancelled") {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestSendSkipsInvalidRecipients(t *testing.T) {
	for _, email := range []string{"", "asha", "not an email"} {
		mailer := &recordingMailer{}
		n := newTestNotifier(t, mailer)

		err := n.SendConfirmation(context.Background(), sampleOrder(), model.Contact{Name: "Asha", Email: email})
		if !errors.Is(err, ErrRecipientSkipped) {
			t.Fatalf("email %q: expected ErrRecipientSkipped, got %v", email, err)
		}
		if len(mailer.sent) != 0 {
			t.Fatalf("email %q: expected nothing sent", email)
		}
	}
}

func TestSendAdminAlertWithoutAdminAddress(t *testing.T) {
	mailer := &recordingMailer{}
	n, err := NewEmailNotifier(mailer, "")
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}
	if err := n.SendAdminAlert(context.Background(), sampleOrder(), model.Contact{}); !errors.Is(err, ErrRecipientSkipped) {
		t.Fatalf("expected ErrRecipientSkipped, got %v", err)
	}
}

func TestSendPropagatesMailerError(t *testing.T) {
	boom := errors.New("smtp down")
	mailer := &recordingMailer{err: boom}
	n := newTestNotifier(t, mailer)

	err := n.SendConfirmation(context.Background(), sampleOrder(), model.Contact{Email: "asha@example.com"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mailer error, got %v", err)
	}
}

func TestNewNotifierUsesAdminEmail(t *testing.T) {
	n, err := newNotifier(&recordingMailer{}, &config.Config{AdminEmail: "ops@heavybuild.test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.(*EmailNotifier).adminEmail != "ops@heavybuild.test" {
		t.Fatal("admin email not wired from config")
	}
}
