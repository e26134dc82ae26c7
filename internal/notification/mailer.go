package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/core/events"
	"gopkg.in/gomail.v2"
)

// DonorDirectory resolves a donor id to an addressable contact.
type DonorDirectory interface {
	DonorContact(donorID int64) (name, email string, err error)
}

// Sender abstracts the SMTP dialer so suites can capture outbound mail.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ReceiptMailer emails donation receipts to known, non-anonymous donors. It
// only observes donation events; a mail failure never reaches the donation
// path.
type ReceiptMailer struct {
	sender Sender
	donors DonorDirectory
	from   string
	logger *slog.Logger
}

func NewReceiptMailer(cfg internal.MailConfig, donors DonorDirectory, logger *slog.Logger) *ReceiptMailer {
	var sender Sender
	if cfg.Enabled() {
		sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return &ReceiptMailer{
		sender: sender,
		donors: donors,
		from:   cfg.From,
		logger: logger,
	}
}

// NewReceiptMailerWithSender wires an explicit sender, used by suites.
func NewReceiptMailerWithSender(sender Sender, from string, donors DonorDirectory, logger *slog.Logger) *ReceiptMailer {
	return &ReceiptMailer{
		sender: sender,
		donors: donors,
		from:   from,
		logger: logger,
	}
}

// Register subscribes the mailer to completed donations on the bus.
func (m *ReceiptMailer) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeDonationCompleted, m.HandleDonationCompleted)
}

// HandleDonationCompleted sends a receipt for the donation. Anonymous and
// accountless donations are skipped.
func (m *ReceiptMailer) HandleDonationCompleted(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.DonationCompletedEvent)
	if !ok {
		return nil
	}

	if e.IsAnonymous || e.DonorID == nil {
		return nil
	}
	if m.sender == nil {
		return nil
	}

	name, email, err := m.donors.DonorContact(*e.DonorID)
	if err != nil {
		m.logger.Warn("receipt skipped, donor lookup failed", "error", err, "donor_id", *e.DonorID)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Thank you for your donation")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nThank you for your donation of %.2f (donation #%d).\n\nThis email is your receipt.\n",
		name, e.Amount, e.DonationID))

	if err := m.sender.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send donation receipt", "error", err, "donation_id", e.DonationID)
		return nil
	}

	m.logger.Info("donation receipt sent", "donation_id", e.DonationID, "donor_id", *e.DonorID)

	return nil
}
