package notification_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/gomail.v2"

	"github.com/frahmantamala/donation-platform/internal/core/events"
	"github.com/frahmantamala/donation-platform/internal/notification"
)

func TestReceiptMailer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ReceiptMailer Suite")
}

type capturingSender struct {
	sent      []*gomail.Message
	sendError error
}

func (s *capturingSender) DialAndSend(m ...*gomail.Message) error {
	if s.sendError != nil {
		return s.sendError
	}
	s.sent = append(s.sent, m...)
	return nil
}

type stubDirectory struct {
	name  string
	email string
	err   error
}

func (d *stubDirectory) DonorContact(donorID int64) (string, string, error) {
	if d.err != nil {
		return "", "", d.err
	}
	return d.name, d.email, nil
}

var _ = Describe("ReceiptMailer", func() {
	var (
		sender    *capturingSender
		directory *stubDirectory
		mailer    *notification.ReceiptMailer
	)

	BeforeEach(func() {
		sender = &capturingSender{}
		directory = &stubDirectory{name: "Jane Doe", email: "jane@mail.com"}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mailer = notification.NewReceiptMailerWithSender(sender, "receipts@platform.test", directory, logger)
	})

	donorID := int64(7)

	It("should mail a receipt to a known donor", func() {
		event := events.NewDonationCompletedEvent(1, 1, &donorID, 250.00, false)

		err := mailer.HandleDonationCompleted(context.Background(), event)
		Expect(err).NotTo(HaveOccurred())
		Expect(sender.sent).To(HaveLen(1))
		Expect(sender.sent[0].GetHeader("To")).To(ConsistOf("jane@mail.com"))
	})

	It("should skip anonymous donations", func() {
		event := events.NewDonationCompletedEvent(1, 1, &donorID, 250.00, true)

		Expect(mailer.HandleDonationCompleted(context.Background(), event)).To(Succeed())
		Expect(sender.sent).To(BeEmpty())
	})

	It("should skip donations without a donor account", func() {
		event := events.NewDonationCompletedEvent(1, 1, nil, 250.00, false)

		Expect(mailer.HandleDonationCompleted(context.Background(), event)).To(Succeed())
		Expect(sender.sent).To(BeEmpty())
	})

	It("should swallow send failures", func() {
		sender.sendError = errors.New("smtp unreachable")
		event := events.NewDonationCompletedEvent(1, 1, &donorID, 250.00, false)

		Expect(mailer.HandleDonationCompleted(context.Background(), event)).To(Succeed())
	})

	It("should swallow donor lookup failures", func() {
		directory.err = errors.New("record not found")
		event := events.NewDonationCompletedEvent(1, 1, &donorID, 250.00, false)

		Expect(mailer.HandleDonationCompleted(context.Background(), event)).To(Succeed())
		Expect(sender.sent).To(BeEmpty())
	})
})
