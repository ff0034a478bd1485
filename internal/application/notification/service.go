// Package notification delivers post-payment notices: an in-app record for
// the payee and, when a payer email is known, a receipt email. Every path is
// best-effort; delivery failures are logged and never propagate.
package notification

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/waveline-inc/waveline/internal/domain/notification"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/goroutine"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// EmailSender sends a single email. Implemented by infrastructure/email.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// PaymentNotice describes a settled payment for notification purposes.
type PaymentNotice struct {
	PayeeAddress string
	PayerEmail   *string
	InvoiceSID   string
	Amount       decimal.Decimal
	Token        string
	TxHash       string
	FeeWaived    bool
	GasSponsored bool
}

// Notifier is the sink the payment workflow drives after settlement.
type Notifier interface {
	PaymentReceived(ctx context.Context, notice PaymentNotice)
}

type Service struct {
	repo   domain.NotificationRepository
	email  EmailSender
	logger logger.Interface
}

func NewService(repo domain.NotificationRepository, email EmailSender, logger logger.Interface) *Service {
	return &Service{repo: repo, email: email, logger: logger}
}

// ListForRecipient returns a recipient's notifications newest-first.
func (s *Service) ListForRecipient(ctx context.Context, recipientAddress string, page, pageSize int) ([]*domain.Notification, int64, error) {
	return s.repo.ListByRecipient(ctx, normalize.Address(recipientAddress), page, pageSize)
}

// MarkRead marks a single notification as read.
func (s *Service) MarkRead(ctx context.Context, id uint) error {
	return s.repo.MarkRead(ctx, id)
}

// PaymentReceived records an in-app notification for the payee and emails a
// receipt to the payer when their address is known. The email is sent on a
// background goroutine so a slow SMTP server never delays the payment result.
func (s *Service) PaymentReceived(ctx context.Context, notice PaymentNotice) {
	title := "Payment received"
	message := fmt.Sprintf("Invoice %s was paid: %s %s (tx %s)",
		notice.InvoiceSID, notice.Amount, notice.Token, notice.TxHash)

	record, err := domain.NewNotification(notice.PayeeAddress, domain.TypePaymentReceived, title, message)
	if err != nil {
		s.logger.Warnw("failed to build payment notification",
			"invoice", notice.InvoiceSID,
			"error", err,
		)
	} else if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Warnw("failed to store payment notification",
			"invoice", notice.InvoiceSID,
			"error", err,
		)
	}

	if notice.PayerEmail == nil || s.email == nil {
		return
	}

	to := *notice.PayerEmail
	subject := fmt.Sprintf("Receipt for invoice %s", notice.InvoiceSID)
	body := fmt.Sprintf(
		"<p>Your payment of <strong>%s %s</strong> for invoice %s has been confirmed.</p><p>Transaction: %s</p>",
		notice.Amount, notice.Token, notice.InvoiceSID, notice.TxHash,
	)

	goroutine.SafeGo(s.logger, "payment-receipt-email", func() {
		if err := s.email.Send(to, subject, body); err != nil {
			s.logger.Warnw("failed to send payment receipt email",
				"invoice", notice.InvoiceSID,
				"error", err,
			)
		}
	})
}
