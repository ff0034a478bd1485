// Package notification holds in-app notification records. Delivery to
// external channels (email) is best-effort and happens outside the domain.
package notification

import (
	"fmt"
	"time"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

type NotificationType string

const (
	TypePaymentReceived   NotificationType = "payment_received"
	TypeSponsorshipUsed   NotificationType = "sponsorship_used"
	TypeReferralCompleted NotificationType = "referral_completed"
	TypeRewardClaimable   NotificationType = "reward_claimable"
)

type Notification struct {
	id               uint
	recipientAddress string
	notificationType NotificationType
	title            string
	message          string
	read             bool
	createdAt        time.Time
}

func NewNotification(recipientAddress string, notificationType NotificationType, title, message string) (*Notification, error) {
	recipientAddress = normalize.Address(recipientAddress)
	if recipientAddress == "" {
		return nil, fmt.Errorf("recipient address is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		recipientAddress: recipientAddress,
		notificationType: notificationType,
		title:            title,
		message:          message,
		createdAt:        biztime.NowUTC(),
	}, nil
}

func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) ID() uint                 { return n.id }
func (n *Notification) RecipientAddress() string { return n.recipientAddress }
func (n *Notification) Type() NotificationType   { return n.notificationType }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) IsRead() bool             { return n.read }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }

// SetID sets the notification ID after persistence (used by repository after Create)
func (n *Notification) SetID(id uint) {
	n.id = id
}

func ReconstructNotification(
	id uint,
	recipientAddress string,
	notificationType NotificationType,
	title, message string,
	read bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:               id,
		recipientAddress: recipientAddress,
		notificationType: notificationType,
		title:            title,
		message:          message,
		read:             read,
		createdAt:        createdAt,
	}
}
