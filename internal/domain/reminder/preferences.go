package reminder

import (
	"fmt"
	"time"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
)

// Preferences controls automatic reminders for one payee. Absent
// preferences mean reminders are on for every client.
type Preferences struct {
	id uint

	payeeAddress    string
	enabled         bool
	excludedClients []string

	createdAt time.Time
	updatedAt time.Time
}

func NewPreferences(payeeAddress string) (*Preferences, error) {
	payeeAddress = normalize.Address(payeeAddress)
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}

	now := biztime.NowUTC()
	return &Preferences{
		payeeAddress: payeeAddress,
		enabled:      true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (p *Preferences) SetEnabled(enabled bool) {
	p.enabled = enabled
	p.updatedAt = biztime.NowUTC()
}

// SetExcludedClients replaces the exclusion list, normalizing each entry.
func (p *Preferences) SetExcludedClients(emails []string) {
	excluded := make([]string, 0, len(emails))
	for _, email := range emails {
		if normalized := normalize.Email(email); normalized != "" {
			excluded = append(excluded, normalized)
		}
	}
	p.excludedClients = excluded
	p.updatedAt = biztime.NowUTC()
}

// IsExcluded reports whether automatic reminders are suppressed for a client.
func (p *Preferences) IsExcluded(clientEmail string) bool {
	clientEmail = normalize.Email(clientEmail)
	for _, excluded := range p.excludedClients {
		if excluded == clientEmail {
			return true
		}
	}
	return false
}

func (p *Preferences) ID() uint                  { return p.id }
func (p *Preferences) PayeeAddress() string      { return p.payeeAddress }
func (p *Preferences) Enabled() bool             { return p.enabled }
func (p *Preferences) ExcludedClients() []string { return p.excludedClients }
func (p *Preferences) CreatedAt() time.Time      { return p.createdAt }
func (p *Preferences) UpdatedAt() time.Time      { return p.updatedAt }

// SetID sets the record ID after persistence (used by repository after Create)
func (p *Preferences) SetID(id uint) {
	p.id = id
}

func ReconstructPreferences(
	id uint,
	payeeAddress string,
	enabled bool,
	excludedClients []string,
	createdAt, updatedAt time.Time,
) *Preferences {
	return &Preferences{
		id:              id,
		payeeAddress:    payeeAddress,
		enabled:         enabled,
		excludedClients: excludedClients,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}
