package http

import (
	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/notification"
	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	invoiceRepo         invoice.InvoiceRepository
	programRepo         sponsorship.ProgramRepository
	favoriteRepo        sponsorship.FavoriteClientRepository
	sponsoredTxRepo     sponsorship.SponsoredTransactionRepository
	referralProgramRepo referral.ProgramRepository
	referralRepo        referral.ReferralRepository
	rewardRepo          referral.RewardRepository
	notificationRepo    notification.NotificationRepository
	reminderRepo        reminder.ReminderRepository
	reminderPrefsRepo   reminder.PreferencesRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		invoiceRepo:         repository.NewInvoiceRepository(db),
		programRepo:         repository.NewSponsorshipProgramRepository(db),
		favoriteRepo:        repository.NewFavoriteClientRepository(db),
		sponsoredTxRepo:     repository.NewSponsoredTransactionRepository(db),
		referralProgramRepo: repository.NewReferralProgramRepository(db),
		referralRepo:        repository.NewReferralRepository(db),
		rewardRepo:          repository.NewRewardRepository(db),
		notificationRepo:    repository.NewNotificationRepository(db),
		reminderRepo:        repository.NewReminderRepository(db),
		reminderPrefsRepo:   repository.NewReminderPreferencesRepository(db),
	}
}
