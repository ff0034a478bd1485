package migration

import (
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.InvoiceModel{},
		&models.SponsorshipProgramModel{},
		&models.FavoriteClientModel{},
		&models.SponsoredTransactionModel{},
		&models.ReferralProgramModel{},
		&models.ReferralModel{},
		&models.ReferralRewardModel{},
		&models.NotificationModel{},
		&models.PaymentReminderModel{},
		&models.ReminderPreferencesModel{},
	}
}
