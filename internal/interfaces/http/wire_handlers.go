package http

import (
	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	invoiceHandler      *handlers.InvoiceHandler
	paymentHandler      *handlers.PaymentHandler
	sponsorshipHandler  *handlers.SponsorshipHandler
	referralHandler     *handlers.ReferralHandler
	swapHandler         *handlers.SwapHandler
	notificationHandler *handlers.NotificationHandler
	reminderHandler     *handlers.ReminderHandler
}

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		invoiceHandler: handlers.NewInvoiceHandler(ucs.createInvoiceUC, ucs.getInvoiceUC, ucs.listInvoicesUC, log),
		paymentHandler: handlers.NewPaymentHandler(ucs.executePaymentUC, log),
		sponsorshipHandler: handlers.NewSponsorshipHandler(
			ucs.createProgramUC,
			ucs.sponsorshipStatsUC,
			ucs.addFavoriteUC,
			ucs.updateClientSettingsUC,
			c.ledger,
			c.repos.favoriteRepo,
			c.repos.sponsoredTxRepo,
			log,
		),
		referralHandler: handlers.NewReferralHandler(
			ucs.getOrCreateProgramUC,
			ucs.recordSignupUC,
			ucs.referralStatsUC,
			ucs.claimRewardsUC,
			ucs.listRewardsUC,
			log,
		),
		swapHandler:         handlers.NewSwapHandler(c.quoteService, log),
		notificationHandler: handlers.NewNotificationHandler(c.notificationService, log),
		reminderHandler:     handlers.NewReminderHandler(c.reminderService, log),
	}
}
