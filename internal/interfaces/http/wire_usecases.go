package http

import (
	appnotification "github.com/waveline-inc/waveline/internal/application/notification"
	apppayment "github.com/waveline-inc/waveline/internal/application/payment"
	invoiceUsecases "github.com/waveline-inc/waveline/internal/application/invoice/usecases"
	paymentUsecases "github.com/waveline-inc/waveline/internal/application/payment/usecases"
	referralUsecases "github.com/waveline-inc/waveline/internal/application/referral/usecases"
	appreminder "github.com/waveline-inc/waveline/internal/application/reminder"
	appsponsorship "github.com/waveline-inc/waveline/internal/application/sponsorship"
	sponsorshipUsecases "github.com/waveline-inc/waveline/internal/application/sponsorship/usecases"
	"github.com/waveline-inc/waveline/internal/application/swap"
)

// allUseCases holds every use case instance wired into the HTTP layer and
// background jobs.
type allUseCases struct {
	// Invoice
	createInvoiceUC *invoiceUsecases.CreateInvoiceUseCase
	getInvoiceUC    *invoiceUsecases.GetInvoiceUseCase
	listInvoicesUC  *invoiceUsecases.ListInvoicesUseCase

	// Payment
	executePaymentUC *paymentUsecases.ExecutePaymentUseCase

	// Sponsorship
	createProgramUC        *sponsorshipUsecases.CreateProgramUseCase
	sponsorshipStatsUC     *sponsorshipUsecases.GetStatsUseCase
	addFavoriteUC          *sponsorshipUsecases.AddFavoriteClientUseCase
	updateClientSettingsUC *sponsorshipUsecases.UpdateClientSettingsUseCase
	autoAddFavoritesUC     *sponsorshipUsecases.AutoAddFavoritesUseCase

	// Referral
	getOrCreateProgramUC *referralUsecases.GetOrCreateProgramUseCase
	recordSignupUC       *referralUsecases.RecordSignupUseCase
	checkAndCompleteUC   *referralUsecases.CheckAndCompleteUseCase
	referralStatsUC      *referralUsecases.GetStatsUseCase
	claimRewardsUC       *referralUsecases.ClaimRewardsUseCase
	listRewardsUC        *referralUsecases.ListRewardsUseCase
}

// initUseCases builds domain services and every use case. The payment use
// case is built last: it composes the eligibility resolver, the sponsorship
// ledger, the referral completion check, and the notifier.
func (c *Container) initUseCases() {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	c.notificationService = appnotification.NewService(repos.notificationRepo, c.emailService, log)
	c.ledger = appsponsorship.NewLedger(repos.programRepo, repos.favoriteRepo, repos.sponsoredTxRepo, log)
	c.eligibility = apppayment.NewEligibilityResolver(repos.favoriteRepo, repos.programRepo, log)
	c.quoteService = swap.NewQuoteService(c.priceStore, swapConfig(cfg, log), log)
	c.reminderService = appreminder.NewService(
		repos.invoiceRepo,
		repos.reminderRepo,
		repos.reminderPrefsRepo,
		c.emailService,
		appreminder.Config{
			BaseURL:        cfg.Server.BaseURL,
			SweepBatchSize: cfg.Reminder.SweepBatchSize,
		},
		log,
	)

	sponsorshipCfg := sponsorshipConfig(cfg, log)
	referralCfg := referralConfig(cfg, log)

	ucs := &allUseCases{}

	ucs.createInvoiceUC = invoiceUsecases.NewCreateInvoiceUseCase(repos.invoiceRepo, log)
	ucs.getInvoiceUC = invoiceUsecases.NewGetInvoiceUseCase(repos.invoiceRepo, log)
	ucs.listInvoicesUC = invoiceUsecases.NewListInvoicesUseCase(repos.invoiceRepo, log)

	ucs.createProgramUC = sponsorshipUsecases.NewCreateProgramUseCase(repos.programRepo, sponsorshipCfg, log)
	ucs.sponsorshipStatsUC = sponsorshipUsecases.NewGetStatsUseCase(repos.programRepo, repos.favoriteRepo, log)
	ucs.addFavoriteUC = sponsorshipUsecases.NewAddFavoriteClientUseCase(repos.favoriteRepo, sponsorshipCfg, log)
	ucs.updateClientSettingsUC = sponsorshipUsecases.NewUpdateClientSettingsUseCase(repos.favoriteRepo, sponsorshipCfg, log)
	ucs.autoAddFavoritesUC = sponsorshipUsecases.NewAutoAddFavoritesUseCase(repos.favoriteRepo, repos.invoiceRepo, sponsorshipCfg, log)

	ucs.getOrCreateProgramUC = referralUsecases.NewGetOrCreateProgramUseCase(repos.referralProgramRepo, log)
	ucs.recordSignupUC = referralUsecases.NewRecordSignupUseCase(repos.referralProgramRepo, repos.referralRepo, referralCfg, log)
	ucs.checkAndCompleteUC = referralUsecases.NewCheckAndCompleteUseCase(repos.referralRepo, repos.referralProgramRepo, repos.rewardRepo, repos.invoiceRepo, referralCfg, log)
	ucs.referralStatsUC = referralUsecases.NewGetStatsUseCase(repos.referralProgramRepo, repos.referralRepo, repos.rewardRepo, referralCfg, log)
	ucs.claimRewardsUC = referralUsecases.NewClaimRewardsUseCase(repos.rewardRepo, repos.referralProgramRepo, log)
	ucs.listRewardsUC = referralUsecases.NewListRewardsUseCase(repos.rewardRepo, log)

	ucs.executePaymentUC = paymentUsecases.NewExecutePaymentUseCase(
		repos.invoiceRepo,
		c.eligibility,
		c.chainClient,
		c.ledger,
		ucs.checkAndCompleteUC,
		c.notificationService,
		paymentConfig(cfg, log),
		log,
	)

	c.ucs = ucs
}
