// Package payment contains the payment execution workflow: eligibility
// resolution, the transfer state machine and post-settlement reconciliation.
package payment

import (
	"context"

	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// Eligibility is the outcome of the pre-payment incentive check for one
// (payee, payer) pair. The favorite and program records are carried along so
// the reconciliation step does not have to re-query them.
type Eligibility struct {
	FeeWaived    bool
	GasSponsored bool

	Favorite *sponsorship.FavoriteClient
	Program  *sponsorship.Program
}

// EligibilityResolver decides whether the platform fee is waived and whether
// gas sponsorship applies. All lookups are read-only; a missing record or a
// failed read degrades to "not eligible" and never aborts a payment.
type EligibilityResolver struct {
	favoriteRepo sponsorship.FavoriteClientRepository
	programRepo  sponsorship.ProgramRepository
	logger       logger.Interface
}

func NewEligibilityResolver(
	favoriteRepo sponsorship.FavoriteClientRepository,
	programRepo sponsorship.ProgramRepository,
	logger logger.Interface,
) *EligibilityResolver {
	return &EligibilityResolver{
		favoriteRepo: favoriteRepo,
		programRepo:  programRepo,
		logger:       logger,
	}
}

// Resolve computes eligibility for a payment from payerEmail to payeeAddress.
// The fee waiver keys off the payer's email only: the email is the durable
// client identity, wallets change between invoices.
func (r *EligibilityResolver) Resolve(ctx context.Context, payeeAddress string, payerEmail *string) Eligibility {
	if payerEmail == nil {
		return Eligibility{}
	}
	email := normalize.Email(*payerEmail)
	if email == "" {
		return Eligibility{}
	}
	payeeAddress = normalize.Address(payeeAddress)

	favorite, err := r.favoriteRepo.GetByPayeeAndEmail(ctx, payeeAddress, email)
	if err != nil {
		r.logger.Warnw("favorite client lookup failed, treating as not eligible",
			"payee", payeeAddress,
			"error", err,
		)
		return Eligibility{}
	}
	if favorite == nil {
		return Eligibility{}
	}

	eligibility := Eligibility{
		FeeWaived: true,
		Favorite:  favorite,
	}

	if !favorite.GasSponsorshipEnabled() {
		return eligibility
	}

	program, err := r.programRepo.GetByPayeeAddress(ctx, payeeAddress)
	if err != nil {
		r.logger.Warnw("sponsorship program lookup failed, skipping sponsorship",
			"payee", payeeAddress,
			"error", err,
		)
		return eligibility
	}
	if program == nil || !program.CanSponsor() {
		return eligibility
	}

	eligibility.GasSponsored = true
	eligibility.Program = program
	return eligibility
}
