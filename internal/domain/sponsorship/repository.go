package sponsorship

import "context"

// ProgramRepository persists sponsorship programs. Update applies an
// optimistic-lock guard on the version column: a stale write returns a
// conflict error and the caller re-reads and retries.
type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	// GetByPayeeAddress returns (nil, nil) when the payee has no program.
	GetByPayeeAddress(ctx context.Context, payeeAddress string) (*Program, error)
	// ListActivePayeeAddresses returns payees with active programs, capped at limit.
	ListActivePayeeAddresses(ctx context.Context, limit int) ([]string, error)
}

type FavoriteClientRepository interface {
	Create(ctx context.Context, client *FavoriteClient) error
	Update(ctx context.Context, client *FavoriteClient) error
	// GetByPayeeAndEmail returns (nil, nil) when no record exists for the pair.
	GetByPayeeAndEmail(ctx context.Context, payeeAddress, clientEmail string) (*FavoriteClient, error)
	ListByPayee(ctx context.Context, payeeAddress string) ([]*FavoriteClient, error)
}

type SponsoredTransactionRepository interface {
	Create(ctx context.Context, tx *SponsoredTransaction) error
	ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*SponsoredTransaction, int64, error)
}
