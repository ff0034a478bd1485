package referral

import "context"

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	// GetByReferrerAddress returns (nil, nil) when the address has no program.
	GetByReferrerAddress(ctx context.Context, referrerAddress string) (*Program, error)
	// GetByCode returns (nil, nil) when the code does not resolve.
	GetByCode(ctx context.Context, code string) (*Program, error)
}

type ReferralRepository interface {
	Create(ctx context.Context, referral *Referral) error
	Update(ctx context.Context, referral *Referral) error
	// GetByRefereeAddress returns (nil, nil) when the referee was never referred.
	GetByRefereeAddress(ctx context.Context, refereeAddress string) (*Referral, error)
	ListPendingByReferee(ctx context.Context, refereeAddress string) ([]*Referral, error)
	ListByReferrer(ctx context.Context, referrerAddress string) ([]*Referral, error)
	CountCompletedByReferrer(ctx context.Context, referrerAddress string) (int64, error)
	// ListPendingRefereeAddresses returns the distinct referee addresses that
	// still have a pending referral, for the periodic completion sweep.
	ListPendingRefereeAddresses(ctx context.Context, limit int) ([]string, error)
}

type RewardRepository interface {
	Create(ctx context.Context, reward *Reward) error
	Update(ctx context.Context, reward *Reward) error
	// GetByReferralID returns (nil, nil) when the referral has no reward yet.
	GetByReferralID(ctx context.Context, referralID uint) (*Reward, error)
	ListByReferrer(ctx context.Context, referrerAddress string) ([]*Reward, error)
	ListPendingByReferrer(ctx context.Context, referrerAddress string) ([]*Reward, error)
}
