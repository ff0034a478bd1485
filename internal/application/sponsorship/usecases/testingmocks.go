package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
)

type mockProgramRepo struct{ mock.Mock }

func (m *mockProgramRepo) Create(ctx context.Context, program *sponsorship.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockProgramRepo) Update(ctx context.Context, program *sponsorship.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *mockProgramRepo) GetByPayeeAddress(ctx context.Context, payeeAddress string) (*sponsorship.Program, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.Program), args.Error(1)
}

func (m *mockProgramRepo) ListActivePayeeAddresses(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockFavoriteRepo struct{ mock.Mock }

func (m *mockFavoriteRepo) Create(ctx context.Context, client *sponsorship.FavoriteClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Update(ctx context.Context, client *sponsorship.FavoriteClient) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockFavoriteRepo) GetByPayeeAndEmail(ctx context.Context, payeeAddress, clientEmail string) (*sponsorship.FavoriteClient, error) {
	args := m.Called(ctx, payeeAddress, clientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sponsorship.FavoriteClient), args.Error(1)
}

func (m *mockFavoriteRepo) ListByPayee(ctx context.Context, payeeAddress string) ([]*sponsorship.FavoriteClient, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sponsorship.FavoriteClient), args.Error(1)
}
