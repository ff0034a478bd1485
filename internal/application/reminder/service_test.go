package reminder

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/shared/biztime"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

type mockInvoiceRepo struct{ mock.Mock }

func (m *mockInvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) GetBySID(ctx context.Context, sid string) (*invoice.Invoice, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*invoice.Invoice, int64, error) {
	args := m.Called(ctx, payeeAddress, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*invoice.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) ListOverduePending(ctx context.Context, asOf time.Time, limit int) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) SumPaidAmountByPayee(ctx context.Context, payeeAddress string) (decimal.Decimal, error) {
	args := m.Called(ctx, payeeAddress)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockInvoiceRepo) CountPaidByPayeeAndPayerEmail(ctx context.Context, payeeAddress, payerEmail string) (int64, error) {
	args := m.Called(ctx, payeeAddress, payerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInvoiceRepo) ListPaidPayerEmailStats(ctx context.Context, payeeAddress string) ([]invoice.PayerStats, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoice.PayerStats), args.Error(1)
}

type mockReminderRepo struct{ mock.Mock }

func (m *mockReminderRepo) Create(ctx context.Context, rem *reminder.Reminder) error {
	return m.Called(ctx, rem).Error(0)
}

func (m *mockReminderRepo) ExistsForStage(ctx context.Context, invoiceID uint, stage reminder.Stage) (bool, error) {
	args := m.Called(ctx, invoiceID, stage)
	return args.Bool(0), args.Error(1)
}

func (m *mockReminderRepo) ListByInvoiceID(ctx context.Context, invoiceID uint) ([]*reminder.Reminder, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reminder.Reminder), args.Error(1)
}

type mockPrefsRepo struct{ mock.Mock }

func (m *mockPrefsRepo) GetByPayeeAddress(ctx context.Context, payeeAddress string) (*reminder.Preferences, error) {
	args := m.Called(ctx, payeeAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reminder.Preferences), args.Error(1)
}

func (m *mockPrefsRepo) Upsert(ctx context.Context, prefs *reminder.Preferences) error {
	return m.Called(ctx, prefs).Error(0)
}

type mockEmailSender struct{ mock.Mock }

func (m *mockEmailSender) Send(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

type serviceFixture struct {
	invoiceRepo  *mockInvoiceRepo
	reminderRepo *mockReminderRepo
	prefsRepo    *mockPrefsRepo
	email        *mockEmailSender
	service      *Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		invoiceRepo:  &mockInvoiceRepo{},
		reminderRepo: &mockReminderRepo{},
		prefsRepo:    &mockPrefsRepo{},
		email:        &mockEmailSender{},
	}
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	f.service = NewService(f.invoiceRepo, f.reminderRepo, f.prefsRepo, f.email, Config{
		BaseURL:        "https://pay.waveline.io",
		SweepBatchSize: 200,
	}, log)
	return f
}

func overdueInvoice(t *testing.T, id uint, payerEmail string, daysOverdue int) *invoice.Invoice {
	t.Helper()
	var email *string
	if payerEmail != "" {
		email = &payerEmail
	}
	inv, err := invoice.NewInvoice("0xPayee1", decimal.RequireFromString("250"), vo.TokenUSDC, email, "Logo design")
	require.NoError(t, err)
	require.NoError(t, inv.SetDueDate(biztime.NowUTC().Add(-time.Duration(daysOverdue)*24*time.Hour)))
	inv.SetID(id)
	return inv
}

func TestSweepOverdue_SendsStageReminder(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 1, "client@example.com", 8)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, inv.PayeeAddress()).Return(nil, nil)
	f.reminderRepo.On("ExistsForStage", mock.Anything, uint(1), reminder.StageFirst).Return(false, nil)
	f.email.On("Send", "client@example.com", mock.MatchedBy(func(subject string) bool {
		return strings.Contains(subject, "Friendly Reminder")
	}), mock.Anything).Return(nil)
	f.reminderRepo.On("Create", mock.Anything, mock.MatchedBy(func(rem *reminder.Reminder) bool {
		return rem.Stage() == reminder.StageFirst && !rem.Manual()
	})).Return(nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.email.AssertExpectations(t)
	f.reminderRepo.AssertExpectations(t)
}

func TestSweepOverdue_EscalatesByAge(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 2, "client@example.com", 31)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, inv.PayeeAddress()).Return(nil, nil)
	f.reminderRepo.On("ExistsForStage", mock.Anything, uint(2), reminder.StageFinal).Return(false, nil)
	f.email.On("Send", "client@example.com", mock.MatchedBy(func(subject string) bool {
		return strings.Contains(subject, "FINAL NOTICE")
	}), mock.Anything).Return(nil)
	f.reminderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.email.AssertExpectations(t)
}

func TestSweepOverdue_SendsEachStageOnce(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 3, "client@example.com", 9)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, inv.PayeeAddress()).Return(nil, nil)
	f.reminderRepo.On("ExistsForStage", mock.Anything, uint(3), reminder.StageFirst).Return(true, nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepOverdue_SkipsBeforeFirstStage(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 4, "client@example.com", 3)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepOverdue_RespectsDisabledPreferences(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 5, "client@example.com", 10)

	prefs, err := reminder.NewPreferences(inv.PayeeAddress())
	require.NoError(t, err)
	prefs.SetEnabled(false)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, inv.PayeeAddress()).Return(prefs, nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepOverdue_RespectsExcludedClients(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 6, "vip@example.com", 10)

	prefs, err := reminder.NewPreferences(inv.PayeeAddress())
	require.NoError(t, err)
	prefs.SetExcludedClients([]string{"VIP@example.com"})

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, inv.PayeeAddress()).Return(prefs, nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepOverdue_SkipsInvoicesWithoutPayerEmail(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 7, "", 10)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{inv}, nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSweepOverdue_EmailFailureDoesNotStopBatch(t *testing.T) {
	f := newServiceFixture()
	first := overdueInvoice(t, 8, "broken@example.com", 8)
	second := overdueInvoice(t, 9, "fine@example.com", 8)

	f.invoiceRepo.On("ListOverduePending", mock.Anything, mock.Anything, 200).
		Return([]*invoice.Invoice{first, second}, nil)
	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, mock.Anything).Return(nil, nil)
	f.reminderRepo.On("ExistsForStage", mock.Anything, mock.Anything, reminder.StageFirst).Return(false, nil)
	f.email.On("Send", "broken@example.com", mock.Anything, mock.Anything).Return(assert.AnError)
	f.email.On("Send", "fine@example.com", mock.Anything, mock.Anything).Return(nil)
	f.reminderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	sent, err := f.service.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSendManual_BypassesStageDeduplication(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 10, "client@example.com", 2)

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)
	f.email.On("Send", "client@example.com", mock.Anything, mock.Anything).Return(nil)
	f.reminderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rem, err := f.service.SendManual(context.Background(), inv.SID())

	require.NoError(t, err)
	assert.True(t, rem.Manual())
	assert.Equal(t, reminder.StageFirst, rem.Stage())
	f.reminderRepo.AssertNotCalled(t, "ExistsForStage", mock.Anything, mock.Anything, mock.Anything)
	f.prefsRepo.AssertNotCalled(t, "GetByPayeeAddress", mock.Anything, mock.Anything)
}

func TestSendManual_RejectsSettledInvoice(t *testing.T) {
	f := newServiceFixture()
	inv := overdueInvoice(t, 11, "client@example.com", 10)
	require.NoError(t, inv.MarkAsPaid("0xhash"))

	f.invoiceRepo.On("GetBySID", mock.Anything, inv.SID()).Return(inv, nil)

	_, err := f.service.SendManual(context.Background(), inv.SID())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePreferences_CreatesDefaultsWhenMissing(t *testing.T) {
	f := newServiceFixture()
	disabled := false

	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee1").Return(nil, nil)
	f.prefsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *reminder.Preferences) bool {
		return p.PayeeAddress() == "0xpayee1" && !p.Enabled()
	})).Return(nil)

	prefs, err := f.service.UpdatePreferences(context.Background(), UpdatePreferencesCommand{
		PayeeAddress: "0xPayee1",
		Enabled:      &disabled,
	})

	require.NoError(t, err)
	assert.False(t, prefs.Enabled())
	f.prefsRepo.AssertExpectations(t)
}

func TestUpdatePreferences_ReplacesExclusionList(t *testing.T) {
	f := newServiceFixture()
	existing, err := reminder.NewPreferences("0xpayee1")
	require.NoError(t, err)

	f.prefsRepo.On("GetByPayeeAddress", mock.Anything, "0xpayee1").Return(existing, nil)
	f.prefsRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	prefs, err := f.service.UpdatePreferences(context.Background(), UpdatePreferencesCommand{
		PayeeAddress:    "0xPayee1",
		ExcludedClients: []string{"Client@Example.com"},
	})

	require.NoError(t, err)
	assert.True(t, prefs.Enabled(), "enabled untouched when omitted")
	assert.True(t, prefs.IsExcluded("client@example.com"))
}
