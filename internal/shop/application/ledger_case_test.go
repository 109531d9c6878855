package application

import (
	"testing"

	dbmocks "github.com/Lexv0lk/shop/gen/mocks/database"
	shopmocks "github.com/Lexv0lk/shop/gen/mocks/shop"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCase_AddBalance(t *testing.T) {
	t.Parallel()

	type deps struct {
		users     *shopmocks.MockUserRepository
		payments  *shopmocks.MockPaymentRepository
		txManager *dbmocks.MockTxManager
	}

	type testCase struct {
		name   string
		userID int64
		amount decimal.Decimal

		prepareFn func(t *testing.T, d *deps)

		expectedBalance decimal.Decimal
		expectedErr     error
	}

	tests := []testCase{
		{
			name:   "top up",
			userID: 1,
			amount: money("25.50"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				gomock.InOrder(
					d.users.EXPECT().FindActiveForUpdate(gomock.Any(), nil, int64(1)).
						Return(testUser(1, "100"), nil),
					d.users.EXPECT().IncreaseBalance(gomock.Any(), nil, int64(1), decimalEq("25.5")).
						Return(money("125.50"), nil),
					d.payments.EXPECT().Save(gomock.Any(), nil, domain.PaymentTransaction{UserID: 1, Amount: money("25.50")}).
						Return(domain.PaymentTransaction{Entity: domain.Entity{ID: 7}, UserID: 1, Amount: money("25.50")}, nil),
				)
			},
			expectedBalance: money("125.5"),
		},
		{
			name:   "zero amount",
			userID: 1,
			amount: decimal.Zero,
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
			},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:   "negative amount is rejected before the user lookup",
			userID: 404,
			amount: money("-5"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
			},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:   "sub cent amount",
			userID: 1,
			amount: money("0.004"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
			},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:   "balance would overflow",
			userID: 1,
			amount: money("1"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().FindActiveForUpdate(gomock.Any(), nil, int64(1)).
					Return(testUser(1, "99999999999999999.50"), nil)
			},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:   "deleted user",
			userID: 2,
			amount: money("5"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().FindActiveForUpdate(gomock.Any(), nil, int64(2)).
					Return(domain.User{}, domain.NewUserNotFoundError(2))
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:   "payment insert fails",
			userID: 1,
			amount: money("5"),
			prepareFn: func(t *testing.T, d *deps) {
				t.Helper()
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().FindActiveForUpdate(gomock.Any(), nil, int64(1)).
					Return(testUser(1, "0"), nil)
				d.users.EXPECT().IncreaseBalance(gomock.Any(), nil, int64(1), decimalEq("5")).
					Return(money("5"), nil)
				d.payments.EXPECT().Save(gomock.Any(), nil, gomock.Any()).
					Return(domain.PaymentTransaction{}, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				users:     shopmocks.NewMockUserRepository(ctrl),
				payments:  shopmocks.NewMockPaymentRepository(ctrl),
				txManager: dbmocks.NewMockTxManager(ctrl),
			}

			tt.prepareFn(t, d)

			ledgerCase := NewLedgerCase(nil, d.txManager, d.users, d.payments, discardLogger)
			res, err := ledgerCase.AddBalance(t.Context(), tt.userID, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(res.Balance))
				assert.Equal(t, int64(7), res.PaymentID)
				assert.Equal(t, tt.userID, res.UserID)
			}
		})
	}
}

func TestLedgerCase_GetPaymentHistory(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int64

		prepareFn func(t *testing.T, users *shopmocks.MockUserRepository, payments *shopmocks.MockPaymentRepository)

		expectedLen int
		expectedErr error
	}

	tests := []testCase{
		{
			name:   "deleted user keeps history",
			userID: 1,
			prepareFn: func(t *testing.T, users *shopmocks.MockUserRepository, payments *shopmocks.MockPaymentRepository) {
				t.Helper()
				users.EXPECT().Exists(gomock.Any(), nil, int64(1)).Return(true, nil)
				payments.EXPECT().ListActiveByUser(gomock.Any(), nil, int64(1)).
					Return([]domain.PaymentTransaction{{UserID: 1}, {UserID: 1}}, nil)
			},
			expectedLen: 2,
		},
		{
			name:   "unknown user",
			userID: 9,
			prepareFn: func(t *testing.T, users *shopmocks.MockUserRepository, payments *shopmocks.MockPaymentRepository) {
				t.Helper()
				users.EXPECT().Exists(gomock.Any(), nil, int64(9)).Return(false, nil)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:   "existence check fails",
			userID: 1,
			prepareFn: func(t *testing.T, users *shopmocks.MockUserRepository, payments *shopmocks.MockPaymentRepository) {
				t.Helper()
				users.EXPECT().Exists(gomock.Any(), nil, int64(1)).Return(false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := shopmocks.NewMockUserRepository(ctrl)
			payments := shopmocks.NewMockPaymentRepository(ctrl)
			tt.prepareFn(t, users, payments)

			ledgerCase := NewLedgerCase(nil, dbmocks.NewMockTxManager(ctrl), users, payments, discardLogger)
			res, err := ledgerCase.GetPaymentHistory(t.Context(), tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res, tt.expectedLen)
			}
		})
	}
}

func TestLedgerCase_ListAllPayments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := shopmocks.NewMockPaymentRepository(ctrl)
	payments.EXPECT().ListActiveByDate(gomock.Any(), nil).Return(nil, assert.AnError)

	ledgerCase := NewLedgerCase(nil, dbmocks.NewMockTxManager(ctrl), shopmocks.NewMockUserRepository(ctrl), payments, discardLogger)
	_, err := ledgerCase.ListAllPayments(t.Context())
	assert.ErrorIs(t, err, assert.AnError)
}
