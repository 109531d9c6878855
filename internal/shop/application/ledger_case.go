package application

import (
	"context"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/shopspring/decimal"
)

type LedgerCase struct {
	db        database.Querier
	txManager database.TxManager
	users     domain.UserRepository
	payments  domain.PaymentRepository
	logger    logging.Logger
}

func NewLedgerCase(
	db database.Querier,
	txManager database.TxManager,
	users domain.UserRepository,
	payments domain.PaymentRepository,
	logger logging.Logger,
) *LedgerCase {
	return &LedgerCase{
		db:        db,
		txManager: txManager,
		users:     users,
		payments:  payments,
		logger:    logger,
	}
}

func (lc *LedgerCase) AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) (domain.TopUpResult, error) {
	if err := domain.ValidateTopUpAmount(amount); err != nil {
		return domain.TopUpResult{}, err
	}

	var result domain.TopUpResult

	err := lc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := lc.users.FindActiveForUpdate(ctx, executor, userID)
		if err != nil {
			return err
		}

		if !domain.IsStorableMoney(user.Balance.Add(amount)) {
			return domain.NewInvalidAmountError("balance would exceed the storable range")
		}

		balance, err := lc.users.IncreaseBalance(ctx, executor, userID, amount)
		if err != nil {
			return err
		}

		payment, err := lc.payments.Save(ctx, executor, domain.PaymentTransaction{
			UserID: userID,
			Amount: amount,
		})
		if err != nil {
			return err
		}

		result = domain.TopUpResult{
			UserID:    userID,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Balance:   balance,
			Date:      payment.Date,
		}

		return nil
	})
	if err != nil {
		return domain.TopUpResult{}, err
	}

	lc.logger.Info("balance topped up", "user_id", userID, "payment_id", result.PaymentID, "amount", amount.String())

	return result, nil
}

func (lc *LedgerCase) GetPaymentHistory(ctx context.Context, userID int64) ([]domain.PaymentTransaction, error) {
	exists, err := lc.users.Exists(ctx, lc.db, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUserNotFoundError(userID)
	}

	return lc.payments.ListActiveByUser(ctx, lc.db, userID)
}

func (lc *LedgerCase) ListAllPayments(ctx context.Context) ([]domain.PaymentTransaction, error) {
	return lc.payments.ListActiveByDate(ctx, lc.db)
}
