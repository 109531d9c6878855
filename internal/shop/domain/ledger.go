package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledger.go -destination=../../../gen/mocks/shop/ledger.go -package=mocks

type PaymentRepository interface {
	EntityStore[PaymentTransaction]
	// ListActiveByUser returns the user's payments, newest first.
	ListActiveByUser(ctx context.Context, querier database.Querier, userID int64) ([]PaymentTransaction, error)
	ListActiveByDate(ctx context.Context, querier database.Querier) ([]PaymentTransaction, error)
}

// PaymentTransaction is one balance top-up. It is only ever appended.
type PaymentTransaction struct {
	Entity
	UserID int64
	Amount decimal.Decimal
	Date   time.Time
}

type TopUpResult struct {
	UserID    int64
	PaymentID int64
	Amount    decimal.Decimal
	Balance   decimal.Decimal
	Date      time.Time
}

// MoneyScale and MoneyLimit match the NUMERIC(19, 2) money columns.
const MoneyScale = 2

var MoneyLimit = decimal.New(1, 17)

// IsStorableMoney reports whether amount fits a money column without rounding.
func IsStorableMoney(amount decimal.Decimal) bool {
	return amount.Truncate(MoneyScale).Equal(amount) && amount.Abs().LessThan(MoneyLimit)
}

func ValidateTopUpAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError("top up amount must be positive")
	}

	if !IsStorableMoney(amount) {
		return NewInvalidAmountError("top up amount must have at most two decimal places and fit the balance range")
	}

	return nil
}
