package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=purchases.go -destination=../../../gen/mocks/shop/purchases.go -package=mocks

type TransactionRepository interface {
	EntityStore[Transaction]
	ListActiveByUser(ctx context.Context, querier database.Querier, userID int64) ([]Transaction, error)
	ListActiveByDate(ctx context.Context, querier database.Querier) ([]Transaction, error)
}

type TransactionItemRepository interface {
	EntityStore[TransactionItem]
	ListActiveByTransaction(ctx context.Context, querier database.Querier, transactionID int64) ([]TransactionItem, error)
	ListActiveByTransactions(ctx context.Context, querier database.Querier, transactionIDs []int64) ([]TransactionItem, error)
}

// Transaction is written once per successful purchase and never changed.
type Transaction struct {
	Entity
	UserID      int64
	TotalAmount decimal.Decimal
	Date        time.Time
}

// TransactionItem snapshots the unit price a product had when it was bought.
type TransactionItem struct {
	Entity
	TransactionID int64
	ProductID     int64
	Count         int64
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
}

type Purchase struct {
	Transaction Transaction
	Items       []TransactionItem
}

type BuyItem struct {
	ProductID int64
	Count     int64
}

type BuyRequest struct {
	UserID int64
	Items  []BuyItem
}

// Validate rejects an empty basket. Line counts are checked while the
// basket is priced so errors follow the order of the lines.
func (r BuyRequest) Validate() error {
	if len(r.Items) == 0 {
		return NewInvalidAmountError("purchase must contain at least one item")
	}

	return nil
}

func (i BuyItem) Validate() error {
	if i.Count <= 0 {
		return NewInvalidAmountError(fmt.Sprintf("purchased count of product %d must be positive", i.ProductID))
	}

	return nil
}

// LineTotal is the amount charged for count units at unitPrice.
func LineTotal(unitPrice decimal.Decimal, count int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(count))
}
