package postgres

import (
	"context"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type TransactionsRepository struct {
	*entityStore[domain.Transaction]

	listByUserSQL string
	listByDateSQL string
}

func NewTransactionsRepository() *TransactionsRepository {
	store := newEntityStore(entityTable[domain.Transaction]{
		name:      "transactions",
		writable:  []string{"user_id", "total_amount"},
		generated: []string{"date"},
		values: func(t domain.Transaction) []any {
			return []any{t.UserID, t.TotalAmount}
		},
		scan: func(row pgx.Row) (domain.Transaction, error) {
			var t domain.Transaction
			err := scanEntity(row, &t.Entity, &t.UserID, &t.TotalAmount, &t.Date)
			return t, err
		},
		entity: func(t *domain.Transaction) *domain.Entity {
			return &t.Entity
		},
		notFound: func(id int64) error {
			return domain.NewTransactionNotFoundError(id)
		},
	})

	return &TransactionsRepository{
		entityStore:   store,
		listByUserSQL: store.selectActive("user_id = $1", "ORDER BY date DESC, id DESC"),
		listByDateSQL: store.selectActive("", "ORDER BY date DESC, id DESC"),
	}
}

func (tr *TransactionsRepository) ListActiveByUser(ctx context.Context, querier database.Querier, userID int64) ([]domain.Transaction, error) {
	return tr.queryMany(ctx, querier, tr.listByUserSQL, userID)
}

func (tr *TransactionsRepository) ListActiveByDate(ctx context.Context, querier database.Querier) ([]domain.Transaction, error) {
	return tr.queryMany(ctx, querier, tr.listByDateSQL)
}

type TransactionItemsRepository struct {
	*entityStore[domain.TransactionItem]

	listByTransactionSQL  string
	listByTransactionsSQL string
}

func NewTransactionItemsRepository() *TransactionItemsRepository {
	store := newEntityStore(entityTable[domain.TransactionItem]{
		name:     "transaction_items",
		writable: []string{"transaction_id", "product_id", "count", "unit_price", "total_amount"},
		values: func(i domain.TransactionItem) []any {
			return []any{i.TransactionID, i.ProductID, i.Count, i.UnitPrice, i.TotalAmount}
		},
		scan: func(row pgx.Row) (domain.TransactionItem, error) {
			var i domain.TransactionItem
			err := scanEntity(row, &i.Entity, &i.TransactionID, &i.ProductID, &i.Count, &i.UnitPrice, &i.TotalAmount)
			return i, err
		},
		entity: func(i *domain.TransactionItem) *domain.Entity {
			return &i.Entity
		},
		notFound: recordNotFound("transaction_items"),
	})

	return &TransactionItemsRepository{
		entityStore:           store,
		listByTransactionSQL:  store.selectActive("transaction_id = $1", "ORDER BY id"),
		listByTransactionsSQL: store.selectActive("transaction_id = ANY($1)", "ORDER BY id"),
	}
}

func (tr *TransactionItemsRepository) ListActiveByTransaction(ctx context.Context, querier database.Querier, transactionID int64) ([]domain.TransactionItem, error) {
	return tr.queryMany(ctx, querier, tr.listByTransactionSQL, transactionID)
}

// ListActiveByTransactions loads the lines of exactly the given transactions.
func (tr *TransactionItemsRepository) ListActiveByTransactions(ctx context.Context, querier database.Querier, transactionIDs []int64) ([]domain.TransactionItem, error) {
	return tr.queryMany(ctx, querier, tr.listByTransactionsSQL, transactionIDs)
}
