package postgres

import (
	"context"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type PaymentsRepository struct {
	*entityStore[domain.PaymentTransaction]

	listByUserSQL string
	listByDateSQL string
}

func NewPaymentsRepository() *PaymentsRepository {
	store := newEntityStore(entityTable[domain.PaymentTransaction]{
		name:      "user_payment_transactions",
		writable:  []string{"user_id", "amount"},
		generated: []string{"date"},
		values: func(p domain.PaymentTransaction) []any {
			return []any{p.UserID, p.Amount}
		},
		scan: func(row pgx.Row) (domain.PaymentTransaction, error) {
			var p domain.PaymentTransaction
			err := scanEntity(row, &p.Entity, &p.UserID, &p.Amount, &p.Date)
			return p, err
		},
		entity: func(p *domain.PaymentTransaction) *domain.Entity {
			return &p.Entity
		},
		notFound: recordNotFound("user_payment_transactions"),
	})

	return &PaymentsRepository{
		entityStore:   store,
		listByUserSQL: store.selectActive("user_id = $1", "ORDER BY date DESC, id DESC"),
		listByDateSQL: store.selectActive("", "ORDER BY date DESC, id DESC"),
	}
}

func (pr *PaymentsRepository) ListActiveByUser(ctx context.Context, querier database.Querier, userID int64) ([]domain.PaymentTransaction, error) {
	return pr.queryMany(ctx, querier, pr.listByUserSQL, userID)
}

func (pr *PaymentsRepository) ListActiveByDate(ctx context.Context, querier database.Querier) ([]domain.PaymentTransaction, error) {
	return pr.queryMany(ctx, querier, pr.listByDateSQL)
}
