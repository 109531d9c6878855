package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	*entityStore[domain.User]
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{
		entityStore: newEntityStore(entityTable[domain.User]{
			name:      "users",
			writable:  []string{"fullname", "username"},
			generated: []string{"balance"},
			values: func(u domain.User) []any {
				return []any{u.Fullname, u.Username}
			},
			scan: func(row pgx.Row) (domain.User, error) {
				var u domain.User
				err := scanEntity(row, &u.Entity, &u.Fullname, &u.Username, &u.Balance)
				return u, err
			},
			entity: func(u *domain.User) *domain.Entity {
				return &u.Entity
			},
			notFound: func(id int64) error {
				return domain.NewUserNotFoundError(id)
			},
		}),
	}
}

// Save never writes the balance; it only moves through IncreaseBalance and
// DecreaseBalance.
func (ur *UsersRepository) Save(ctx context.Context, querier database.Querier, user domain.User) (domain.User, error) {
	saved, err := ur.entityStore.Save(ctx, querier, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.User{}, domain.NewUserAlreadyExistsError(user.Username)
		}

		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UsersRepository) Exists(ctx context.Context, querier database.Querier, id int64) (bool, error) {
	existsSQL := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// ExistsByUsername looks at deleted users too: usernames stay reserved.
func (ur *UsersRepository) ExistsByUsername(ctx context.Context, querier database.Querier, username string) (bool, error) {
	existsSQL := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := querier.QueryRow(ctx, existsSQL, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

func (ur *UsersRepository) IncreaseBalance(ctx context.Context, querier database.Querier, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	increaseSQL := `UPDATE users SET balance = balance + $2, modified_at = now(), modified_by = $3
WHERE id = $1 AND deleted = FALSE
RETURNING balance`

	var balance decimal.Decimal
	err := querier.QueryRow(ctx, increaseSQL, id, amount, domain.ActorFromContext(ctx)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.NewUserNotFoundError(id)
		}

		return decimal.Zero, fmt.Errorf("failed to increase balance: %w", err)
	}

	return balance, nil
}

func (ur *UsersRepository) DecreaseBalance(ctx context.Context, executor database.Executor, id int64, amount decimal.Decimal) error {
	decreaseSQL := `UPDATE users SET balance = balance - $2, modified_at = now(), modified_by = $3
WHERE id = $1 AND deleted = FALSE AND balance >= $2`

	tag, err := executor.Exec(ctx, decreaseSQL, id, amount, domain.ActorFromContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to decrease balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.NewInsufficientBalanceError(id)
	}

	return nil
}
