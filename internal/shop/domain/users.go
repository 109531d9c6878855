package domain

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=users.go -destination=../../../gen/mocks/shop/users.go -package=mocks

const MinUsernameLength = 3

type UserRepository interface {
	EntityStore[User]
	FindActiveForUpdate(ctx context.Context, querier database.Querier, id int64) (User, error)
	// Exists reports whether the user was ever created, deleted or not.
	Exists(ctx context.Context, querier database.Querier, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, querier database.Querier, username string) (bool, error)
	IncreaseBalance(ctx context.Context, querier database.Querier, id int64, amount decimal.Decimal) (decimal.Decimal, error)
	DecreaseBalance(ctx context.Context, executor database.Executor, id int64, amount decimal.Decimal) error
}

type User struct {
	Entity
	Fullname string
	Username string
	Balance  decimal.Decimal
}

type CreateUserParams struct {
	Fullname string
	Username string
}

func ValidateFullname(fullname string) error {
	if isBlank(fullname) {
		return NewInvalidFullnameError()
	}

	return nil
}

func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if utf8.RuneCountInString(trimmed) <= MinUsernameLength {
		return NewInvalidUsernameError(username)
	}

	return nil
}
