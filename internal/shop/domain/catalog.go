package domain

import (
	"context"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=catalog.go -destination=../../../gen/mocks/shop/catalog.go -package=mocks

type CategoryRepository interface {
	EntityStore[Category]
}

type ProductRepository interface {
	EntityStore[Product]
	FindActiveForUpdate(ctx context.Context, querier database.Querier, id int64) (Product, error)
	// LockActive locks the active products among ids in ascending id order.
	// Absent or deleted ids are simply missing from the result.
	LockActive(ctx context.Context, querier database.Querier, ids []int64) ([]Product, error)
	DecreaseStock(ctx context.Context, executor database.Executor, id int64, count int64) error
	SearchAvailable(ctx context.Context, querier database.Querier, keyword string) ([]Product, error)
	ListAvailableByCategory(ctx context.Context, querier database.Querier, categoryID int64) ([]Product, error)
}

type Category struct {
	Entity
	Name  string
	Order int64
}

// LocalizedName holds the product name in every supported locale: Uz is the
// primary one, Ru the secondary and En the tertiary.
type LocalizedName struct {
	Uz string
	Ru string
	En string
}

func (n LocalizedName) Validate() error {
	if isBlank(n.Uz) || isBlank(n.Ru) || isBlank(n.En) {
		return NewInvalidLocalizedNameError()
	}

	return nil
}

type Product struct {
	Entity
	Name       LocalizedName
	Count      int64
	Price      decimal.Decimal
	CategoryID int64
}

type CreateCategoryParams struct {
	Name  string
	Order int64
}

type UpdateCategoryParams struct {
	Name  *string
	Order *int64
}

type CreateProductParams struct {
	Name       LocalizedName
	Count      int64
	Price      decimal.Decimal
	CategoryID int64
}

type UpdateProductParams struct {
	Name       *LocalizedName
	Count      *int64
	Price      *decimal.Decimal
	CategoryID *int64
}

func ValidateCategoryName(name string) error {
	if isBlank(name) {
		return NewInvalidCategoryNameError()
	}

	return nil
}

func ValidateOrder(order int64) error {
	if order < 0 {
		return NewInvalidOrderError(order)
	}

	return nil
}

func ValidateStockCount(count int64) error {
	if count < 0 {
		return NewInvalidAmountError("product count must not be negative")
	}

	return nil
}

func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return NewInvalidAmountError("product price must be positive")
	}

	if !IsStorableMoney(price) {
		return NewInvalidAmountError("product price must have at most two decimal places and fit the price range")
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
