package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/shop/services.go -package=mocks

type CatalogService interface {
	CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error)
	UpdateCategory(ctx context.Context, id int64, params UpdateCategoryParams) (Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	ListCategories(ctx context.Context, page Page) (PageResult[Category], error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	ListProducts(ctx context.Context, page Page) (PageResult[Product], error)
	SearchAvailableProducts(ctx context.Context, keyword string) ([]Product, error)
	ListAvailableProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type LedgerService interface {
	AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) (TopUpResult, error)
	GetPaymentHistory(ctx context.Context, userID int64) ([]PaymentTransaction, error)
	ListAllPayments(ctx context.Context) ([]PaymentTransaction, error)
}

type PurchaseService interface {
	ProcessBuy(ctx context.Context, request BuyRequest) (Purchase, error)
	GetBuyHistory(ctx context.Context, userID int64) ([]Purchase, error)
	GetTransactionItems(ctx context.Context, transactionID int64) ([]TransactionItem, error)
	ListAllTransactions(ctx context.Context) ([]Transaction, error)
}
