package application

import (
	"context"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
)

type CatalogCase struct {
	db         database.Querier
	txManager  database.TxManager
	categories domain.CategoryRepository
	products   domain.ProductRepository
	logger     logging.Logger
}

func NewCatalogCase(
	db database.Querier,
	txManager database.TxManager,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	logger logging.Logger,
) *CatalogCase {
	return &CatalogCase{
		db:         db,
		txManager:  txManager,
		categories: categories,
		products:   products,
		logger:     logger,
	}
}

//region Categories

func (cc *CatalogCase) CreateCategory(ctx context.Context, params domain.CreateCategoryParams) (domain.Category, error) {
	if err := domain.ValidateCategoryName(params.Name); err != nil {
		return domain.Category{}, err
	}
	if err := domain.ValidateOrder(params.Order); err != nil {
		return domain.Category{}, err
	}

	return cc.categories.Save(ctx, cc.db, domain.Category{
		Name:  strings.TrimSpace(params.Name),
		Order: params.Order,
	})
}

func (cc *CatalogCase) UpdateCategory(ctx context.Context, id int64, params domain.UpdateCategoryParams) (domain.Category, error) {
	if params.Name != nil {
		if err := domain.ValidateCategoryName(*params.Name); err != nil {
			return domain.Category{}, err
		}
	}
	if params.Order != nil {
		if err := domain.ValidateOrder(*params.Order); err != nil {
			return domain.Category{}, err
		}
	}

	category, err := cc.categories.FindActive(ctx, cc.db, id)
	if err != nil {
		return domain.Category{}, err
	}

	if params.Name != nil {
		category.Name = strings.TrimSpace(*params.Name)
	}
	if params.Order != nil {
		category.Order = *params.Order
	}

	return cc.categories.Save(ctx, cc.db, category)
}

func (cc *CatalogCase) GetCategory(ctx context.Context, id int64) (domain.Category, error) {
	return cc.categories.FindActive(ctx, cc.db, id)
}

func (cc *CatalogCase) ListCategories(ctx context.Context, page domain.Page) (domain.PageResult[domain.Category], error) {
	return cc.categories.ListActivePage(ctx, cc.db, page.Normalize())
}

func (cc *CatalogCase) DeleteCategory(ctx context.Context, id int64) error {
	_, err := cc.categories.Trash(ctx, cc.db, id)
	return err
}

//endregion

//region Products

func (cc *CatalogCase) CreateProduct(ctx context.Context, params domain.CreateProductParams) (domain.Product, error) {
	if err := params.Name.Validate(); err != nil {
		return domain.Product{}, err
	}
	if err := domain.ValidateStockCount(params.Count); err != nil {
		return domain.Product{}, err
	}
	if err := domain.ValidatePrice(params.Price); err != nil {
		return domain.Product{}, err
	}

	if _, err := cc.categories.FindActive(ctx, cc.db, params.CategoryID); err != nil {
		return domain.Product{}, err
	}

	return cc.products.Save(ctx, cc.db, domain.Product{
		Name:       trimName(params.Name),
		Count:      params.Count,
		Price:      params.Price,
		CategoryID: params.CategoryID,
	})
}

// UpdateProduct holds the product row lock while applying the change, so it
// is serialised with purchases of the same product.
func (cc *CatalogCase) UpdateProduct(ctx context.Context, id int64, params domain.UpdateProductParams) (domain.Product, error) {
	if err := validateProductUpdate(params); err != nil {
		return domain.Product{}, err
	}

	var updated domain.Product

	err := cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := cc.products.FindActiveForUpdate(ctx, executor, id)
		if err != nil {
			return err
		}

		if params.CategoryID != nil && *params.CategoryID != product.CategoryID {
			if _, err = cc.categories.FindActive(ctx, executor, *params.CategoryID); err != nil {
				return err
			}
			product.CategoryID = *params.CategoryID
		}
		if params.Name != nil {
			product.Name = trimName(*params.Name)
		}
		if params.Count != nil {
			product.Count = *params.Count
		}
		if params.Price != nil {
			product.Price = *params.Price
		}

		updated, err = cc.products.Save(ctx, executor, product)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

func (cc *CatalogCase) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	return cc.products.FindActive(ctx, cc.db, id)
}

func (cc *CatalogCase) ListProducts(ctx context.Context, page domain.Page) (domain.PageResult[domain.Product], error) {
	return cc.products.ListActivePage(ctx, cc.db, page.Normalize())
}

func (cc *CatalogCase) SearchAvailableProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	return cc.products.SearchAvailable(ctx, cc.db, strings.TrimSpace(keyword))
}

func (cc *CatalogCase) ListAvailableProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	if _, err := cc.categories.FindActive(ctx, cc.db, categoryID); err != nil {
		return nil, err
	}

	return cc.products.ListAvailableByCategory(ctx, cc.db, categoryID)
}

func (cc *CatalogCase) DeleteProduct(ctx context.Context, id int64) error {
	_, err := cc.products.Trash(ctx, cc.db, id)
	return err
}

//endregion

func validateProductUpdate(params domain.UpdateProductParams) error {
	if params.Name != nil {
		if err := params.Name.Validate(); err != nil {
			return err
		}
	}
	if params.Count != nil {
		if err := domain.ValidateStockCount(*params.Count); err != nil {
			return err
		}
	}
	if params.Price != nil {
		if err := domain.ValidatePrice(*params.Price); err != nil {
			return err
		}
	}

	return nil
}

func trimName(name domain.LocalizedName) domain.LocalizedName {
	return domain.LocalizedName{
		Uz: strings.TrimSpace(name.Uz),
		Ru: strings.TrimSpace(name.Ru),
		En: strings.TrimSpace(name.En),
	}
}
