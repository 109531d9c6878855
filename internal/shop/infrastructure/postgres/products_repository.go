package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductsRepository struct {
	*entityStore[domain.Product]

	searchAvailableSQL     string
	availableByCategorySQL string
}

func NewProductsRepository() *ProductsRepository {
	store := newEntityStore(entityTable[domain.Product]{
		name:     "products",
		writable: []string{"name_uz", "name_ru", "name_en", "count", "price", "category_id"},
		values: func(p domain.Product) []any {
			return []any{p.Name.Uz, p.Name.Ru, p.Name.En, p.Count, p.Price, p.CategoryID}
		},
		scan: func(row pgx.Row) (domain.Product, error) {
			var p domain.Product
			err := scanEntity(row, &p.Entity, &p.Name.Uz, &p.Name.Ru, &p.Name.En, &p.Count, &p.Price, &p.CategoryID)
			return p, err
		},
		entity: func(p *domain.Product) *domain.Entity {
			return &p.Entity
		},
		notFound: func(id int64) error {
			return domain.NewProductNotFoundError(id)
		},
	})

	return &ProductsRepository{
		entityStore: store,
		searchAvailableSQL: store.selectActive(
			"count > 0 AND (name_uz ILIKE $1 OR name_ru ILIKE $1 OR name_en ILIKE $1)", "ORDER BY id"),
		availableByCategorySQL: store.selectActive("count > 0 AND category_id = $1", "ORDER BY id"),
	}
}

// DecreaseStock takes count units off the product. It refuses to drive the
// stock below zero even when the caller skipped the locked check.
func (pr *ProductsRepository) DecreaseStock(ctx context.Context, executor database.Executor, id int64, count int64) error {
	updateStockSQL := `UPDATE products SET count = count - $2, modified_at = now(), modified_by = $3
WHERE id = $1 AND deleted = FALSE AND count >= $2`

	tag, err := executor.Exec(ctx, updateStockSQL, id, count, domain.ActorFromContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to decrease stock of product %d: %w", id, err)
	} else if tag.RowsAffected() == 0 {
		return domain.NewInsufficientStockError(id, count)
	}

	return nil
}

func (pr *ProductsRepository) SearchAvailable(ctx context.Context, querier database.Querier, keyword string) ([]domain.Product, error) {
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(keyword)) + "%"
	return pr.queryMany(ctx, querier, pr.searchAvailableSQL, pattern)
}

func (pr *ProductsRepository) ListAvailableByCategory(ctx context.Context, querier database.Querier, categoryID int64) ([]domain.Product, error) {
	return pr.queryMany(ctx, querier, pr.availableByCategorySQL, categoryID)
}
