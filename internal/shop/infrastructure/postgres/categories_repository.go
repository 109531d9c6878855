package postgres

import (
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type CategoriesRepository struct {
	*entityStore[domain.Category]
}

func NewCategoriesRepository() *CategoriesRepository {
	return &CategoriesRepository{
		entityStore: newEntityStore(entityTable[domain.Category]{
			name:     "categories",
			writable: []string{"name", "orders"},
			values: func(c domain.Category) []any {
				return []any{c.Name, c.Order}
			},
			scan: func(row pgx.Row) (domain.Category, error) {
				var c domain.Category
				err := scanEntity(row, &c.Entity, &c.Name, &c.Order)
				return c, err
			},
			entity: func(c *domain.Category) *domain.Entity {
				return &c.Entity
			},
			notFound: func(id int64) error {
				return domain.NewCategoryNotFoundError(id)
			},
		}),
	}
}
