package postgres

import (
	"testing"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_DecreaseStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		id    int64
		count int64

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:  "enough stock",
			id:    10,
			count: 3,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec(`UPDATE products SET count = count - \$2`).
					WithArgs(int64(10), int64(3), "system").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "guard rejects oversell",
			id:    10,
			count: 30,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec(`count >= \$2`).
					WithArgs(int64(10), int64(30), "system").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrInsufficientStock,
		},
		{
			name:  "database error",
			id:    10,
			count: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs(int64(10), int64(1), "system").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewProductsRepository()
			err = repository.DecreaseStock(t.Context(), mock, tt.id, tt.count)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductsRepository_LockActive(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	rows := productRows().
		AddRow(baseValues(1, false, "Choy", "Чай", "Tea", int64(5), decimal.RequireFromString("2.50"), int64(1))...).
		AddRow(baseValues(4, false, "Non", "Хлеб", "Bread", int64(0), decimal.RequireFromString("1.00"), int64(1))...)
	mock.ExpectQuery(`FROM products WHERE deleted = FALSE AND \(id = ANY\(\$1\)\) ORDER BY id FOR UPDATE`).
		WithArgs([]int64{4, 1, 9}).
		WillReturnRows(rows)

	repository := NewProductsRepository()
	res, err := repository.LockActive(t.Context(), mock, []int64{4, 1, 9})
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, "Tea", res[0].Name.En)
	assert.True(t, res[0].Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, int64(4), res[1].ID)
	assert.Equal(t, int64(0), res[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductsRepository_FindActiveForUpdate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery(`FROM products WHERE deleted = FALSE AND \(id = \$1\) FOR UPDATE`).
		WithArgs(int64(3)).
		WillReturnRows(productRows())

	repository := NewProductsRepository()
	_, err = repository.FindActiveForUpdate(t.Context(), mock, 3)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductsRepository_SearchAvailable(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		keyword string

		expectedPattern string
	}

	tests := []testCase{
		{name: "plain keyword", keyword: "tea", expectedPattern: "%tea%"},
		{name: "trimmed keyword", keyword: "  tea ", expectedPattern: "%tea%"},
		{name: "wildcards are literal", keyword: "50%_off", expectedPattern: `%50\%\_off%`},
		{name: "empty keyword matches everything", keyword: "", expectedPattern: "%%"},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			rows := productRows().
				AddRow(baseValues(2, false, "Yashil choy", "Зелёный чай", "Green tea", int64(7), decimal.RequireFromString("3.00"), int64(1))...)
			mock.ExpectQuery(`count > 0 AND \(name_uz ILIKE \$1 OR name_ru ILIKE \$1 OR name_en ILIKE \$1\)`).
				WithArgs(tt.expectedPattern).
				WillReturnRows(rows)

			repository := NewProductsRepository()
			res, err := repository.SearchAvailable(t.Context(), mock, tt.keyword)
			require.NoError(t, err)

			require.Len(t, res, 1)
			assert.Equal(t, "Green tea", res[0].Name.En)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductsRepository_ListAvailableByCategory(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	mock.ExpectQuery(`count > 0 AND category_id = \$1`).
		WithArgs(int64(8)).
		WillReturnError(assert.AnError)

	repository := NewProductsRepository()
	_, err = repository.ListAvailableByCategory(t.Context(), mock, 8)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductsRepository_SaveInsert(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	product := domain.Product{
		Name:       domain.LocalizedName{Uz: "Choy", Ru: "Чай", En: "Tea"},
		Count:      5,
		Price:      decimal.RequireFromString("2.5"),
		CategoryID: 1,
	}

	rows := productRows().
		AddRow(baseValues(11, false, "Choy", "Чай", "Tea", int64(5), decimal.RequireFromString("2.50"), int64(1))...)
	mock.ExpectQuery(`INSERT INTO products \(created_by, modified_by, name_uz, name_ru, name_en, count, price, category_id\)`).
		WithArgs("system", "Choy", "Чай", "Tea", int64(5), decimalOf("2.50"), int64(1)).
		WillReturnRows(rows)

	repository := NewProductsRepository()
	res, err := repository.Save(t.Context(), mock, product)
	require.NoError(t, err)

	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, product.Name, res.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
