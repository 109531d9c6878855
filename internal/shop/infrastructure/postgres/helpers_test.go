package postgres

import (
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

var testTime = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

// decimalArg matches a numeric argument regardless of its scale.
type decimalArg struct {
	expected decimal.Decimal
}

func (a decimalArg) Match(actual any) bool {
	value, ok := actual.(decimal.Decimal)
	return ok && value.Equal(a.expected)
}

func decimalOf(value string) decimalArg {
	return decimalArg{expected: decimal.RequireFromString(value)}
}

func withBaseColumns(columns ...string) []string {
	return append([]string{"id", "created_at", "modified_at", "created_by", "modified_by", "deleted"}, columns...)
}

func categoryRows() *pgxmock.Rows {
	return pgxmock.NewRows(withBaseColumns("name", "orders"))
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows(withBaseColumns("name_uz", "name_ru", "name_en", "count", "price", "category_id"))
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows(withBaseColumns("fullname", "username", "balance"))
}

func baseValues(id int64, deleted bool, values ...any) []any {
	return append([]any{id, testTime, testTime, "system", "system", deleted}, values...)
}
