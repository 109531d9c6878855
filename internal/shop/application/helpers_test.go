package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// executeTxFn is a helper gomock.DoAndReturn that actually invokes the TxFunc callback
func executeTxFn(ctx context.Context, txFn database.TxFunc) error {
	return txFn(ctx, nil)
}

type decimalMatcher struct {
	expected decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	value, ok := x.(decimal.Decimal)
	return ok && value.Equal(m.expected)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal %s", m.expected)
}

func decimalEq(value string) gomock.Matcher {
	return decimalMatcher{expected: decimal.RequireFromString(value)}
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
