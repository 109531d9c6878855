package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/shop/internal/pkg/database"
)

const (
	SystemActor     = "system"
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Entity carries the columns shared by every table. A deleted entity stays in
// storage but is invisible to every active read.
type Entity struct {
	ID         int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	CreatedBy  string
	ModifiedBy string
	Deleted    bool
}

type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to sane bounds. A zero size selects the default.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

type PageResult[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int64
}

type TrashResult[T any] struct {
	ID     int64
	Entity T
	Found  bool
}

// EntityStore is the soft-delete aware persistence contract every table
// satisfies. FindActive and the List methods never return deleted rows;
// Trash marks a row deleted whether or not it already was.
type EntityStore[T any] interface {
	FindActive(ctx context.Context, querier database.Querier, id int64) (T, error)
	ListActive(ctx context.Context, querier database.Querier) ([]T, error)
	ListActivePage(ctx context.Context, querier database.Querier, page Page) (PageResult[T], error)
	Save(ctx context.Context, querier database.Querier, entity T) (T, error)
	Trash(ctx context.Context, querier database.Querier, id int64) (T, error)
	TrashMany(ctx context.Context, querier database.Querier, ids []int64) ([]TrashResult[T], error)
}

var actorContextKey = contextKey{name: "actor"}

type contextKey struct {
	name string
}

// WithActor records who performs the changes made with ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func ActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(actorContextKey).(string)
	if !ok || actor == "" {
		return SystemActor
	}

	return actor
}
