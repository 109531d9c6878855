package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

const activeFilter = "deleted = FALSE"

// ErrRecordNotFound is returned for tables without a dedicated domain
// not-found error.
var ErrRecordNotFound = errors.New("record not found")

var baseColumns = []string{"id", "created_at", "modified_at", "created_by", "modified_by", "deleted"}

// entityTable describes how one entity type maps onto its table. Writable
// columns are inserted and updated by Save in the order values returns them;
// generated columns are only read back.
type entityTable[T any] struct {
	name      string
	writable  []string
	generated []string
	values    func(entity T) []any
	scan      func(row pgx.Row) (T, error)
	entity    func(entity *T) *domain.Entity
	notFound  func(id int64) error
}

type entityStore[T any] struct {
	table entityTable[T]

	insertSQL              string
	updateSQL              string
	trashSQL               string
	findActiveSQL          string
	findActiveForUpdateSQL string
	listActiveSQL          string
	listActivePageSQL      string
	countActiveSQL         string
	lockActiveSQL          string
}

func newEntityStore[T any](table entityTable[T]) *entityStore[T] {
	s := &entityStore[T]{table: table}
	returning := s.columnList("")

	insertColumns := append([]string{"created_by", "modified_by"}, table.writable...)
	placeholders := []string{"$1", "$1"}
	for i := range table.writable {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
	}
	s.insertSQL = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		table.name, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", "), returning)

	assignments := []string{"modified_at = now()", "modified_by = $2"}
	for i, column := range table.writable {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+3))
	}
	s.updateSQL = fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 AND %s RETURNING %s`,
		table.name, strings.Join(assignments, ", "), activeFilter, returning)

	s.trashSQL = fmt.Sprintf(`UPDATE %s SET deleted = TRUE, modified_at = now(), modified_by = $2 WHERE id = $1 RETURNING %s`,
		table.name, returning)

	s.findActiveSQL = s.selectActive("id = $1", "")
	s.findActiveForUpdateSQL = s.selectActive("id = $1", "FOR UPDATE")
	s.listActiveSQL = s.selectActive("", "ORDER BY id")
	s.listActivePageSQL = s.selectActive("", "ORDER BY id LIMIT $1 OFFSET $2")
	s.countActiveSQL = fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, table.name, activeFilter)
	s.lockActiveSQL = s.selectActive("id = ANY($1)", "ORDER BY id FOR UPDATE")

	return s
}

// columnList renders the scanned columns, optionally qualified by alias.
func (s *entityStore[T]) columnList(alias string) string {
	columns := make([]string, 0, len(baseColumns)+len(s.table.writable)+len(s.table.generated))
	columns = append(columns, baseColumns...)
	columns = append(columns, s.table.writable...)
	columns = append(columns, s.table.generated...)

	if alias == "" {
		return strings.Join(columns, ", ")
	}

	for i, column := range columns {
		columns[i] = alias + "." + column
	}

	return strings.Join(columns, ", ")
}

// selectActive builds a read over active rows only. where is ANDed with the
// active filter; suffix carries ordering, limits and locking clauses.
func (s *entityStore[T]) selectActive(where, suffix string) string {
	predicate := activeFilter
	if where != "" {
		predicate += " AND (" + where + ")"
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s`, s.columnList(""), s.table.name, predicate)
	if suffix != "" {
		query += " " + suffix
	}

	return query
}

func (s *entityStore[T]) FindActive(ctx context.Context, querier database.Querier, id int64) (T, error) {
	return s.queryOne(ctx, querier, id, s.findActiveSQL, id)
}

func (s *entityStore[T]) FindActiveForUpdate(ctx context.Context, querier database.Querier, id int64) (T, error) {
	return s.queryOne(ctx, querier, id, s.findActiveForUpdateSQL, id)
}

func (s *entityStore[T]) ListActive(ctx context.Context, querier database.Querier) ([]T, error) {
	return s.queryMany(ctx, querier, s.listActiveSQL)
}

func (s *entityStore[T]) ListActivePage(ctx context.Context, querier database.Querier, page domain.Page) (domain.PageResult[T], error) {
	page = page.Normalize()

	var total int64
	err := querier.QueryRow(ctx, s.countActiveSQL).Scan(&total)
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("failed to count %s: %w", s.table.name, err)
	}

	items, err := s.queryMany(ctx, querier, s.listActivePageSQL, page.Size, page.Offset())
	if err != nil {
		return domain.PageResult[T]{}, err
	}

	return domain.PageResult[T]{
		Items:  items,
		Number: page.Number,
		Size:   page.Size,
		Total:  total,
	}, nil
}

func (s *entityStore[T]) LockActive(ctx context.Context, querier database.Querier, ids []int64) ([]T, error) {
	return s.queryMany(ctx, querier, s.lockActiveSQL, ids)
}

func (s *entityStore[T]) Save(ctx context.Context, querier database.Querier, entity T) (T, error) {
	actor := domain.ActorFromContext(ctx)
	id := s.table.entity(&entity).ID

	if id == 0 {
		args := append([]any{actor}, s.table.values(entity)...)

		saved, err := s.table.scan(querier.QueryRow(ctx, s.insertSQL, args...))
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to insert into %s: %w", s.table.name, err)
		}

		return saved, nil
	}

	args := append([]any{id, actor}, s.table.values(entity)...)
	return s.queryOne(ctx, querier, id, s.updateSQL, args...)
}

func (s *entityStore[T]) Trash(ctx context.Context, querier database.Querier, id int64) (T, error) {
	entity, found, err := s.trash(ctx, querier, id)
	if err != nil {
		return entity, err
	} else if !found {
		return entity, s.table.notFound(id)
	}

	return entity, nil
}

func (s *entityStore[T]) TrashMany(ctx context.Context, querier database.Querier, ids []int64) ([]domain.TrashResult[T], error) {
	results := make([]domain.TrashResult[T], 0, len(ids))

	for _, id := range ids {
		entity, found, err := s.trash(ctx, querier, id)
		if err != nil {
			return nil, err
		}

		results = append(results, domain.TrashResult[T]{ID: id, Entity: entity, Found: found})
	}

	return results, nil
}

// trash ignores the deleted flag when matching, so trashing twice succeeds.
func (s *entityStore[T]) trash(ctx context.Context, querier database.Querier, id int64) (T, bool, error) {
	entity, err := s.table.scan(querier.QueryRow(ctx, s.trashSQL, id, domain.ActorFromContext(ctx)))
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}

		return zero, false, fmt.Errorf("failed to trash %s row: %w", s.table.name, err)
	}

	return entity, true, nil
}

func (s *entityStore[T]) queryOne(ctx context.Context, querier database.Querier, id int64, sql string, args ...any) (T, error) {
	entity, err := s.table.scan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, s.table.notFound(id)
		}

		return zero, fmt.Errorf("failed to query %s: %w", s.table.name, err)
	}

	return entity, nil
}

func (s *entityStore[T]) queryMany(ctx context.Context, querier database.Querier, sql string, args ...any) ([]T, error) {
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table.name, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		entity, err := s.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.table.name, err)
		}

		result = append(result, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", s.table.name, err)
	}

	return result, nil
}

func recordNotFound(table string) func(id int64) error {
	return func(id int64) error {
		return fmt.Errorf("%s row %d: %w", table, id, ErrRecordNotFound)
	}
}

// scanEntity scans the base columns followed by dest.
func scanEntity(row pgx.Row, entity *domain.Entity, dest ...any) error {
	targets := append([]any{
		&entity.ID,
		&entity.CreatedAt,
		&entity.ModifiedAt,
		&entity.CreatedBy,
		&entity.ModifiedBy,
		&entity.Deleted,
	}, dest...)

	return row.Scan(targets...)
}
