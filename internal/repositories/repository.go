package repositories

import (
	"context"
	"strings"

	"shop/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the generic data access contract for one entity type.
// Add, Update and Remove only stage a change; nothing is written until the
// owning session commits.
type Repository[T any] interface {
	// Find returns the row with the given id, soft-deleted or not.
	// It returns nil, nil when no such row exists.
	Find(ctx context.Context, id uuid.UUID) (*T, error)
	// Query returns a lazy view over every row of T, soft-deleted included.
	Query() Query[T]
	// Add assigns a fresh id to entity and stages an insert.
	Add(entity *T)
	// Update stages a full-row update of entity.
	Update(entity *T)
	// Remove flags entity as deleted and stages the soft delete.
	Remove(entity *T)
	// Increment stages "counter += delta" on the row with the given id. The
	// increment is applied against the stored value at commit time, so
	// concurrent increments add up. The commit fails if the row is missing
	// or the counter would drop below zero.
	Increment(id uuid.UUID, counter Counter[T], delta int)
}

// Counter names an integer column of T and the field backing it.
type Counter[T any] struct {
	Column string
	Field  func(*T) *int
}

// Query is a composable, lazily evaluated view over a table. Nothing runs
// until Count, Slice, All or First is called.
type Query[T any] interface {
	Where(f Filter[T]) Query[T]
	OrderBy(s Sort[T]) Query[T]
	Count(ctx context.Context) (int64, error)
	// Slice returns at most limit rows starting at offset.
	Slice(ctx context.Context, offset, limit int) ([]T, error)
	All(ctx context.Context) ([]T, error)
	// First returns the first matching row or nil, nil.
	First(ctx context.Context) (*T, error)
}

// UnitOfWork commits every change staged through the repositories of one
// session in a single transaction.
type UnitOfWork interface {
	// Commit applies the pending changes and returns the number of rows
	// affected. On failure nothing is applied and the error is marked as a
	// storage error. The pending set is cleared either way.
	Commit(ctx context.Context) (int64, error)
}

// Session is a per-request unit of work. Repositories are obtained from it
// with For.
type Session interface {
	UnitOfWork
	// Pending returns the number of staged changes.
	Pending() int
}

// Store opens sessions over a backing database.
type Store interface {
	NewSession() Session
}

// For returns the repository of T bound to session s.
func For[T any](s Session) Repository[T] {
	switch sess := s.(type) {
	case *GORMSession:
		return &gormRepository[T]{session: sess}
	case *MemorySession:
		return &memoryRepository[T]{session: sess}
	default:
		panic("repositories: unsupported session type")
	}
}

// Op is a filter comparison operator.
type Op string

const (
	OpEq       Op = "="
	OpGte      Op = ">="
	OpLte      Op = "<="
	OpContains Op = "contains" // case-insensitive substring match
)

// Filter restricts a query. Column, Op and Value drive SQL stores and Match
// drives in-memory stores; both must express the same predicate.
type Filter[T any] struct {
	Column string
	Op     Op
	Value  interface{}
	Match  func(*T) bool
}

// Sort orders a query. Less reports whether a sorts before b and must agree
// with Column and Desc.
type Sort[T any] struct {
	Column string
	Desc   bool
	Less   func(a, b *T) bool
}

// Eq matches rows whose column equals value.
func Eq[T any, V comparable](column string, value V, get func(*T) V) Filter[T] {
	return Filter[T]{
		Column: column,
		Op:     OpEq,
		Value:  value,
		Match:  func(e *T) bool { return get(e) == value },
	}
}

// Contains matches rows whose column contains value, ignoring case. value
// is matched literally: LIKE wildcards in it carry no special meaning.
func Contains[T any](column, value string, get func(*T) string) Filter[T] {
	needle := strings.ToLower(value)
	return Filter[T]{
		Column: column,
		Op:     OpContains,
		Value:  needle,
		Match:  func(e *T) bool { return strings.Contains(strings.ToLower(get(e)), needle) },
	}
}

// AtLeast matches rows whose decimal column is >= value.
func AtLeast[T any](column string, value decimal.Decimal, get func(*T) decimal.Decimal) Filter[T] {
	return Filter[T]{
		Column: column,
		Op:     OpGte,
		Value:  value,
		Match:  func(e *T) bool { return get(e).GreaterThanOrEqual(value) },
	}
}

// AtMost matches rows whose decimal column is <= value.
func AtMost[T any](column string, value decimal.Decimal, get func(*T) decimal.Decimal) Filter[T] {
	return Filter[T]{
		Column: column,
		Op:     OpLte,
		Value:  value,
		Match:  func(e *T) bool { return get(e).LessThanOrEqual(value) },
	}
}

// ByID matches the row with the given id.
func ByID[T any](id uuid.UUID) Filter[T] {
	return Eq("id", id, func(e *T) uuid.UUID { return baseOf(e).ID })
}

// NotDeleted excludes soft-deleted rows.
func NotDeleted[T any]() Filter[T] {
	return Eq("is_deleted", false, func(e *T) bool { return baseOf(e).IsDeleted })
}

// NewestFirst orders rows by creation date, most recent first.
func NewestFirst[T any]() Sort[T] {
	return Sort[T]{
		Column: "create_by_date",
		Desc:   true,
		Less:   func(a, b *T) bool { return baseOf(a).CreateByDate.After(baseOf(b).CreateByDate) },
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns needle into a LIKE pattern matching it as a substring,
// to be used with ESCAPE '\'.
func likePattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

func baseOf[T any](e *T) *models.Base {
	return entityOf(e).GetBase()
}

func entityOf[T any](e *T) models.Entity {
	ent, ok := any(e).(models.Entity)
	if !ok {
		panic("repositories: type does not embed models.Base")
	}
	return ent
}

func tableOf[T any]() string {
	return entityOf(new(T)).TableName()
}
