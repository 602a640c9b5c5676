package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ierr "shop/internal/errors"
	"shop/internal/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMStore opens sessions over a GORM database.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db: db,
	}
}

// NewSession starts an empty unit of work.
func (s *GORMStore) NewSession() Session {
	return &GORMSession{db: s.db}
}

type gormOp struct {
	desc  string
	apply func(tx *gorm.DB) (int64, error)
}

// GORMSession stages repository changes and applies them in one database
// transaction on Commit. Reads go straight to the database and do not see
// staged changes.
type GORMSession struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []gormOp
}

func (s *GORMSession) stage(op gormOp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, op)
}

func (s *GORMSession) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Commit applies every staged change inside a single transaction.
func (s *GORMSession) Commit(ctx context.Context) (int64, error) {
	s.mu.Lock()
	ops := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(ops) == 0 {
		return 0, nil
	}

	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			n, err := op.apply(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", op.desc, err)
			}
			affected += n
		}
		return nil
	})
	metrics.RecordCommit("gorm", err)
	if err != nil {
		return 0, ierr.WrapStorage(err, "failed to commit unit of work")
	}
	return affected, nil
}

// gormRepository is the GORM implementation of Repository.
type gormRepository[T any] struct {
	session *GORMSession
}

func (r *gormRepository[T]) Find(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.session.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ierr.WrapStorage(err, fmt.Sprintf("failed to get %s by ID %s", tableOf[T](), id))
	}
	return &entity, nil
}

func (r *gormRepository[T]) Query() Query[T] {
	return &gormQuery[T]{db: r.session.db}
}

func (r *gormRepository[T]) Add(entity *T) {
	baseOf(entity).ID = uuid.New()
	r.session.stage(gormOp{
		desc: "create " + tableOf[T](),
		apply: func(tx *gorm.DB) (int64, error) {
			res := tx.Create(entity)
			return res.RowsAffected, res.Error
		},
	})
}

func (r *gormRepository[T]) Update(entity *T) {
	table := tableOf[T]()
	r.session.stage(gormOp{
		desc: "update " + table,
		apply: func(tx *gorm.DB) (int64, error) {
			// Select("*") writes zero values too; created audit columns are never rewritten.
			res := tx.Model(entity).
				Select("*").
				Omit("id", "created_by", "created_by_name", "create_by_date").
				Updates(entity)
			if res.Error != nil {
				return 0, res.Error
			}
			if res.RowsAffected == 0 {
				return 0, fmt.Errorf("%s with ID %s not found for update", table, baseOf(entity).ID)
			}
			return res.RowsAffected, nil
		},
	})
}

func (r *gormRepository[T]) Remove(entity *T) {
	table := tableOf[T]()
	base := baseOf(entity)
	base.IsDeleted = true
	r.session.stage(gormOp{
		desc: "delete " + table,
		apply: func(tx *gorm.DB) (int64, error) {
			res := tx.Model(entity).Updates(map[string]interface{}{
				"is_deleted":      true,
				"deleted_by":      base.DeletedBy,
				"deleted_by_name": base.DeletedByName,
				"delete_by_date":  base.DeleteByDate,
			})
			if res.Error != nil {
				return 0, res.Error
			}
			if res.RowsAffected == 0 {
				return 0, fmt.Errorf("%s with ID %s not found for deletion", table, base.ID)
			}
			return res.RowsAffected, nil
		},
	})
}

func (r *gormRepository[T]) Increment(id uuid.UUID, counter Counter[T], delta int) {
	table := tableOf[T]()
	col := clause.Column{Name: counter.Column}
	r.session.stage(gormOp{
		desc: "increment " + table + "." + counter.Column,
		apply: func(tx *gorm.DB) (int64, error) {
			res := tx.Model(new(T)).
				Where("id = ?", id).
				Where("? + ? >= 0", col, delta).
				UpdateColumn(counter.Column, gorm.Expr("? + ?", col, delta))
			if res.Error != nil {
				return 0, res.Error
			}
			if res.RowsAffected == 0 {
				return 0, fmt.Errorf("%s with ID %s not found or %s would drop below zero", table, id, counter.Column)
			}
			return res.RowsAffected, nil
		},
	})
}

// gormQuery translates filters and sorts into SQL clauses.
type gormQuery[T any] struct {
	db      *gorm.DB
	filters []Filter[T]
	sorts   []Sort[T]
}

func (q *gormQuery[T]) Where(f Filter[T]) Query[T] {
	next := q.clone()
	next.filters = append(next.filters, f)
	return next
}

func (q *gormQuery[T]) OrderBy(s Sort[T]) Query[T] {
	next := q.clone()
	next.sorts = append(next.sorts, s)
	return next
}

func (q *gormQuery[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := q.build(ctx).Count(&n).Error; err != nil {
		return 0, ierr.WrapStorage(err, "failed to count "+tableOf[T]())
	}
	return n, nil
}

func (q *gormQuery[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	rows := make([]T, 0, limit)
	if err := q.build(ctx).Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, ierr.WrapStorage(err, "failed to list "+tableOf[T]())
	}
	return rows, nil
}

func (q *gormQuery[T]) All(ctx context.Context) ([]T, error) {
	var rows []T
	if err := q.build(ctx).Find(&rows).Error; err != nil {
		return nil, ierr.WrapStorage(err, "failed to list "+tableOf[T]())
	}
	return rows, nil
}

func (q *gormQuery[T]) First(ctx context.Context) (*T, error) {
	rows, err := q.Slice(ctx, 0, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (q *gormQuery[T]) clone() *gormQuery[T] {
	return &gormQuery[T]{
		db:      q.db,
		filters: append([]Filter[T](nil), q.filters...),
		sorts:   append([]Sort[T](nil), q.sorts...),
	}
}

func (q *gormQuery[T]) build(ctx context.Context) *gorm.DB {
	tx := q.db.WithContext(ctx).Model(new(T))
	for _, f := range q.filters {
		col := clause.Column{Name: f.Column}
		switch f.Op {
		case OpEq:
			tx = tx.Where(clause.Eq{Column: col, Value: f.Value})
		case OpGte:
			tx = tx.Where(clause.Gte{Column: col, Value: f.Value})
		case OpLte:
			tx = tx.Where(clause.Lte{Column: col, Value: f.Value})
		case OpContains:
			tx = tx.Where("LOWER(?) LIKE ? ESCAPE '\\'", col, likePattern(fmt.Sprint(f.Value)))
		}
	}
	for _, s := range q.sorts {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	return tx
}
