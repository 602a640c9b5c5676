package repositories

import (
	"context"
	"fmt"
	"sync"

	ierr "shop/internal/errors"
	"shop/internal/metrics"

	"github.com/google/uuid"
)

type memoryTable struct {
	rows  map[uuid.UUID]interface{}
	order []uuid.UUID
}

// MemoryStore is an in-memory implementation of Store. Rows are kept per
// table in insertion order and guarded by a single lock, so a commit is
// atomic with respect to readers.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*memoryTable
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]*memoryTable),
	}
}

// NewSession starts an empty unit of work.
func (s *MemoryStore) NewSession() Session {
	return &MemorySession{store: s}
}

// table must be called with s.mu held for writing.
func (s *MemoryStore) table(name string) *memoryTable {
	t, ok := s.tables[name]
	if !ok {
		t = &memoryTable{rows: make(map[uuid.UUID]interface{})}
		s.tables[name] = t
	}
	return t
}

type memoryOp struct {
	desc  string
	apply func(s *MemoryStore) (undo func(), err error)
}

// MemorySession stages repository changes and applies them under the store
// lock on Commit. A failing change undoes the ones applied before it.
type MemorySession struct {
	store   *MemoryStore
	mu      sync.Mutex
	pending []memoryOp
}

func (s *MemorySession) stage(op memoryOp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, op)
}

func (s *MemorySession) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *MemorySession) Commit(ctx context.Context) (int64, error) {
	s.mu.Lock()
	ops := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(ops) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		metrics.RecordCommit("memory", err)
		return 0, ierr.WrapStorage(err, "failed to commit unit of work")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	undos := make([]func(), 0, len(ops))
	for _, op := range ops {
		undo, err := op.apply(s.store)
		if err != nil {
			for i := len(undos) - 1; i >= 0; i-- {
				undos[i]()
			}
			err = fmt.Errorf("failed to %s: %w", op.desc, err)
			metrics.RecordCommit("memory", err)
			return 0, ierr.WrapStorage(err, "failed to commit unit of work")
		}
		undos = append(undos, undo)
	}
	metrics.RecordCommit("memory", nil)
	return int64(len(ops)), nil
}

// memoryRepository is the in-memory implementation of Repository.
type memoryRepository[T any] struct {
	session *MemorySession
}

func (r *memoryRepository[T]) Find(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store := r.session.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	t, ok := store.tables[tableOf[T]()]
	if !ok {
		return nil, nil
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	entity := row.(T)
	return &entity, nil
}

func (r *memoryRepository[T]) Query() Query[T] {
	return &sliceQuery[T]{load: r.snapshot}
}

func (r *memoryRepository[T]) snapshot() []T {
	store := r.session.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	t, ok := store.tables[tableOf[T]()]
	if !ok {
		return []T{}
	}
	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, t.rows[id].(T))
	}
	return rows
}

func (r *memoryRepository[T]) Add(entity *T) {
	name := tableOf[T]()
	baseOf(entity).ID = uuid.New()
	r.session.stage(memoryOp{
		desc: "create " + name,
		apply: func(s *MemoryStore) (func(), error) {
			t := s.table(name)
			id := baseOf(entity).ID
			if _, exists := t.rows[id]; exists {
				return nil, fmt.Errorf("duplicate key %s in %s", id, name)
			}
			t.rows[id] = *entity
			t.order = append(t.order, id)
			return func() {
				delete(t.rows, id)
				t.order = t.order[:len(t.order)-1]
			}, nil
		},
	})
}

func (r *memoryRepository[T]) Update(entity *T) {
	name := tableOf[T]()
	r.session.stage(memoryOp{
		desc: "update " + name,
		apply: func(s *MemoryStore) (func(), error) {
			t := s.table(name)
			id := baseOf(entity).ID
			old, exists := t.rows[id]
			if !exists {
				return nil, fmt.Errorf("%s with ID %s not found for update", name, id)
			}
			stored := old.(T)
			next := *entity
			baseOf(&next).KeepCreated(baseOf(&stored))
			t.rows[id] = next
			return func() { t.rows[id] = old }, nil
		},
	})
}

func (r *memoryRepository[T]) Remove(entity *T) {
	name := tableOf[T]()
	baseOf(entity).IsDeleted = true
	r.session.stage(memoryOp{
		desc: "delete " + name,
		apply: func(s *MemoryStore) (func(), error) {
			t := s.table(name)
			src := baseOf(entity)
			old, exists := t.rows[src.ID]
			if !exists {
				return nil, fmt.Errorf("%s with ID %s not found for deletion", name, src.ID)
			}
			next := old.(T)
			dst := baseOf(&next)
			dst.IsDeleted = true
			dst.DeletedBy = src.DeletedBy
			dst.DeletedByName = src.DeletedByName
			dst.DeleteByDate = src.DeleteByDate
			t.rows[src.ID] = next
			return func() { t.rows[src.ID] = old }, nil
		},
	})
}

func (r *memoryRepository[T]) Increment(id uuid.UUID, counter Counter[T], delta int) {
	name := tableOf[T]()
	r.session.stage(memoryOp{
		desc: "increment " + name + "." + counter.Column,
		apply: func(s *MemoryStore) (func(), error) {
			t := s.table(name)
			old, exists := t.rows[id]
			if !exists {
				return nil, fmt.Errorf("%s with ID %s not found", name, id)
			}
			next := old.(T)
			field := counter.Field(&next)
			if *field+delta < 0 {
				return nil, fmt.Errorf("%s.%s would drop below zero", name, counter.Column)
			}
			*field += delta
			t.rows[id] = next
			return func() { t.rows[id] = old }, nil
		},
	})
}
