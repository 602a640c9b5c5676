package repositories

import (
	"context"
	"sort"
)

// sliceQuery evaluates filters and sorts in Go over rows produced by load.
type sliceQuery[T any] struct {
	load    func() []T
	filters []Filter[T]
	sorts   []Sort[T]
}

// NewSliceQuery returns a Query over a fixed slice. The slice is not copied
// until the query runs.
func NewSliceQuery[T any](items []T) Query[T] {
	return &sliceQuery[T]{load: func() []T {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}}
}

func (q *sliceQuery[T]) Where(f Filter[T]) Query[T] {
	next := q.clone()
	next.filters = append(next.filters, f)
	return next
}

func (q *sliceQuery[T]) OrderBy(s Sort[T]) Query[T] {
	next := q.clone()
	next.sorts = append(next.sorts, s)
	return next
}

func (q *sliceQuery[T]) Count(ctx context.Context) (int64, error) {
	rows, err := q.run(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (q *sliceQuery[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	rows, err := q.run(ctx)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) || limit <= 0 {
		return []T{}, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (q *sliceQuery[T]) All(ctx context.Context) ([]T, error) {
	return q.run(ctx)
}

func (q *sliceQuery[T]) First(ctx context.Context) (*T, error) {
	rows, err := q.Slice(ctx, 0, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (q *sliceQuery[T]) clone() *sliceQuery[T] {
	return &sliceQuery[T]{
		load:    q.load,
		filters: append([]Filter[T](nil), q.filters...),
		sorts:   append([]Sort[T](nil), q.sorts...),
	}
}

func (q *sliceQuery[T]) run(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := q.load()
	out := rows[:0]
	for i := range rows {
		if q.matches(&rows[i]) {
			out = append(out, rows[i])
		}
	}

	if len(q.sorts) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, s := range q.sorts {
				a, b := &out[i], &out[j]
				if s.Less(a, b) {
					return true
				}
				if s.Less(b, a) {
					return false
				}
			}
			return false
		})
	}
	return out, nil
}

func (q *sliceQuery[T]) matches(e *T) bool {
	for _, f := range q.filters {
		if !f.Match(e) {
			return false
		}
	}
	return true
}
