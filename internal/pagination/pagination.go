package pagination

import (
	"context"

	"shop/internal/repositories"

	"github.com/samber/lo"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginatedList is one page of items plus the total number of matching rows.
type PaginatedList[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
}

// TotalPages returns the number of pages needed for TotalCount items.
func (p PaginatedList[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func (p PaginatedList[T]) HasPreviousPage() bool {
	return p.PageIndex > 0
}

func (p PaginatedList[T]) HasNextPage() bool {
	return p.PageIndex+1 < p.TotalPages()
}

// Normalize clamps a zero-based page index and a page size to usable values.
func Normalize(pageIndex, pageSize int) (int, int) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageIndex, pageSize
}

// Paginate counts the rows of q and returns the page
// [pageIndex*pageSize, pageIndex*pageSize+pageSize) clipped to what exists.
// No ordering is imposed; callers wanting a stable order add one to q.
func Paginate[T any](ctx context.Context, q repositories.Query[T], pageIndex, pageSize int) (PaginatedList[T], error) {
	pageIndex, pageSize = Normalize(pageIndex, pageSize)

	total, err := q.Count(ctx)
	if err != nil {
		return PaginatedList[T]{}, err
	}

	items, err := q.Slice(ctx, pageIndex*pageSize, pageSize)
	if err != nil {
		return PaginatedList[T]{}, err
	}

	return PaginatedList[T]{
		Items:      items,
		TotalCount: total,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
	}, nil
}

// Map converts the items of a page, keeping its metadata.
func Map[S, D any](p PaginatedList[S], convert func(S) D) PaginatedList[D] {
	return PaginatedList[D]{
		Items:      lo.Map(p.Items, func(item S, _ int) D { return convert(item) }),
		TotalCount: p.TotalCount,
		PageIndex:  p.PageIndex,
		PageSize:   p.PageSize,
	}
}
