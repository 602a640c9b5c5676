package pagination_test

import (
	"context"
	"fmt"
	"testing"

	"shop/internal/models"
	"shop/internal/pagination"
	"shop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(n int) []models.Category {
	items := make([]models.Category, n)
	for i := range items {
		items[i].Name = fmt.Sprintf("Category %02d", i)
	}
	return items
}

func TestPaginate(t *testing.T) {
	q := repositories.NewSliceQuery(categories(15))

	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		wantItems int
		wantIndex int
		wantSize  int
		wantNext  bool
	}{
		{"first page", 0, 10, 10, 0, 10, true},
		{"last partial page", 1, 10, 5, 1, 10, false},
		{"past the end", 5, 10, 0, 5, 10, false},
		{"negative index", -3, 10, 10, 0, 10, true},
		{"zero size uses default", 0, 0, 10, 0, pagination.DefaultPageSize, true},
		{"size capped", 0, 500, 15, 0, pagination.MaxPageSize, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := pagination.Paginate(context.Background(), q, tt.pageIndex, tt.pageSize)
			require.NoError(t, err)

			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, int64(15), page.TotalCount)
			assert.Equal(t, tt.wantIndex, page.PageIndex)
			assert.Equal(t, tt.wantSize, page.PageSize)
			assert.Equal(t, tt.wantNext, page.HasNextPage())
		})
	}
}

func TestPaginate_PageContents(t *testing.T) {
	q := repositories.NewSliceQuery(categories(15))

	page, err := pagination.Paginate(context.Background(), q, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Category 10", page.Items[0].Name)
	assert.Equal(t, 2, page.TotalPages())
	assert.True(t, page.HasPreviousPage())
}

func TestPaginate_Empty(t *testing.T) {
	page, err := pagination.Paginate(context.Background(), repositories.NewSliceQuery([]models.Category{}), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, 0, page.TotalPages())
}

func TestMap(t *testing.T) {
	page := pagination.PaginatedList[models.Category]{
		Items:      categories(2),
		TotalCount: 12,
		PageIndex:  1,
		PageSize:   2,
	}
	names := pagination.Map(page, func(c models.Category) string { return c.Name })

	assert.Equal(t, []string{"Category 00", "Category 01"}, names.Items)
	assert.Equal(t, int64(12), names.TotalCount)
	assert.Equal(t, 1, names.PageIndex)
	assert.Equal(t, 2, names.PageSize)
}
