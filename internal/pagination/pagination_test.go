package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{name: "empty collection still has one page", count: 0, pageSize: 3, want: 1},
		{name: "exact multiple", count: 6, pageSize: 3, want: 2},
		{name: "partial last page", count: 7, pageSize: 3, want: 3},
		{name: "single item", count: 1, pageSize: 3, want: 1},
		{name: "invalid page size is treated as one per page", count: 10, pageSize: 0, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 1, Clamp(-5, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 3, Clamp(99, 3))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("full first page", func(t *testing.T) {
		page := Paginate(items, 3, 1)
		assert.Equal(t, []int{1, 2, 3}, page.Items)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("partial last page", func(t *testing.T) {
		page := Paginate(items, 3, 3)
		assert.Equal(t, []int{7}, page.Items)
		assert.Equal(t, 3, page.Page)
	})

	t.Run("out of range page clamps to last", func(t *testing.T) {
		page := Paginate(items, 3, 99)
		assert.Equal(t, []int{7}, page.Items)
		assert.Equal(t, 3, page.Page)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		page := Paginate(items, 3, 0)
		assert.Equal(t, []int{1, 2, 3}, page.Items)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("empty input yields empty single page", func(t *testing.T) {
		page := Paginate([]int{}, 3, 1)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("repeated reads of the same page are identical", func(t *testing.T) {
		first := Paginate(items, 3, 2)
		second := Paginate(items, 3, 2)
		assert.Equal(t, first, second)
	})
}
