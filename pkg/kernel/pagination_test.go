package kernel_test

import (
	"testing"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_PagesReconstructInput(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, size := range []int{1, 3, 10, 7} {
			items := seq(n)
			pages := kernel.TotalPages(n, size)

			var rebuilt []int
			for page := 1; page <= pages; page++ {
				p := kernel.Paginate(items, kernel.PaginationOptions{Page: page, PageSize: size})
				assert.NotEmpty(t, p.Items, "n=%d size=%d page=%d", n, size, page)
				rebuilt = append(rebuilt, p.Items...)
			}
			if n == 0 {
				assert.Empty(t, rebuilt)
				continue
			}
			assert.Equal(t, items, rebuilt, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_PageAfterLastIsEmpty(t *testing.T) {
	items := seq(11)
	p := kernel.Paginate(items, kernel.PaginationOptions{Page: 3, PageSize: 5})
	require.Len(t, p.Items, 1)

	next := kernel.Paginate(items, kernel.PaginationOptions{Page: 4, PageSize: 5})
	assert.Empty(t, next.Items)
	assert.True(t, next.Empty)
	assert.Equal(t, 3, next.Page.Pages)
	assert.Equal(t, 11, next.Page.Total)
}

func TestPaginate_HugePageDoesNotPanic(t *testing.T) {
	p := kernel.Paginate(seq(5), kernel.PaginationOptions{Page: 1 << 60, PageSize: 50})
	assert.Empty(t, p.Items)
}

func TestPaginate_PageBelowOneIsEmpty(t *testing.T) {
	p := kernel.Paginate(seq(5), kernel.PaginationOptions{Page: 0, PageSize: 2})
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.Page.Pages)
}

func TestPage_Navigation(t *testing.T) {
	first := kernel.Paginate(seq(11), kernel.PaginationOptions{Page: 1, PageSize: 5}).Page
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	last := kernel.Paginate(seq(11), kernel.PaginationOptions{Page: 3, PageSize: 5}).Page
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	none := kernel.Paginate(seq(0), kernel.PaginationOptions{Page: 1, PageSize: 5}).Page
	assert.False(t, none.HasNext())
	assert.False(t, none.HasPrevious())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, kernel.TotalPages(0, 10))
	assert.Equal(t, 1, kernel.TotalPages(10, 10))
	assert.Equal(t, 2, kernel.TotalPages(11, 10))
	assert.Equal(t, 0, kernel.TotalPages(5, 0))
}

func TestPaginationOptions_Normalize(t *testing.T) {
	got := kernel.PaginationOptions{Page: -2, PageSize: 1000}.Normalize()
	assert.Equal(t, kernel.PaginationOptions{Page: 1, PageSize: kernel.DefaultPageSize}, got)

	kept := kernel.PaginationOptions{Page: 4, PageSize: 25}.Normalize()
	assert.Equal(t, kernel.PaginationOptions{Page: 4, PageSize: 25}, kept)
}

func TestMapPaginated(t *testing.T) {
	p := kernel.Paginate([]int{1, 2, 3}, kernel.PaginationOptions{Page: 1, PageSize: 2})
	doubled := kernel.MapPaginated(p, func(i int) int { return i * 2 })

	assert.Equal(t, []int{2, 4}, doubled.Items)
	assert.Equal(t, p.Page, doubled.Page)
}

func TestCountry(t *testing.T) {
	c, ok := kernel.ParseCountry("Norge")
	assert.True(t, ok)
	assert.Equal(t, kernel.CountryNorway, c)
	assert.True(t, c.IsValid())
	assert.False(t, kernel.Country("Denmark").IsValid())
}
