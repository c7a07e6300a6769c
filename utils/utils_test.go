package utils

import "testing"

func TestPageBounds(t *testing.T) {
	cases := []struct {
		total, page, pageSize int
		start, end            int
	}{
		{25, 1, 10, 0, 10},
		{25, 3, 10, 20, 25},
		{25, 4, 10, 25, 25}, // past the end: empty window
		{0, 1, 10, 0, 0},
		{5, 0, 0, 0, 5}, // defaults applied
	}

	for _, c := range cases {
		start, end := PageBounds(c.total, c.page, c.pageSize)
		if start != c.start || end != c.end {
			t.Fatalf("PageBounds(%d, %d, %d) = (%d, %d); want (%d, %d)",
				c.total, c.page, c.pageSize, start, end, c.start, c.end)
		}
	}
}

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	if p.TotalItems != 25 || p.TotalPages != 3 || p.CurrentPage != 2 || p.PageSize != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	p = CreatePagination(0, 0, 0)
	if p.TotalPages != 0 || p.CurrentPage != 1 || p.PageSize != DefaultPageSize {
		t.Fatalf("unexpected pagination for empty collection: %+v", p)
	}
}
