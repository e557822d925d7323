package httpresp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name             string
		total            int64
		page, limit      int
		pages            int
		hasNext, hasPrev bool
	}{
		{"empty", 0, 1, 10, 0, false, false},
		{"single page", 7, 1, 10, 1, false, false},
		{"first of three", 25, 1, 10, 3, true, false},
		{"middle", 25, 2, 10, 3, true, true},
		{"last", 25, 3, 10, 3, false, true},
		{"past the end", 25, 5, 10, 3, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.pages, meta.TotalPages)
			assert.Equal(t, tc.hasNext, meta.HasNextPage)
			assert.Equal(t, tc.hasPrev, meta.HasPreviousPage)
		})
	}
}
