package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{"defaults", "", Params{Page: 1, Limit: 20}, false},
		{"explicit", "?page=3&limit=50", Params{Page: 3, Limit: 50}, false},
		{"page only", "?page=2", Params{Page: 2, Limit: 20}, false},
		{"zero page", "?page=0", Params{}, true},
		{"negative page", "?page=-1", Params{}, true},
		{"non-numeric page", "?page=abc", Params{}, true},
		{"limit over max", "?limit=101", Params{}, true},
		{"zero limit", "?limit=0", Params{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/summaries"+tt.query, nil)
			got, err := ParseQueryParams(r, cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 20, CalculateOffset(2, 20))
	assert.Equal(t, 20, CalculateOffset(3, 10))
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 1},
		{10, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.limit),
			"total=%d limit=%d", tt.total, tt.limit)
	}
}
