package pathutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	var gotID int64
	var gotErr error
	mux.HandleFunc("GET /summaries/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = ID(r, "id")
	})

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/summaries/42", nil)
		mux.ServeHTTP(httptest.NewRecorder(), req)
		require.NoError(t, gotErr)
		assert.Equal(t, int64(42), gotID)
	})

	t.Run("not a number", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/summaries/abc", nil)
		mux.ServeHTTP(httptest.NewRecorder(), req)
		assert.ErrorIs(t, gotErr, ErrInvalidID)
	})

	t.Run("zero", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/summaries/0", nil)
		mux.ServeHTTP(httptest.NewRecorder(), req)
		assert.ErrorIs(t, gotErr, ErrInvalidID)
	})
}
