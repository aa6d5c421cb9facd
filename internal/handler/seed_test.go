package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_WithoutSession_NoWritesHappen(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/seed", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, app.st.Paths(""), "gated seed must not reach the store")
}

func TestSeed_WithSession_PopulatesStore(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusOK, app.verifyPIN("0102").Code)

	w := app.do(http.MethodGet, "/seed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Seed listo")

	assert.Len(t, app.st.Paths("settings/"), 1)
	assert.Len(t, app.st.Paths("categories/"), 4)
	assert.Len(t, app.st.Paths("products/"), 7)
	assert.Len(t, app.st.Paths("floors/piso1/tables/"), 15)
}
