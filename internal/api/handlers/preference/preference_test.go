package preference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gluca-api/internal/core/preference"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *preference.Store) {
	gin.SetMode(gin.TestMode)
	store := preference.NewStore(context.Background(), preference.NewMemoryBackend())
	handler := NewHandler(store)

	router := gin.New()
	router.GET("/preferences", handler.HandleGet)
	router.PUT("/preferences", handler.HandlePut)
	return router, store
}

func TestGetReturnsDefaults(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var prefs common.DietaryPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Empty(t, prefs.Diet)
	assert.Empty(t, prefs.Intolerances)
}

func TestPutRoundTrip(t *testing.T) {
	router, store := newTestRouter()

	body := `{"diet":"vegetarian","intolerances":["gluten"],"excludeIngredients":["Mushroom"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	snapshot := store.Snapshot()
	assert.Equal(t, "vegetarian", snapshot.Diet)
	assert.Equal(t, []string{"gluten"}, snapshot.Intolerances)
	assert.Equal(t, []string{"mushroom"}, snapshot.ExcludeIngredients)
}

func TestPutRejectsUnknownDiet(t *testing.T) {
	router, store := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(`{"diet":"carnivore"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "carnivore")
	assert.Empty(t, store.Snapshot().Diet)
}

func TestPutRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidRequest)
}
