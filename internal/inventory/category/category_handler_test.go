package category

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Erasmo-Dev/Cervejaria/pkg/metadata"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCategoryHandler().RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var views []CategoryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, len(metadata.Categories()))
	assert.Equal(t, CategoryView{Code: metadata.CategoryPilsen, Description: "Pilsen"}, views[0])
	assert.Equal(t, CategoryView{Code: metadata.CategoryStout, Description: "Stout"}, views[len(views)-1])
}
