package category

import (
	"net/http"

	"github.com/Erasmo-Dev/Cervejaria/pkg/metadata"

	"github.com/gin-gonic/gin"
)

type CategoryView struct {
	Code        metadata.Category `json:"code"`
	Description string            `json:"description"`
}

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/categories", h.GetCategories)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories := metadata.Categories()
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, CategoryView{Code: category, Description: category.Description()})
	}

	c.JSON(http.StatusOK, views)
}
