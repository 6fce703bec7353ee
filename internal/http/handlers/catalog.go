package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/items?category=&search=&sort=&order=&page=&limit=
func (ch *CatalogHandler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := catrepo.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort"),
		SortDesc: c.Query("order") == "desc",
	}
	pageResult, err := ch.catalogService.ListItems(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, pageResult)
}

// GET /api/items/:id
func (ch *CatalogHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	item, err := ch.catalogService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item": item})
}

// GET /api/items/categories
func (ch *CatalogHandler) Categories(c *gin.Context) {
	categories, err := ch.catalogService.Categories(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"categories": categories})
}
