package controllers

import (
	"storeapi/errors"
	"storeapi/middleware"
	"storeapi/response"
	"storeapi/services"

	"github.com/gin-gonic/gin"
)

type SearchFilterController struct {
	cache *services.FilterCache
}

func NewSearchFilterController(cache *services.FilterCache) SearchFilterController {
	return SearchFilterController{cache: cache}
}

// GetLast returns the filters of the session's last search on :entity.
func (fc SearchFilterController) GetLast(c *gin.Context) {
	entity := c.Param("entity")
	target := services.NewFilterTarget(entity)
	if target == nil {
		_ = c.Error(errors.NewAppError(errors.ErrCodeValidation, "Unknown filter entity: "+entity, errors.ErrInvalidInput))
		return
	}

	found, err := fc.cache.GetLastFilters(c.Request.Context(), middleware.SessionID(c), entity, target)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !found {
		response.NotFound(c, "No filters remembered for this session")
		return
	}
	response.Success(c, target)
}

// Clear forgets the session's filters for :entity.
func (fc SearchFilterController) Clear(c *gin.Context) {
	entity := c.Param("entity")
	if services.NewFilterTarget(entity) == nil {
		_ = c.Error(errors.NewAppError(errors.ErrCodeValidation, "Unknown filter entity: "+entity, errors.ErrInvalidInput))
		return
	}

	if err := fc.cache.ClearLastFilters(c.Request.Context(), middleware.SessionID(c), entity); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
