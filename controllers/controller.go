package controllers

import (
	"context"

	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/middleware"
	"storeapi/services"
	"storeapi/services/logger"
	"storeapi/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindQuery binds the query string into params, fills paging defaults and
// runs the validate tags.
func bindQuery(c *gin.Context, params interface{}, page *dto.PageParams) error {
	if err := c.ShouldBindQuery(params); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid query parameters", err)
	}
	*page = page.WithDefaults()
	return validator.ValidateParams(params)
}

func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid request body", err)
	}
	return nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, field+" must be a UUID", err)
	}
	return id, nil
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	return parseUUID(c.Param("id"), "id")
}

// filterMemory records the filters of a successful search for the session.
type filterMemory struct {
	cache  *services.FilterCache
	logger logger.Logger
}

func (m filterMemory) remember(c *gin.Context, entity string, filters interface{}) {
	if !m.cache.Enabled() {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	if err := m.cache.SaveLastFilters(ctx, middleware.SessionID(c), entity, filters); err != nil {
		m.logger.Error("saving %s filters: %v", entity, err)
	}
}
