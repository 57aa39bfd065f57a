package controllers

import (
	"storeapi/dto"
	"storeapi/response"
	"storeapi/services"
	"storeapi/services/logger"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
	filters filterMemory
}

func NewOrderController(service *services.OrderService, cache *services.FilterCache, log logger.Logger) OrderController {
	return OrderController{
		service: service,
		filters: filterMemory{cache: cache, logger: log},
	}
}

// Search filters orders by id, by customer fields, by the products on their
// lines and by creation or update time. Time bounds are RFC 3339 and inclusive.
func (oc OrderController) Search(c *gin.Context) {
	var params dto.OrderSearchParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}
	if raw := c.Query("id"); raw != "" {
		id, err := parseUUID(raw, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		params.ID = id
	}

	page, err := oc.service.Search(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	oc.filters.remember(c, services.FilterEntityOrders, params)
	response.SuccessWithPagination(c, page)
}

func (oc OrderController) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	order, err := oc.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, order)
}

func (oc OrderController) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	order, err := oc.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, order)
}
