package controllers

import (
	"storeapi/dto"
	"storeapi/response"
	"storeapi/services"
	"storeapi/services/logger"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	service *services.CustomerService
	filters filterMemory
}

func NewCustomerController(service *services.CustomerService, cache *services.FilterCache, log logger.Logger) CustomerController {
	return CustomerController{
		service: service,
		filters: filterMemory{cache: cache, logger: log},
	}
}

func (cc CustomerController) List(c *gin.Context) {
	var params dto.ListParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := cc.service.List(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, page)
}

// Search matches name, email or phone; blank fields are ignored.
func (cc CustomerController) Search(c *gin.Context) {
	var params dto.CustomerSearchParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := cc.service.Search(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	cc.filters.remember(c, services.FilterEntityCustomers, params)
	response.SuccessWithPagination(c, page)
}

func (cc CustomerController) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	customer, err := cc.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, customer)
}

func (cc CustomerController) Exists(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	found, err := cc.service.Exists(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Found(c, found)
}

func (cc CustomerController) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	customer, err := cc.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, customer)
}

func (cc CustomerController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.CustomerRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	customer, err := cc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, customer)
}

func (cc CustomerController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := cc.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
