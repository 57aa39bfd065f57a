package controllers

import (
	"storeapi/dto"
	"storeapi/response"
	"storeapi/services"
	"storeapi/services/logger"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
	filters filterMemory
}

func NewProductController(service *services.ProductService, cache *services.FilterCache, log logger.Logger) ProductController {
	return ProductController{
		service: service,
		filters: filterMemory{cache: cache, logger: log},
	}
}

func (pc ProductController) List(c *gin.Context) {
	var params dto.ListParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := pc.service.List(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, page)
}

// Search ORs title, description, slug and exact price, then applies the
// priceStart/priceEnd range.
func (pc ProductController) Search(c *gin.Context) {
	var params dto.ProductSearchParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := pc.service.Search(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	pc.filters.remember(c, services.FilterEntityProducts, params)
	response.SuccessWithPagination(c, page)
}

func (pc ProductController) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	product, err := pc.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, product)
}

func (pc ProductController) Exists(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	found, err := pc.service.Exists(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Found(c, found)
}

func (pc ProductController) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	product, err := pc.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, product)
}

func (pc ProductController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	product, err := pc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, product)
}

func (pc ProductController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := pc.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// Reindex pushes the whole catalog into the product index.
func (pc ProductController) Reindex(c *gin.Context) {
	n, err := pc.service.Reindex(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, gin.H{"indexed": n})
}
