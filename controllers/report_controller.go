package controllers

import (
	"storeapi/dto"
	"storeapi/response"
	"storeapi/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) ReportController {
	return ReportController{service: service}
}

// RevenueByPeriod answers GET /reports/revenue-by-period?startPeriod=&endPeriod=
func (rc ReportController) RevenueByPeriod(c *gin.Context) {
	var params dto.RevenueByPeriodParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := rc.service.RevenueByPeriod(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, page)
}

// BestCustomers answers GET /reports/best-customers?top=
func (rc ReportController) BestCustomers(c *gin.Context) {
	var params dto.BestCustomersParams
	if err := bindQuery(c, &params, &params.PageParams); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := rc.service.BestCustomers(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.SuccessWithPagination(c, page)
}
