package routes

import (
	"time"

	"storeapi/controllers"
	middlewares "storeapi/middleware"
	"storeapi/repositories"
	"storeapi/services"
	"storeapi/services/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and controllers under /api/v1.
// redisCli may be nil, which disables the search-filter memory; a nil es
// disables the product index.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, es *elasticsearch.Client, log logger.Logger, reportLocation *time.Location) {
	customerRepo := repositories.NewCustomerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	filterCache := services.NewFilterCache(redisCli)

	customerService := services.NewCustomerService(services.CustomerServiceOptions{Store: customerRepo, Logger: log})
	productOpts := services.ProductServiceOptions{Store: productRepo, Logger: log}
	if es != nil {
		productOpts.Index = services.NewElasticProductIndex(es, services.DefaultProductIndex)
	}
	productService := services.NewProductService(productOpts)
	orderService := services.NewOrderService(services.OrderServiceOptions{
		Orders:    orderRepo,
		Customers: customerRepo,
		Products:  productRepo,
		Logger:    log,
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		Orders:   orderRepo,
		Logger:   log,
		Location: reportLocation,
	})

	customerController := controllers.NewCustomerController(customerService, filterCache, log)
	productController := controllers.NewProductController(productService, filterCache, log)
	orderController := controllers.NewOrderController(orderService, filterCache, log)
	reportController := controllers.NewReportController(reportService)
	filterController := controllers.NewSearchFilterController(filterCache)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler(log))

	v1.GET("/customers", customerController.List)
	v1.GET("/customers/search", customerController.Search)
	v1.GET("/customers/:id", customerController.GetByID)
	v1.HEAD("/customers/:id", customerController.Exists)
	v1.POST("/customers", customerController.Create)
	v1.PUT("/customers/:id", customerController.Update)
	v1.DELETE("/customers/:id", customerController.Delete)

	v1.GET("/products", productController.List)
	v1.GET("/products/search", productController.Search)
	v1.GET("/products/:id", productController.GetByID)
	v1.HEAD("/products/:id", productController.Exists)
	v1.POST("/products", productController.Create)
	v1.POST("/products/reindex", productController.Reindex)
	v1.PUT("/products/:id", productController.Update)
	v1.DELETE("/products/:id", productController.Delete)

	v1.GET("/orders/search", orderController.Search)
	v1.GET("/orders/:id", orderController.GetByID)
	v1.POST("/orders", orderController.Create)

	v1.GET("/reports/revenue-by-period", reportController.RevenueByPeriod)
	v1.GET("/reports/best-customers", reportController.BestCustomers)

	v1.GET("/search-filters/:entity", filterController.GetLast)
	v1.DELETE("/search-filters/:entity", filterController.Clear)
}
