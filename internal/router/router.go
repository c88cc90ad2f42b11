// Package router assembles the HTTP routes of the API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ElyRami/Loterias/internal/docs" // Import swagger docs
	"github.com/ElyRami/Loterias/internal/handlers"
	"github.com/ElyRami/Loterias/internal/middleware"
	"github.com/ElyRami/Loterias/internal/services"
)

// New builds the Gin engine over the catalog and ledger services.
func New(lotteryService services.LotteryServicer, saleService services.SaleServicer) *gin.Engine {
	lotteryHandler := handlers.NewLotteryHandler(lotteryService)
	saleHandler := handlers.NewSaleHandler(saleService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	lotteries := v1.Group("/lotteries")
	lotteries.GET("", lotteryHandler.ListLotteries)
	lotteries.GET("/search", lotteryHandler.SearchLottery)
	lotteries.GET("/totals", lotteryHandler.GetTotals)
	lotteries.GET("/:id", lotteryHandler.GetLottery)
	lotteries.POST("", lotteryHandler.CreateLottery)
	lotteries.PUT("/:id/price", lotteryHandler.UpdatePrice)
	lotteries.PUT("/:id/inventory", lotteryHandler.UpdateInventory)

	sales := v1.Group("/sales")
	sales.GET("", saleHandler.ListSales)
	sales.GET("/totals", saleHandler.GetTotal)
	sales.GET("/totals/by-lottery", saleHandler.GetTotalsByLottery)
	sales.GET("/stats", saleHandler.GetStats)
	sales.GET("/:id", saleHandler.GetSale)
	sales.POST("", saleHandler.CreateSale)
	sales.PATCH("/:id", saleHandler.UpdateSale)
	sales.DELETE("/:id", saleHandler.DeleteSale)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
