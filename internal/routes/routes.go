package routes

import (
	"warung-catalog/internal/advisor"
	"warung-catalog/internal/catalog"
	"warung-catalog/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, cat *catalog.Catalog, adv *advisor.Client) {
	products := handlers.NewProductHandler(cat)
	advisory := handlers.NewAdvisorHandler(adv)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", products.ListProducts)
		v1.POST("/products", products.CreateProduct)
		v1.PUT("/products/:id", products.UpdateProduct)
		v1.DELETE("/products/:id", products.DeleteProduct)
		v1.POST("/products/reload", products.ReloadProducts)
		v1.GET("/categories", products.ListCategories)
		v1.GET("/status", products.Status)

		v1.GET("/suggestions", advisory.SuggestProductInfo)
		v1.GET("/product-images", advisory.GenerateProductImage)
	}
}
