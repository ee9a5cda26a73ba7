package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-catalog/internal/catalog"
	"warung-catalog/internal/models"
)

// ProductHandler traduce los intents de la presentación a operaciones
// del core. Las mutaciones responden con el resultado optimista; las
// fallas remotas llegan después vía el failure handler del core y el
// flag failed de /status.
type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// Estructuras para respuestas
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Loading  bool             `json:"loading"`
	Failed   bool             `json:"failed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// GET /v1/products?q=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.catalog.GetAll()
	if q := c.Query("q"); q != "" {
		products = catalog.Filter(products, q)
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Products: products,
		Loading:  h.catalog.IsLoading(),
		Failed:   h.catalog.Failed(),
	})
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// POST /v1/products/reload
func (h *ProductHandler) ReloadProducts(c *gin.Context) {
	if err := h.catalog.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not reach catalog store"})
		return
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Products: h.catalog.GetAll(),
		Loading:  h.catalog.IsLoading(),
		Failed:   h.catalog.Failed(),
	})
}

// GET /v1/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories(h.catalog.GetAll())})
}

// GET /v1/status
func (h *ProductHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": h.catalog.IsLoading(),
		"failed":  h.catalog.Failed(),
	})
}
