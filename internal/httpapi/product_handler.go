package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leonnmarcoo/Apple-store/internal/catalog"
)

// CatalogService is what the product endpoints need from the catalog.
// Consumers define this interface, not the catalog implementation.
type CatalogService interface {
	GetProducts(ctx context.Context, productType string) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

type ProductHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewProductHandler(catalog CatalogService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

// GET /api/products?type=iPhone
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productType := r.URL.Query().Get("type")
	if productType != "" && !catalog.ValidType(productType) {
		respondError(w, http.StatusBadRequest, "unknown product type")
		return
	}

	products, err := h.catalog.GetProducts(ctx, productType)
	if err != nil {
		log.Printf("error fetching products: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("error fetching product %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}
