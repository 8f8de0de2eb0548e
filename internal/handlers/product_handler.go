package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/repository"
	"github.com/alicia-green/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
// Query parameters: q, flavor (All|Mild|Spicy|Crunchy), mode (Packs|Wholesale), sort (Featured|A-Z|Flavor)
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := models.CatalogQuery{
		Query:  params.Get("q"),
		Flavor: params.Get("flavor"),
		Mode:   params.Get("mode"),
		Sort:   params.Get("sort"),
	}

	products, err := h.service.ListProducts(r.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuery) {
			h.logger.Warn("invalid catalog query", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid query", h.logger)
			return
		}

		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{slug}
// - 200: the product, gallery defaulting to the main image
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetProduct(r.Context(), slug)
	if err != nil {
		h.writeLookupError(w, slug, err)
		return
	}

	product.Gallery = product.Images()
	WriteJSON(w, http.StatusOK, product, h.logger)
}

// RelatedProducts handles GET /api/product/{slug}/related
func (h *ProductHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	related, err := h.service.RelatedProducts(r.Context(), slug)
	if err != nil {
		h.writeLookupError(w, slug, err)
		return
	}

	WriteJSON(w, http.StatusOK, related, h.logger)
}

func (h *ProductHandler) writeLookupError(w http.ResponseWriter, slug string, err error) {
	if errors.Is(err, repository.ErrProductNotFound) {
		h.logger.Info("product not found", "slug", slug)
		WriteError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	h.logger.Error("failed to get product", "slug", slug, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
}
