package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mebella/catalog-api/internal/apperr"
	"github.com/mebella/catalog-api/internal/model"
	"github.com/mebella/catalog-api/internal/service"
	"github.com/mebella/catalog-api/pkg/validator"
)

const defaultListLimit = 50

type productHandler struct {
	logger     *slog.Logger
	validator  validator.Validator
	productSvc service.ProductService
}

func newProductHandler(logger *slog.Logger, v validator.Validator, productSvc service.ProductService) *productHandler {
	return &productHandler{
		logger:     logger,
		validator:  v,
		productSvc: productSvc,
	}
}

type createVariantRequest struct {
	Color    string   `json:"color" validate:"required"`
	ColorHex string   `json:"color_hex"`
	Size     string   `json:"size"`
	SKU      string   `json:"sku"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Stock    *int     `json:"stock" validate:"omitempty,gte=0"`
}

type createProductRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category" validate:"required"`
	BasePrice   *float64               `json:"base_price" validate:"omitempty,gte=0"`
	Images      []string               `json:"images"`
	Variants    []createVariantRequest `json:"variants" validate:"dive"`
	Brand       string                 `json:"brand"`
	Material    string                 `json:"material"`
	ColorFamily []string               `json:"color_family"`
}

func (req createProductRequest) toParams() service.CreateProductParams {
	variants := make([]service.CreateVariantParams, 0, len(req.Variants))
	for _, v := range req.Variants {
		variant := service.CreateVariantParams{
			Color:    v.Color,
			ColorHex: v.ColorHex,
			Size:     v.Size,
			SKU:      v.SKU,
		}
		if v.Price != nil {
			variant.Price = *v.Price
		}
		if v.Stock != nil {
			variant.Stock = *v.Stock
		}
		variants = append(variants, variant)
	}

	return service.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		BasePrice:   req.BasePrice,
		Images:      req.Images,
		Variants:    variants,
		Brand:       req.Brand,
		Material:    req.Material,
		ColorFamily: req.ColorFamily,
	}
}

type createProductResponse struct {
	ID string `json:"id"`
}

// productResponse renders a stored product: the store id as a plain string
// under "id", timestamps coerced to strings.
type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	BasePrice   *float64        `json:"base_price,omitempty"`
	Images      []string        `json:"images"`
	Variants    []model.Variant `json:"variants"`
	Brand       string          `json:"brand"`
	Material    string          `json:"material,omitempty"`
	ColorFamily []string        `json:"color_family,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

func newProductResponse(p model.StoredProduct) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	variants := p.Variants
	if variants == nil {
		variants = []model.Variant{}
	}

	return productResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		BasePrice:   p.BasePrice,
		Images:      images,
		Variants:    variants,
		Brand:       p.Brand,
		Material:    p.Material,
		ColorFamily: p.ColorFamily,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *productHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(r, h.logger, w, apperr.ValidationErr.WrapParent(fmt.Errorf("decode body: %w", err)))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		respondError(r, h.logger, w, err)
		return
	}

	id, err := h.productSvc.CreateProduct(r.Context(), req.toParams())
	if err != nil {
		respondError(r, h.logger, w, err)
		return
	}

	respondJSON(r.Context(), h.logger, w, http.StatusOK, createProductResponse{ID: id})
}

type listProductsQuery struct {
	Category string
	Search   string
	Limit    int `validate:"gte=1,lte=200"`
}

func (h *productHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := listProductsQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Limit:    defaultListLimit,
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(r, h.logger, w, apperr.ValidationErr.WrapParent(fmt.Errorf("parse limit %q: %w", raw, err)))
			return
		}
		query.Limit = n
	}

	if err := h.validator.Validate(query); err != nil {
		respondError(r, h.logger, w, err)
		return
	}

	products, err := h.productSvc.ListProducts(r.Context(), service.ListProductsParams{
		Category: query.Category,
		Search:   query.Search,
		Limit:    int64(query.Limit),
	})
	if err != nil {
		respondError(r, h.logger, w, err)
		return
	}

	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, newProductResponse(product))
	}

	respondJSON(r.Context(), h.logger, w, http.StatusOK, items)
}

func (h *productHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(r, h.logger, w, err)
		return
	}

	respondJSON(r.Context(), h.logger, w, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), h.logger, w, http.StatusOK, model.Categories())
}
