package service

import (
	"context"
	"fmt"

	"github.com/mebella/catalog-api/internal/model"
	"github.com/mebella/catalog-api/internal/repository"
)

type CreateVariantParams struct {
	Color    string
	ColorHex string
	Size     string
	SKU      string
	Price    float64
	Stock    int
}

type CreateProductParams struct {
	Name        string
	Description string
	Category    string
	BasePrice   *float64
	Images      []string
	Variants    []CreateVariantParams
	Brand       string
	Material    string
	ColorFamily []string
}

type ListProductsParams struct {
	Category string
	Search   string
	Limit    int64
}

type ProductService interface {
	// CreateProduct persists a new product and returns the assigned id.
	CreateProduct(ctx context.Context, params CreateProductParams) (string, error)
	// ListProducts returns products matching the given filters.
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.StoredProduct, error)
	// GetProduct fetches one product by id.
	GetProduct(ctx context.Context, id string) (model.StoredProduct, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (string, error) {
	brand := params.Brand
	if brand == "" {
		brand = model.DefaultBrand
	}

	variants := make([]model.Variant, 0, len(params.Variants))
	for _, v := range params.Variants {
		variants = append(variants, model.Variant{
			Color:    v.Color,
			ColorHex: v.ColorHex,
			Size:     v.Size,
			SKU:      v.SKU,
			Price:    v.Price,
			Stock:    v.Stock,
		})
	}

	images := params.Images
	if images == nil {
		images = []string{}
	}

	product := model.Product{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		BasePrice:   params.BasePrice,
		Images:      images,
		Variants:    variants,
		Brand:       brand,
		Material:    params.Material,
		ColorFamily: params.ColorFamily,
	}

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return "", fmt.Errorf("product repository create: %w", err)
	}
	return id, nil
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) ([]model.StoredProduct, error) {
	products, err := s.productRepo.List(ctx, repository.ListProductsParams{
		Category: params.Category,
		Search:   params.Search,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("product repository list: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (model.StoredProduct, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return model.StoredProduct{}, fmt.Errorf("product repository get by id: %w", err)
	}
	return product, nil
}
