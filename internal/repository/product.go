package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mebella/catalog-api/internal/apperr"
	"github.com/mebella/catalog-api/internal/model"
	"github.com/mebella/catalog-api/internal/storage/db"
)

// ListProductsParams filters the product listing. Zero values mean no filter.
type ListProductsParams struct {
	Category string
	Search   string
	Limit    int64
}

type ProductRepository interface {
	// Create persists a product and returns the store-assigned id.
	Create(ctx context.Context, product model.Product) (string, error)
	// List returns up to Limit products matching the params, in the store's
	// natural order.
	List(ctx context.Context, params ListProductsParams) ([]model.StoredProduct, error)
	// GetByID fetches exactly one product by its id in hex string form.
	GetByID(ctx context.Context, id string) (model.StoredProduct, error)
	// Count returns the total number of stored products.
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	store *db.Store
}

func NewProductRepository(store *db.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r productRepository) Create(ctx context.Context, product model.Product) (string, error) {
	now := time.Now().UTC()
	doc := struct {
		model.Product `bson:",inline"`
		CreatedAt     time.Time `bson:"created_at"`
		UpdatedAt     time.Time `bson:"updated_at"`
	}{Product: product, CreatedAt: now, UpdatedAt: now}

	id, err := r.store.Insert(ctx, model.CollectionProduct, doc)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return "", apperr.StoreUnavailableErr.WrapParent(err)
		}
		return "", apperr.StoreWriteErr.WrapParent(err)
	}
	return id, nil
}

func (r productRepository) List(ctx context.Context, params ListProductsParams) ([]model.StoredProduct, error) {
	filter := buildProductFilter(params.Category, params.Search)

	var products []model.StoredProduct
	if err := r.store.Find(ctx, model.CollectionProduct, filter, params.Limit, &products); err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return nil, apperr.StoreUnavailableErr.WrapParent(err)
		}
		return nil, apperr.StoreReadErr.WrapParent(err)
	}
	return products, nil
}

func (r productRepository) GetByID(ctx context.Context, id string) (model.StoredProduct, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.StoredProduct{}, apperr.ProductIDInvalidErr.WrapParent(fmt.Errorf("parse object id %q: %w", id, err))
	}

	var product model.StoredProduct
	if err := r.store.FindOne(ctx, model.CollectionProduct, bson.M{"_id": oid}, &product); err != nil {
		switch {
		case errors.Is(err, db.ErrNoDocuments):
			return model.StoredProduct{}, apperr.ProductNotFoundErr.WrapParent(err)
		case errors.Is(err, db.ErrUnavailable):
			return model.StoredProduct{}, apperr.StoreUnavailableErr.WrapParent(err)
		default:
			return model.StoredProduct{}, apperr.StoreReadErr.WrapParent(err)
		}
	}
	return product, nil
}

func (r productRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, model.CollectionProduct, bson.M{})
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return 0, apperr.StoreUnavailableErr.WrapParent(err)
		}
		return 0, apperr.StoreReadErr.WrapParent(err)
	}
	return count, nil
}
