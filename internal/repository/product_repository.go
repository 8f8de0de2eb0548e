package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/alicia-green/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

//go:embed catalog.yaml
var seedCatalog []byte

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// The catalog is read-only after construction.
type InMemoryProductRepository struct {
	ordered []models.Product
	bySlug  map[string]int
}

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// NewInMemoryProductRepository creates a repository seeded with the embedded catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	repo, err := NewFromYAML(seedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return repo
}

// NewFromYAML builds a repository from a YAML catalog document.
// Products keep the document order, which is the "featured" order.
func NewFromYAML(data []byte) (*InMemoryProductRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	repo := &InMemoryProductRepository{
		ordered: make([]models.Product, 0, len(file.Products)),
		bySlug:  make(map[string]int, len(file.Products)),
	}

	for i, p := range file.Products {
		if p.Slug == "" {
			return nil, fmt.Errorf("product %d has no slug", i)
		}
		if _, dup := repo.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		switch p.Flavor {
		case models.FlavorMild, models.FlavorSpicy, models.FlavorCrunchy:
		default:
			return nil, fmt.Errorf("product %q has unknown flavor %q", p.Slug, p.Flavor)
		}
		repo.bySlug[p.Slug] = len(repo.ordered)
		repo.ordered = append(repo.ordered, p)
	}

	return repo, nil
}

// GetAll returns all products in featured order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.ordered))
	copy(products, r.ordered)
	return products, nil
}

// GetBySlug returns a product by its slug
func (r *InMemoryProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	idx, exists := r.bySlug[slug]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.ordered[idx]
	return &product, nil
}
