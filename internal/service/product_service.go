package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/repository"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrInvalidQuery = errors.New("invalid catalog query")

const maxRelated = 3

// flavorRank orders products when sorting by flavor
var flavorRank = map[models.Flavor]int{
	models.FlavorMild:    1,
	models.FlavorCrunchy: 2,
	models.FlavorSpicy:   3,
}

// ProductService handles business logic for products
type ProductService struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: newValidator(),
	}
}

// ListProducts returns the products matching q, in the requested order.
// A zero query returns every product in featured order.
func (s *ProductService) ListProducts(ctx context.Context, q models.CatalogQuery) ([]models.Product, error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Query))
	list := make([]models.Product, 0, len(all))
	for _, p := range all {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if q.Flavor != "" && q.Flavor != "All" && string(p.Flavor) != q.Flavor {
			continue
		}
		if q.Mode == "Wholesale" && !p.Wholesale {
			continue
		}
		list = append(list, p)
	}

	switch q.Sort {
	case "A-Z":
		// Collator is not safe for concurrent use.
		c := collate.New(language.English)
		slices.SortStableFunc(list, func(a, b models.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	case "Flavor":
		slices.SortStableFunc(list, func(a, b models.Product) int {
			return flavorRank[a.Flavor] - flavorRank[b.Flavor]
		})
	}

	return list, nil
}

// GetProduct returns a product by slug
func (s *ProductService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// RelatedProducts returns up to three other products sharing the flavor of slug
func (s *ProductService) RelatedProducts(ctx context.Context, slug string) ([]models.Product, error) {
	current, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]models.Product, 0, maxRelated)
	for _, p := range all {
		if p.Slug == slug || p.Flavor != current.Flavor {
			continue
		}
		related = append(related, p)
		if len(related) == maxRelated {
			break
		}
	}
	return related, nil
}
