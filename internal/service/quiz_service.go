package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alicia-green/storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidAnswers = errors.New("invalid quiz answers")

// quizPicks is the product list the quiz recommends from, in preference order
var quizPicks = []models.QuizPick{
	{Slug: "radish-red-arrow", Name: "Radish Red Arrow", Tags: []models.Flavor{models.FlavorSpicy, models.FlavorCrunchy}, Note: "Bold peppery bite, great color."},
	{Slug: "pea-afila-tendril", Name: "Pea Afila Tendril", Tags: []models.Flavor{models.FlavorMild, models.FlavorCrunchy}, Note: "Sweet crunch, chef favorite."},
	{Slug: "broccoli-waltham-29", Name: "Broccoli Waltham 29", Tags: []models.Flavor{models.FlavorMild}, Note: "Clean taste, versatile everyday choice."},
	{Slug: "radish-rambo", Name: "Radish Rambo", Tags: []models.Flavor{models.FlavorSpicy}, Note: "Strong radish punch, vivid leaves."},
	{Slug: "pea-speckled-black", Name: "Pea Speckled Black", Tags: []models.Flavor{models.FlavorMild, models.FlavorCrunchy}, Note: "Sweet pea profile, great texture."},
}

var quizMixes = map[string][]string{
	"Garnish":   {"Radish Red Arrow", "Radish Rambo", "Pea Afila Tendril"},
	"Smoothies": {"Broccoli Waltham 29", "Pea Speckled Black", "Pea Afila Tendril"},
	"Salads":    {"Broccoli Waltham 29", "Pea Afila Tendril", "Radish Red Arrow"},
}

// QuizService turns quiz answers into a product recommendation
type QuizService struct {
	picks    []models.QuizPick
	validate *validator.Validate
}

// NewQuizService creates a quiz service over the default pick list
func NewQuizService() *QuizService {
	return &QuizService{
		picks:    quizPicks,
		validate: newValidator(),
	}
}

// Recommend returns the recommendation for a full set of answers
func (s *QuizService) Recommend(a models.QuizAnswers) (*models.Recommendation, error) {
	if err := s.validate.Struct(a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	rec := &models.Recommendation{
		Title:  mixTitle(a.Customer),
		Top:    s.topPick(a.UseCase, a.Flavor),
		Volume: suggestedVolume(a.Customer, a.Frequency),
	}

	for _, name := range quizMixes[a.UseCase] {
		if p, ok := s.byName(name); ok {
			rec.Mix = append(rec.Mix, p)
		}
	}

	if a.Customer == models.CustomerHome {
		rec.PrimaryHref = "/shop"
		rec.PrimaryText = "Shop 60 g packs"
	} else {
		rec.PrimaryHref = "/contact"
		rec.PrimaryText = "Request wholesale pricing"
	}

	return rec, nil
}

func (s *QuizService) topPick(useCase string, flavor models.Flavor) models.QuizPick {
	var matching []models.QuizPick
	for _, p := range s.picks {
		if slices.Contains(p.Tags, flavor) {
			matching = append(matching, p)
		}
	}

	switch useCase {
	case "Garnish":
		if len(matching) > 0 {
			return matching[0]
		}
		return s.picks[0]
	case "Smoothies":
		for _, p := range s.picks {
			if strings.Contains(p.Name, "Broccoli") {
				return p
			}
		}
		return s.picks[2]
	default:
		if len(matching) > 1 {
			return matching[1]
		}
		if len(matching) == 1 {
			return matching[0]
		}
		return s.picks[1]
	}
}

func (s *QuizService) byName(name string) (models.QuizPick, bool) {
	for _, p := range s.picks {
		if p.Name == name {
			return p, true
		}
	}
	return models.QuizPick{}, false
}

func mixTitle(c models.CustomerType) string {
	switch c {
	case models.CustomerRestaurant:
		return "Chef mix"
	case models.CustomerRetail:
		return "Retail mix"
	default:
		return "Home mix"
	}
}

func suggestedVolume(c models.CustomerType, f models.Frequency) string {
	switch c {
	case models.CustomerRestaurant:
		switch f {
		case models.FrequencyMultiWeekly:
			return "2 kg to 5 kg"
		case models.FrequencyWeekly:
			return "1 kg to 2 kg"
		default:
			return "0.5 kg to 1 kg"
		}
	case models.CustomerRetail:
		if f == models.FrequencyWeekly {
			return "12 x 60 g packs"
		}
		return "6 x 60 g packs"
	default:
		if f == models.FrequencyWeekly {
			return "3 x 60 g packs"
		}
		return "1 x 60 g pack"
	}
}
