package service

import (
	"errors"
	"testing"

	"github.com/alicia-green/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixNames(r *models.Recommendation) []string {
	out := make([]string, 0, len(r.Mix))
	for _, p := range r.Mix {
		out = append(out, p.Name)
	}
	return out
}

func TestQuizService_Recommend(t *testing.T) {
	svc := NewQuizService()

	tests := []struct {
		name       string
		answers    models.QuizAnswers
		wantTitle  string
		wantTop    string
		wantMix    []string
		wantVolume string
		wantHref   string
	}{
		{
			name:       "home salads mild weekly",
			answers:    models.QuizAnswers{Customer: "Home", UseCase: "Salads", Flavor: "Mild", Frequency: "Weekly"},
			wantTitle:  "Home mix",
			wantTop:    "Broccoli Waltham 29",
			wantMix:    []string{"Broccoli Waltham 29", "Pea Afila Tendril", "Radish Red Arrow"},
			wantVolume: "3 x 60 g packs",
			wantHref:   "/shop",
		},
		{
			name:       "restaurant garnish spicy multi weekly",
			answers:    models.QuizAnswers{Customer: "Restaurant", UseCase: "Garnish", Flavor: "Spicy", Frequency: "2-3x per week"},
			wantTitle:  "Chef mix",
			wantTop:    "Radish Red Arrow",
			wantMix:    []string{"Radish Red Arrow", "Radish Rambo", "Pea Afila Tendril"},
			wantVolume: "2 kg to 5 kg",
			wantHref:   "/contact",
		},
		{
			name:       "retail smoothies crunchy one time",
			answers:    models.QuizAnswers{Customer: "Retail", UseCase: "Smoothies", Flavor: "Crunchy", Frequency: "One time"},
			wantTitle:  "Retail mix",
			wantTop:    "Broccoli Waltham 29",
			wantMix:    []string{"Broccoli Waltham 29", "Pea Speckled Black", "Pea Afila Tendril"},
			wantVolume: "6 x 60 g packs",
			wantHref:   "/contact",
		},
		{
			name:       "restaurant salads spicy one time",
			answers:    models.QuizAnswers{Customer: "Restaurant", UseCase: "Salads", Flavor: "Spicy", Frequency: "One time"},
			wantTitle:  "Chef mix",
			wantTop:    "Radish Rambo",
			wantMix:    []string{"Broccoli Waltham 29", "Pea Afila Tendril", "Radish Red Arrow"},
			wantVolume: "0.5 kg to 1 kg",
			wantHref:   "/contact",
		},
		{
			name:       "home garnish crunchy one time",
			answers:    models.QuizAnswers{Customer: "Home", UseCase: "Garnish", Flavor: "Crunchy", Frequency: "One time"},
			wantTitle:  "Home mix",
			wantTop:    "Radish Red Arrow",
			wantMix:    []string{"Radish Red Arrow", "Radish Rambo", "Pea Afila Tendril"},
			wantVolume: "1 x 60 g pack",
			wantHref:   "/shop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := svc.Recommend(tt.answers)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, rec.Title)
			assert.Equal(t, tt.wantTop, rec.Top.Name)
			assert.Equal(t, tt.wantMix, mixNames(rec))
			assert.Equal(t, tt.wantVolume, rec.Volume)
			assert.Equal(t, tt.wantHref, rec.PrimaryHref)
		})
	}
}

func TestQuizService_Recommend_InvalidAnswers(t *testing.T) {
	svc := NewQuizService()

	for _, a := range []models.QuizAnswers{
		{},
		{Customer: "Cafe", UseCase: "Salads", Flavor: "Mild", Frequency: "Weekly"},
		{Customer: "Home", UseCase: "Soup", Flavor: "Mild", Frequency: "Weekly"},
		{Customer: "Home", UseCase: "Salads", Flavor: "Sweet", Frequency: "Weekly"},
		{Customer: "Home", UseCase: "Salads", Flavor: "Mild", Frequency: "Daily"},
	} {
		_, err := svc.Recommend(a)
		assert.True(t, errors.Is(err, ErrInvalidAnswers), "answers %+v", a)
	}
}
