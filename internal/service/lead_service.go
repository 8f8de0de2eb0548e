package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/alicia-green/storefront/internal/metrics"
	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrContactRequired = errors.New("phone or email is required")
	ErrInvalidEmail    = errors.New("email looks invalid")
)

// Notifier delivers a formatted lead message to the messaging channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// SubmitResult describes an accepted submission.
// Spam submissions are accepted without a Lead.
type SubmitResult struct {
	Lead *models.Lead
	Spam bool
}

// LeadService validates lead submissions and dispatches accepted ones
type LeadService struct {
	notifier Notifier
	metrics  *metrics.LeadMetrics
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewLeadService creates a new lead service. notifier and m may be nil.
func NewLeadService(notifier Notifier, m *metrics.LeadMetrics, log *slog.Logger) *LeadService {
	return &LeadService{
		notifier: notifier,
		metrics:  m,
		validate: newValidator(),
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Submit runs the intake rules in order; the first failing rule decides the error.
// Dispatch failures are logged and never returned.
func (s *LeadService) Submit(ctx context.Context, req models.LeadRequest) (SubmitResult, error) {
	if req.Honeypot != "" {
		s.metrics.ObserveLead(metrics.OutcomeSpam)
		s.log.Debug("honeypot filled, lead suppressed")
		return SubmitResult{Spam: true}, nil
	}

	name := strings.TrimSpace(req.Name.String())
	phone := strings.TrimSpace(req.Phone.String())
	email := strings.TrimSpace(req.Email.String())

	if name == "" {
		s.metrics.ObserveLead(metrics.OutcomeRejected)
		return SubmitResult{}, ErrNameRequired
	}

	if phone == "" && email == "" {
		s.metrics.ObserveLead(metrics.OutcomeRejected)
		return SubmitResult{}, ErrContactRequired
	}

	if err := s.validate.Var(email, "lead_email"); err != nil {
		s.metrics.ObserveLead(metrics.OutcomeRejected)
		return SubmitResult{}, ErrInvalidEmail
	}

	prefs := make([]string, len(req.FlavorPrefs))
	copy(prefs, req.FlavorPrefs)

	lead := &models.Lead{
		ID:          s.newID(),
		Type:        req.Type.String(),
		Frequency:   req.Frequency.String(),
		Name:        name,
		Company:     strings.TrimSpace(req.Company.String()),
		Phone:       phone,
		Email:       email,
		City:        strings.TrimSpace(req.City.String()),
		Volume:      strings.TrimSpace(req.Volume.String()),
		FlavorPrefs: prefs,
		Message:     strings.TrimSpace(req.Message.String()),
		SubmittedAt: s.now().UTC(),
	}

	s.metrics.ObserveLead(metrics.OutcomeAccepted)
	s.log.Info("new lead",
		"lead_id", lead.ID,
		"type", lead.Type,
		"frequency", lead.Frequency,
		"name", lead.Name,
		"company", lead.Company,
		"phone", lead.Phone,
		"email", lead.Email,
		"city", lead.City,
		"volume", lead.Volume,
		"flavor_prefs", lead.FlavorPrefs,
		"message", lead.Message,
		"submitted_at", lead.SubmittedAt,
	)

	s.dispatch(ctx, lead)

	return SubmitResult{Lead: lead}, nil
}

func (s *LeadService) dispatch(ctx context.Context, lead *models.Lead) {
	if s.notifier == nil {
		s.metrics.ObserveDispatch(metrics.DispatchSkipped)
		s.log.Warn("no notifier configured, lead not dispatched", "lead_id", lead.ID)
		return
	}

	err := s.notifier.Notify(ctx, FormatLead(*lead))
	var apiErr *notify.APIError
	switch {
	case err == nil:
		s.metrics.ObserveDispatch(metrics.DispatchSent)
		s.log.Info("lead dispatched", "lead_id", lead.ID)
	case errors.Is(err, notify.ErrNotConfigured):
		s.metrics.ObserveDispatch(metrics.DispatchSkipped)
		s.log.Warn("telegram not configured, lead not dispatched", "lead_id", lead.ID)
	case errors.As(err, &apiErr):
		s.metrics.ObserveDispatch(metrics.DispatchFailed)
		s.log.Error("telegram sendMessage failed",
			"lead_id", lead.ID,
			"status", apiErr.StatusCode,
			"body", apiErr.Body,
		)
	default:
		s.metrics.ObserveDispatch(metrics.DispatchFailed)
		s.log.Error("telegram sendMessage failed", "lead_id", lead.ID, "error", err)
	}
}
