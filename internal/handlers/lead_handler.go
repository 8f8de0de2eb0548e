package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/alicia-green/storefront/internal/metrics"
	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/service"
)

const msgBadRequest = "Bad request."

// leadSubmitter is the intake service used by LeadHandler
type leadSubmitter interface {
	Submit(ctx context.Context, req models.LeadRequest) (service.SubmitResult, error)
}

// LeadHandler handles POST /api/lead.
// Every response is {ok, message?} with status 200 or 400.
type LeadHandler struct {
	service leadSubmitter
	metrics *metrics.LeadMetrics
	maxBody int64
	log     *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(svc leadSubmitter, m *metrics.LeadMetrics, maxBody int64, log *slog.Logger) *LeadHandler {
	return &LeadHandler{
		service: svc,
		metrics: m,
		maxBody: maxBody,
		log:     log,
	}
}

// SubmitLead handles POST /api/lead
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("panic while handling lead", "panic", rec)
			h.respond(w, http.StatusBadRequest, msgBadRequest)
		}
	}()

	req, err := h.decode(w, r)
	if err != nil {
		h.metrics.ObserveLead(metrics.OutcomeMalformed)
		h.log.Warn("failed to decode lead request", "error", err)
		h.respond(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	// The client may hang up; the lead is still dispatched.
	ctx := context.WithoutCancel(r.Context())

	if _, err := h.service.Submit(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			h.respond(w, http.StatusBadRequest, "Name is required.")
		case errors.Is(err, service.ErrContactRequired):
			h.respond(w, http.StatusBadRequest, "Phone or email is required.")
		case errors.Is(err, service.ErrInvalidEmail):
			h.respond(w, http.StatusBadRequest, "Email looks invalid.")
		default:
			h.log.Error("failed to submit lead", "error", err)
			h.respond(w, http.StatusBadRequest, msgBadRequest)
		}
		return
	}

	h.respond(w, http.StatusOK, "")
}

func (h *LeadHandler) decode(w http.ResponseWriter, r *http.Request) (models.LeadRequest, error) {
	var req models.LeadRequest

	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

func (h *LeadHandler) respond(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.LeadResponse{
		OK:      status == http.StatusOK,
		Message: message,
	}, h.log)
}
