// Package leadform is the client side of lead capture: it holds the form
// fields, decides when a submission may be sent, and drives the
// Idle -> Submitting -> Success|Failure state machine around one call to
// the lead endpoint.
package leadform

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/alicia-green/storefront/internal/models"
)

// User-facing notices
const (
	MsgIncomplete = "Please fill name and at least one contact field (phone or email)."
	MsgSuccess    = "Thanks. We received your request and will contact you soon."
	MsgFailed     = "Failed to send."
	MsgUnexpected = "Something went wrong."
)

// ErrSubmitInFlight is returned when Submit is called while a submission is pending
var ErrSubmitInFlight = errors.New("submission already in flight")

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is what the form shows besides its fields
type State struct {
	Status Status
	Notice string
}

// Fields are the editable values of the form
type Fields struct {
	Type        models.CustomerType
	Frequency   models.Frequency
	Name        string
	Company     string
	Phone       string
	Email       string
	City        string
	Volume      string
	FlavorPrefs []models.Flavor
	Message     string
}

// DefaultFields returns the initial form values
func DefaultFields() Fields {
	return Fields{
		Type:      models.CustomerRestaurant,
		Frequency: models.FrequencyWeekly,
	}
}

// CanSubmit reports whether f is complete enough to send
func CanSubmit(f Fields) bool {
	if strings.TrimSpace(f.Name) == "" {
		return false
	}
	if strings.TrimSpace(f.Phone) == "" && strings.TrimSpace(f.Email) == "" {
		return false
	}
	if f.Type != models.CustomerHome && strings.TrimSpace(f.Company) == "" {
		return false
	}
	return true
}

// ResetFields clears every field except the customer type and frequency selectors
func ResetFields(f Fields) Fields {
	return Fields{
		Type:      f.Type,
		Frequency: f.Frequency,
	}
}

func (f Fields) clone() Fields {
	f.FlavorPrefs = slices.Clone(f.FlavorPrefs)
	return f
}

func (f Fields) request(honeypot string) models.LeadRequest {
	prefs := make(models.LooseList, 0, len(f.FlavorPrefs))
	for _, p := range f.FlavorPrefs {
		prefs = append(prefs, string(p))
	}
	return models.LeadRequest{
		Type:        models.LooseString(f.Type),
		Frequency:   models.LooseString(f.Frequency),
		Name:        models.LooseString(f.Name),
		Company:     models.LooseString(f.Company),
		Phone:       models.LooseString(f.Phone),
		Email:       models.LooseString(f.Email),
		City:        models.LooseString(f.City),
		Volume:      models.LooseString(f.Volume),
		FlavorPrefs: prefs,
		Message:     models.LooseString(f.Message),
		Honeypot:    models.LooseString(honeypot),
	}
}

// Submitter sends a lead to the intake endpoint
type Submitter interface {
	SubmitLead(ctx context.Context, req models.LeadRequest) (*Response, error)
}

// Form is one lead form instance. It is safe for concurrent use; at most
// one submission is in flight at a time.
type Form struct {
	mu     sync.Mutex
	fields Fields
	state  State
	client Submitter
}

// New creates a form with default fields in the Idle state
func New(client Submitter) *Form {
	return &Form{
		fields: DefaultFields(),
		client: client,
	}
}

// Fields returns a copy of the current field values
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.clone()
}

// State returns the current status and notice
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanSubmit reports whether the submit action is enabled
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Status != StatusSubmitting && CanSubmit(f.fields)
}

// Edit applies fn to the fields. Outside of a pending submission the form
// returns to Idle and the previous notice is cleared.
func (f *Form) Edit(fn func(*Fields)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fn(&f.fields)
	if f.state.Status != StatusSubmitting {
		f.state = State{Status: StatusIdle}
	}
}

// ToggleFlavor adds the flavor preference if absent, removes it otherwise
func (f *Form) ToggleFlavor(flavor models.Flavor) {
	f.Edit(func(fields *Fields) {
		if i := slices.Index(fields.FlavorPrefs, flavor); i >= 0 {
			fields.FlavorPrefs = slices.Delete(fields.FlavorPrefs, i, i+1)
			return
		}
		fields.FlavorPrefs = append(fields.FlavorPrefs, flavor)
	})
}

// Submit sends the current fields together with the honeypot value read at
// submit time. It returns the resulting state; the only error is
// ErrSubmitInFlight, and in that case nothing is sent.
func (f *Form) Submit(ctx context.Context, honeypot string) (State, error) {
	f.mu.Lock()
	if f.state.Status == StatusSubmitting {
		state := f.state
		f.mu.Unlock()
		return state, ErrSubmitInFlight
	}

	if !CanSubmit(f.fields) {
		f.state = State{Status: StatusFailure, Notice: MsgIncomplete}
		state := f.state
		f.mu.Unlock()
		return state, nil
	}

	req := f.fields.request(honeypot)
	f.state = State{Status: StatusSubmitting}
	f.mu.Unlock()

	resp, err := f.client.SubmitLead(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case err != nil:
		f.state = State{Status: StatusFailure, Notice: MsgUnexpected}
	case !resp.Success():
		notice := resp.Body.Message
		if notice == "" {
			notice = MsgFailed
		}
		f.state = State{Status: StatusFailure, Notice: notice}
	default:
		f.state = State{Status: StatusSuccess, Notice: MsgSuccess}
		f.fields = ResetFields(f.fields)
	}
	return f.state, nil
}
