package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// CustomerType selects which lead fields are mandatory
type CustomerType string

const (
	CustomerRestaurant CustomerType = "Restaurant"
	CustomerRetail     CustomerType = "Retail"
	CustomerHome       CustomerType = "Home"
)

// Frequency is how often the customer expects deliveries
type Frequency string

const (
	FrequencyOneTime     Frequency = "One time"
	FrequencyWeekly      Frequency = "Weekly"
	FrequencyMultiWeekly Frequency = "2-3x per week"
)

// LeadRequest is the JSON body of POST /api/lead
type LeadRequest struct {
	Type        LooseString `json:"type"`
	Frequency   LooseString `json:"frequency"`
	Name        LooseString `json:"name"`
	Company     LooseString `json:"company"`
	Phone       LooseString `json:"phone"`
	Email       LooseString `json:"email"`
	City        LooseString `json:"city"`
	Volume      LooseString `json:"volume"`
	FlavorPrefs LooseList   `json:"flavorPrefs"`
	Message     LooseString `json:"message"`
	Honeypot    LooseString `json:"hp"`
}

// Lead is the canonical record built from an accepted LeadRequest
type Lead struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Frequency   string    `json:"frequency"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	Volume      string    `json:"volume"`
	FlavorPrefs []string  `json:"flavorPrefs"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// LeadResponse is the uniform envelope returned by the lead endpoint
type LeadResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// LooseString decodes any JSON scalar into its string form.
// null and false decode to "", numbers keep their literal text.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	case bytes.Equal(data, []byte("true")):
		*s = "true"
	case data[0] == '{':
		*s = "[object Object]"
	case data[0] == '[':
		var items LooseList
		if err := items.UnmarshalJSON(data); err != nil {
			return err
		}
		*s = LooseString(joinComma(items))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*s = ""
			return nil
		}
		*s = LooseString(n.String())
	}
	return nil
}

// String returns the plain string value
func (s LooseString) String() string {
	return string(s)
}

// LooseList decodes a JSON array of scalars; anything that is not an array decodes to an empty list
type LooseList []string

func (l *LooseList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = LooseList{}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(LooseList, 0, len(raw))
	for _, item := range raw {
		var s LooseString
		if err := s.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, string(s))
	}
	*l = out
	return nil
}

func joinComma(items []string) string {
	var b bytes.Buffer
	for i, v := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v)
	}
	return b.String()
}
