package service

import (
	"strings"

	"github.com/alicia-green/storefront/internal/models"
)

// TimestampLayout renders SubmittedAt with millisecond precision in UTC
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const emptyField = "-"

// markupEscaper escapes the characters Telegram's HTML parse mode treats as markup
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// FormatLead renders a lead as the notification text, one field per line in a fixed order.
// The output depends only on the lead.
func FormatLead(lead models.Lead) string {
	fields := []struct {
		label string
		value string
	}{
		{"Type", lead.Type},
		{"Frequency", lead.Frequency},
		{"Name", lead.Name},
		{"Company", lead.Company},
		{"Phone", lead.Phone},
		{"Email", lead.Email},
		{"City", lead.City},
		{"Volume", lead.Volume},
		{"Flavor prefs", strings.Join(lead.FlavorPrefs, ", ")},
		{"Message", lead.Message},
		{"Time", lead.SubmittedAt.UTC().Format(TimestampLayout)},
	}

	var b strings.Builder
	b.WriteString("New lead")
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = emptyField
		}
		b.WriteByte('\n')
		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(markupEscaper.Replace(value))
	}
	return b.String()
}
