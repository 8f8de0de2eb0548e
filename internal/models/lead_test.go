package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRequest_CoercesScalars(t *testing.T) {
	body := `{
		"type": "Restaurant",
		"name": 42,
		"company": null,
		"phone": 0,
		"email": false,
		"city": true,
		"volume": {"kg": 2},
		"message": ["a", 1],
		"flavorPrefs": "Mild",
		"hp": "0"
	}`

	var req LeadRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, LooseString("Restaurant"), req.Type)
	assert.Equal(t, LooseString("42"), req.Name)
	assert.Empty(t, req.Company)
	assert.Empty(t, req.Phone)
	assert.Empty(t, req.Email)
	assert.Equal(t, LooseString("true"), req.City)
	assert.Equal(t, LooseString("[object Object]"), req.Volume)
	assert.Equal(t, LooseString("a,1"), req.Message)
	assert.Empty(t, req.FlavorPrefs)
	assert.Equal(t, LooseString("0"), req.Honeypot)
}

func TestLooseList_Array(t *testing.T) {
	var l LooseList
	require.NoError(t, json.Unmarshal([]byte(`["Mild", "Spicy", 3]`), &l))
	assert.Equal(t, LooseList{"Mild", "Spicy", "3"}, l)
}

func TestLooseString_MalformedString(t *testing.T) {
	var s LooseString
	assert.Error(t, s.UnmarshalJSON([]byte(`"unterminated`)))
}

func TestProduct_Images(t *testing.T) {
	p := Product{Image: "/a.png"}
	assert.Equal(t, []string{"/a.png"}, p.Images())

	p.Gallery = []string{"/b.png", "/c.png"}
	assert.Equal(t, []string{"/b.png", "/c.png"}, p.Images())
}
