package models

// Flavor is the taste profile a product is filed under
type Flavor string

const (
	FlavorMild    Flavor = "Mild"
	FlavorSpicy   Flavor = "Spicy"
	FlavorCrunchy Flavor = "Crunchy"
)

// Product represents a microgreens product in the shop catalog
type Product struct {
	Slug            string   `json:"slug" yaml:"slug"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"longDescription"`
	Image           string   `json:"image" yaml:"image"`
	Gallery         []string `json:"gallery,omitempty" yaml:"gallery"`
	UseTips         []string `json:"useTips,omitempty" yaml:"useTips"`
	Flavor          Flavor   `json:"flavor" yaml:"flavor"`
	Weight          string   `json:"weight" yaml:"weight"`
	Wholesale       bool     `json:"wholesale" yaml:"wholesale"`
	Price           string   `json:"price,omitempty" yaml:"price"`
}

// Images returns the gallery, falling back to the main image
func (p Product) Images() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	return []string{p.Image}
}

// CatalogQuery narrows and orders the product list
type CatalogQuery struct {
	Query  string `validate:"max=100"`
	Flavor string `validate:"omitempty,oneof=All Mild Spicy Crunchy"`
	Mode   string `validate:"omitempty,oneof=Packs Wholesale"`
	Sort   string `validate:"omitempty,oneof=Featured A-Z Flavor"`
}
