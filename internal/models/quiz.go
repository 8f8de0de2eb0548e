package models

// QuizAnswers are the four answers collected by the recommendation quiz
type QuizAnswers struct {
	Customer  CustomerType `json:"customer" validate:"required,oneof=Home Restaurant Retail"`
	UseCase   string       `json:"useCase" validate:"required,oneof=Salads Garnish Smoothies"`
	Flavor    Flavor       `json:"flavor" validate:"required,oneof=Mild Spicy Crunchy"`
	Frequency Frequency    `json:"frequency" validate:"required,oneof='One time' Weekly '2-3x per week'"`
}

// QuizPick is a product as the quiz knows it, tagged with every flavor it fits
type QuizPick struct {
	Slug string   `json:"slug"`
	Name string   `json:"name"`
	Tags []Flavor `json:"tags"`
	Note string   `json:"note"`
}

// Recommendation is the quiz result
type Recommendation struct {
	Title       string     `json:"title"`
	Top         QuizPick   `json:"top"`
	Mix         []QuizPick `json:"mix"`
	Volume      string     `json:"volume"`
	PrimaryHref string     `json:"primaryHref"`
	PrimaryText string     `json:"primaryText"`
}
