package models

type Hero struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Image    string `json:"image" yaml:"image"`
}

type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Promo struct {
	Destination string `json:"destination" yaml:"destination"`
	Image       string `json:"image" yaml:"image"`
	Price       string `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
}

type Testimonial struct {
	Text     string `json:"text" yaml:"text"`
	Author   string `json:"author" yaml:"author"`
	Location string `json:"location" yaml:"location"`
	Rating   int    `json:"rating" yaml:"rating"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

type FooterColumn struct {
	Title string `json:"title" yaml:"title"`
	Links []Link `json:"links" yaml:"links"`
}

type Footer struct {
	About    string         `json:"about" yaml:"about"`
	Social   []Link         `json:"social" yaml:"social"`
	Columns  []FooterColumn `json:"columns" yaml:"columns"`
	Payments []string       `json:"payments" yaml:"payments"`
	Apps     []Link         `json:"apps" yaml:"apps"`
}

// Traveler is the mock signed-in user the reservation page is built for.
type Traveler struct {
	UserID         string `json:"userId" yaml:"userId"`
	Name           string `json:"name" yaml:"name"`
	Email          string `json:"email" yaml:"email"`
	PassengerCount int    `json:"passengerCount" yaml:"passengerCount"`
}
