package types

// EventPage is the themed landing page configuration for one event type
// (kiddie party, wedding, debut, corporate). It is pure static content
// loaded from the catalog file and served read-only.
type EventPage struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Tagline      string        `yaml:"tagline" json:"tagline"`
	Description  string        `yaml:"description" json:"description"`
	Colors       EventColors   `yaml:"colors" json:"colors"`
	Hero         EventHero     `yaml:"hero" json:"hero"`
	Pricing      []PricingTier `yaml:"pricing" json:"pricing"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials"`
	Metadata     PageMetadata  `yaml:"metadata" json:"metadata"`
}

// EventColors holds the theme palette for a landing page.
type EventColors struct {
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
}

// EventHero holds the hero-section copy.
type EventHero struct {
	BadgeText      string `yaml:"badge_text" json:"badge_text"`
	Title          string `yaml:"title" json:"title"`
	TitleHighlight string `yaml:"title_highlight" json:"title_highlight"`
	Description    string `yaml:"description" json:"description"`
	CTAText        string `yaml:"cta_text" json:"cta_text"`
	SocialProof    string `yaml:"social_proof" json:"social_proof"`
}

// PricingTier is one rental package offered on a landing page.
type PricingTier struct {
	Badge       string   `yaml:"badge" json:"badge"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	Popular     bool     `yaml:"popular,omitempty" json:"popular,omitempty"`
}

// Testimonial is a customer quote shown on a landing page.
type Testimonial struct {
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	Quote    string `yaml:"quote" json:"quote"`
	Featured bool   `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// PageMetadata holds the SEO title and description for a landing page.
type PageMetadata struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}
