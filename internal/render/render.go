// Package render turns search envelopes into the HTML search page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	pageTemplate     = "page.html.tmpl"
	unavailableLabel = "Price unavailable"
	unnamedLabel     = "Untitled game"
)

// Card is one rendered result.
type Card struct {
	GameID       string
	Name         string
	Price        string
	Priced       bool
	DealURL      string
	ThumbnailURL string
}

// Page is the view model for the search page. Notice and Error take precedence
// over results.
type Page struct {
	Query    string
	Notice   string
	Error    string
	Searched bool
	Cards    []Card
}

// Renderer executes the embedded page template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Must is New that panics on a template error.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, pageTemplate, page)
}

// ResultsPage builds the page for a successful search.
func ResultsPage(env games.ResponseEnvelope) Page {
	cards := make([]Card, 0, len(env.Results))
	for _, result := range env.Results {
		cards = append(cards, NewCard(result))
	}
	return Page{Query: env.Query, Searched: true, Cards: cards}
}

// NewCard formats a single result. Prices are shown with two decimals; a missing
// price shows the unavailable label and no deal link.
func NewCard(result games.GameResult) Card {
	card := Card{
		GameID:       result.GameID,
		Name:         strings.TrimSpace(result.Name),
		Price:        unavailableLabel,
		ThumbnailURL: result.ThumbnailURL,
	}
	if card.Name == "" {
		card.Name = unnamedLabel
	}
	if result.PriceAvailable() {
		card.Priced = true
		card.Price = FormatPrice(*result.LowestPrice)
		card.DealURL = result.DealReference
	}
	return card
}

// FormatPrice renders a price as dollars with two decimals.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
