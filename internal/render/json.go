package render

import (
	"io"

	"github.com/goccy/go-json"
)

type jsonRenderer struct{}

func (jsonRenderer) Name() string     { return "json" }
func (jsonRenderer) Filename() string { return "tokens.json" }

// Document is the JSON form of a theme.
type Document struct {
	Name      string        `json:"name"`
	Tokens    Tree          `json:"tokens"`
	Utilities []UtilityJSON `json:"utilities"`
}

type UtilityJSON struct {
	Selector     string            `json:"selector"`
	Declarations []DeclarationJSON `json:"declarations"`
}

type DeclarationJSON struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// NewDocument builds the JSON document for an input.
func NewDocument(in Input) Document {
	doc := Document{Name: in.Theme.Name, Tokens: NewTree(in.Theme)}
	for _, r := range in.Utilities() {
		u := UtilityJSON{Selector: r.Selector}
		for _, d := range r.Declarations {
			u.Declarations = append(u.Declarations, DeclarationJSON{Property: d.Property, Value: d.Value})
		}
		doc.Utilities = append(doc.Utilities, u)
	}
	return doc
}

func (jsonRenderer) Render(w io.Writer, in Input) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(in))
}
