package builder

import "fmt"

// Convenience composers for common surface patterns.

// FormField describes one input of a Form surface.
type FormField struct {
	ID          string
	Label       string
	Type        string // "shortText", "number", "email", ...
	Placeholder string
}

// Form builds a vertical form surface: a title, one TextField per
// field, and a submit button.
func Form(formID, title string, fields []FormField, submitAction string) (*Bundle, error) {
	if submitAction == "" {
		submitAction = "submit"
	}
	b := New()

	col := b.Column(formID)
	col.Add(b.Text(formID+"_title", title, "h3"))

	for _, f := range fields {
		col.Add(b.TextField(f.ID, f.Label, f.Placeholder, f.Type))
	}
	col.Add(b.Button(formID+"_submit", "Submit", submitAction))

	return b.Build(Options{Title: title, SurfaceType: "form", Layout: "vertical"})
}

// CardDef describes one card of a CardGrid surface.
type CardDef struct {
	Title   string
	Content string
	Value   any // optional caption value
}

// CardGrid builds a horizontal row of cards for data display.
func CardGrid(gridID, title string, cards []CardDef) (*Bundle, error) {
	b := New()

	row := b.Row(gridID)
	row.Prop("distribution", "spaceAround")

	for _, def := range cards {
		card := b.Card("")
		card.Add(b.Text("", def.Title, "h4"))
		card.Add(b.Text("", def.Content, ""))
		if def.Value != nil {
			card.Add(b.Text("", stringify(def.Value), "caption"))
		}
		row.Add(card)
	}

	return b.Build(Options{Title: title, SurfaceType: "dashboard", Layout: "horizontal"})
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
