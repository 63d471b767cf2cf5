package view

import (
	"fmt"
	"html"
	"sort"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/send"
)

// HTMLView renders the model as a simple HTML page, one table row per entry.
// Values implementing element.Component render themselves.
type HTMLView struct {
	Title string
}

// Render implements rmvc.View.
func (v HTMLView) Render(model map[string]any, req rmvc.Request, res rmvc.Response) error {
	b := element.NewBuilder()
	element.RenderComponents(b, modelPage{title: v.Title, model: model})
	return send.HTML(res, b.String())
}

type modelPage struct {
	title string
	model map[string]any
}

func (p modelPage) Render(b *element.Builder) any {
	title := html.EscapeString(p.title)

	b.Html().R(
		b.Head().R(
			b.Title().T(title),
		),
		b.Body().R(
			b.H1().T(title),
			b.Table().R(
				modelRows{model: p.model}.Render(b),
			),
		),
	)
	return nil
}

type modelRows struct {
	model map[string]any
}

func (r modelRows) Render(b *element.Builder) any {
	for _, key := range sortedKeys(r.model) {
		value := r.model[key]

		b.Tr().R(
			b.Th().T(html.EscapeString(key)),
			b.Td().R(
				cell(b, value),
			),
		)
	}
	return nil
}

func cell(b *element.Builder, value any) any {
	if comp, ok := value.(element.Component); ok {
		return element.RenderComponents(b, comp)
	}
	return b.T(html.EscapeString(fmt.Sprint(value)))
}

func sortedKeys(model map[string]any) []string {
	keys := make([]string, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
