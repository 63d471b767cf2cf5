// Package view holds the stock View implementations.
package view

import (
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/send"
)

// JSONView writes the model as JSON.
// A model with exactly one entry is written as that value alone,
// otherwise the whole model is written as an object.
type JSONView struct{}

// NewJSON creates a JSONView.
func NewJSON() JSONView {
	return JSONView{}
}

// Render implements rmvc.View.
func (JSONView) Render(model map[string]any, req rmvc.Request, res rmvc.Response) error {
	var payload any = model

	switch len(model) {
	case 0:
		payload = map[string]any{}
	case 1:
		for _, v := range model {
			payload = v
		}
	}

	return send.JSON(res, payload)
}
