package view

import (
	"errors"
	"net/http"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
)

// RedirectView sends the client to Location. Status defaults to 302.
type RedirectView struct {
	Location string
	Status   int
}

// Render implements rmvc.View. The model is ignored.
func (v RedirectView) Render(model map[string]any, req rmvc.Request, res rmvc.Response) error {
	if v.Location == "" {
		return errors.New("view: redirect without a location")
	}

	status := v.Status
	if status == 0 {
		status = http.StatusFound
	}

	res.SetStatus(status)
	res.SetHeader(consts.HeaderLocation, v.Location)
	return nil
}
