package view

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/send"
)

// TextView writes the model as plain text: a single entry as its value,
// otherwise one "key=value" line per entry in key order.
type TextView struct{}

// Render implements rmvc.View.
func (TextView) Render(model map[string]any, req rmvc.Request, res rmvc.Response) error {
	if len(model) == 1 {
		for _, v := range model {
			return send.Text(res, fmt.Sprint(v))
		}
	}

	sb := strings.Builder{}
	for _, key := range sortedKeys(model) {
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(fmt.Sprint(model[key]))
		sb.WriteByte('\n')
	}
	return send.Text(res, sb.String())
}
