package send

import (
	"encoding/json"

	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
)

// HTML sends the body with the content type set to `text/html`.
func HTML(res rmvc.Response, body string) error {
	res.SetHeader(consts.HeaderContentType, consts.MIMEHTMLUTF8)
	_, err := res.WriteString(body)
	return err
}

// JSON encodes the object in JSON format and sends it with the content type
// set to `application/json;charset=UTF-8`. No trailing newline is written.
func JSON(res rmvc.Response, object any) error {
	b, err := json.Marshal(object)
	if err != nil {
		return err
	}
	res.SetHeader(consts.HeaderContentType, consts.MIMEJSONUTF8)
	_, err = res.Write(b)
	return err
}

// Text sends the body with the content type set to `text/plain`.
func Text(res rmvc.Response, body string) error {
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlainUTF8)
	_, err := res.WriteString(body)
	return err
}
