package rmvc_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
)

func TestResponseDefaults(t *testing.T) {
	res := rmvc.NewResponse()
	assert.Equal(t, res.Status(), 200)
	assert.Equal(t, len(res.Body()), 0)
	assert.Equal(t, len(res.Headers()), 0)
}

func TestResponseHeaders(t *testing.T) {
	res := rmvc.NewResponse()
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	res.SetHeader("content-type", consts.MIMEJSON)
	res.AddHeader(consts.HeaderSetCookie, "a=1")
	res.AddHeader(consts.HeaderSetCookie, "b=2")

	assert.Equal(t, res.Header(consts.HeaderContentType), consts.MIMEJSON)
	assert.Equal(t, res.Header("X-Missing"), "")
	assert.Equal(t, len(res.Headers()), 3)
	assert.Equal(t, res.Headers()[2], rmvc.Header{Key: consts.HeaderSetCookie, Value: "b=2"})
}

func TestResponseBody(t *testing.T) {
	res := rmvc.NewResponse()
	_, _ = res.Write([]byte("Hello "))
	_, _ = res.WriteString("World")
	assert.Equal(t, string(res.Body()), "Hello World")

	res.SetBody([]byte("replaced"))
	assert.Equal(t, string(res.Body()), "replaced")
}

func TestResponseStatus(t *testing.T) {
	res := rmvc.NewResponse()
	res.SetStatus(404)
	assert.Equal(t, res.Status(), 404)
}
