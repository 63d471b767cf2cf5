package rmvc

import (
	"bufio"
	"net/http"
)

// exchange holds the per-connection request and response state.
// Exchanges are pooled by the server and reset between requests.
type exchange struct {
	request
	response
	reader *bufio.Reader
}

func newExchange() *exchange {
	return &exchange{
		reader: bufio.NewReader(nil),
		request: request{
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  http.StatusOK,
		},
	}
}

// Response returns the response side of the exchange.
func (ex *exchange) Response() Response {
	return &ex.response
}

func (ex *exchange) reset() {
	ex.request.reset()
	ex.response.reset()
}
