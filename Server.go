package rmvc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/core/rtr"
	"github.com/rohanthewiz/serr"
)

// ServerOptions configures the HTTP/1.1 host.
type ServerOptions struct {
	Address string

	// Verbose logs the listen address and one access record per request.
	Verbose bool

	// ReadyChan is signalled just before the server enters its accept loop.
	// It should be buffered (cap 1 is enough) so the server does not block on it.
	ReadyChan chan struct{}

	URLOptions URLOptions

	// ErrorHandler turns a dispatch failure into a response.
	// The default answers 500 with the failure message as plain text.
	ErrorHandler func(Response, error)

	// MaxBodySize caps a request body in bytes. Larger bodies are answered with 413.
	// Zero or less means DefaultMaxBodySize.
	MaxBodySize int64

	Logger *slog.Logger
}

// DefaultMaxBodySize is the request body cap when ServerOptions.MaxBodySize is unset.
const DefaultMaxBodySize int64 = 10 << 20

// Server is a minimal HTTP/1.1 host that hands every request to a Dispatcher.
type Server struct {
	dispatcher   *Dispatcher
	options      ServerOptions
	logger       *slog.Logger
	exchangePool sync.Pool
}

// NewServer creates a host for an initialized dispatcher.
func NewServer(d *Dispatcher, opts ServerOptions) *Server {
	s := &Server{
		dispatcher: d,
		options:    opts,
		logger:     opts.Logger,
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.options.MaxBodySize <= 0 {
		s.options.MaxBodySize = DefaultMaxBodySize
	}
	if s.options.ErrorHandler == nil {
		s.options.ErrorHandler = internalServerError
	}
	if s.options.ReadyChan != nil && cap(s.options.ReadyChan) < 1 {
		s.logger.Warn("ready channel should have a capacity of at least 1")
	}

	s.exchangePool.New = func() any { return newExchange() }
	return s
}

// internalServerError is the default dispatch failure response.
func internalServerError(res Response, err error) {
	res.SetStatus(http.StatusInternalServerError)
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlainUTF8)
	_, _ = res.WriteString(err.Error())
}

// Request performs a synthetic request and returns the response.
// The response is kept in memory, which makes this handy in tests.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ex := newExchange()
	ex.request.headers = append(ex.request.headers, headers...)

	if body != nil {
		b, err := io.ReadAll(body)
		if err != nil {
			s.options.ErrorHandler(&ex.response, err)
			return ex.Response()
		}
		ex.request.body = b
	}

	s.handleRequest(ex, method, url, io.Discard)
	return ex.Response()
}

// Run listens on the configured address and serves until SIGINT or SIGTERM.
func (s *Server) Run() error {
	listener, err := net.Listen(consts.ProtocolTCP, s.options.Address)
	if err != nil {
		return serr.Wrap(err, "address", s.options.Address)
	}
	defer listener.Close()

	go func() {
		if err := s.Serve(listener); err != nil {
			s.logger.Error("accept loop stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	if s.options.Verbose {
		s.logger.Info("server stopping", "address", listener.Addr().String())
	}
	return nil
}

// Serve accepts connections on the listener until it is closed.
func (s *Server) Serve(listener net.Listener) error {
	if s.options.ReadyChan != nil {
		s.options.ReadyChan <- struct{}{}
	}

	if s.options.Verbose {
		s.logger.Info("server is running", "address", listener.Addr().String())
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return err
		}

		go s.handleConnection(conn)
	}
}

// handleConnection serves requests on a connection until it is closed or malformed.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ex     = s.exchangePool.Get().(*exchange)
		method string
		url    string
	)

	ex.reader.Reset(conn)

	defer conn.Close()
	defer s.exchangePool.Put(ex)

	for {
		ex.reset()

		// Request line
		message, err := ex.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)
		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]
		if !rtr.IsValidMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadMethod)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)
		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}
		if lastSpace <= space {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		url = message[space+1 : lastSpace]

		var (
			contentLen int64
			isChunked  bool
		)

		// Headers until the empty line
		for {
			message, err = ex.reader.ReadString(consts.RuneNewLine)
			if err != nil {
				return
			}

			if message == consts.CRLF {
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)
			if colon <= 0 {
				continue
			}

			key := message[:colon]
			value := strings.TrimSpace(message[colon+1:])

			ex.request.headers = append(ex.request.headers, Header{Key: key, Value: value})

			switch {
			case strings.EqualFold(key, consts.HeaderContentLength):
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil || contentLen < 0 {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			case strings.EqualFold(key, consts.HeaderTransferEncoding) &&
				strings.Contains(strings.ToLower(value), "chunked"):
				isChunked = true
			}
		}

		if isChunked {
			if !s.readChunkedBody(ex, conn) {
				return
			}
		} else if contentLen > 0 {
			if contentLen > s.options.MaxBodySize {
				_, _ = io.WriteString(conn, consts.HTTPPayloadTooLarge)
				return
			}
			if !readBody(ex, contentLen) {
				return
			}
		}

		s.handleRequest(ex, method, url, conn)

		if strings.EqualFold(ex.request.Header("Connection"), "close") {
			return
		}
	}
}

// readChunkedBody reads a chunked body into the exchange.
// It reports false when the connection should be dropped.
func (s *Server) readChunkedBody(ex *exchange, conn net.Conn) bool {
	for {
		line, err := ex.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}

		// Chunk extensions follow a semicolon
		if semi := strings.IndexByte(line, ';'); semi >= 0 {
			line = line[:semi]
		}

		size, err := strconv.ParseInt(strings.TrimSpace(line), 16, 64)
		if err != nil || size < 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return false
		}

		if size == 0 {
			// Skip trailers up to the final empty line
			for {
				line, err = ex.reader.ReadString(consts.RuneNewLine)
				if err != nil {
					return false
				}
				if line == consts.CRLF {
					return true
				}
			}
		}

		if size > s.options.MaxBodySize-int64(len(ex.request.body)) {
			_, _ = io.WriteString(conn, consts.HTTPPayloadTooLarge)
			return false
		}
		if !readBody(ex, size) {
			return false
		}

		if _, err = ex.reader.ReadString(consts.RuneNewLine); err != nil {
			return false
		}
	}
}

// readBody appends exactly n bytes from the connection to the request body.
func readBody(ex *exchange, n int64) bool {
	buf := bytes.NewBuffer(ex.request.body)
	if _, err := io.CopyN(buf, ex.reader, n); err != nil {
		return false
	}
	ex.request.body = buf.Bytes()
	return true
}

// handleRequest dispatches the exchange and writes the response to writer.
func (s *Server) handleRequest(ex *exchange, method string, url string, writer io.Writer) {
	start := time.Now()

	ex.request.method = strings.ToUpper(method)
	ex.request.scheme, ex.request.host, ex.request.path, ex.request.query = parseURL(url, s.options.URLOptions)
	if host := ex.request.Header(consts.HeaderHost); host != "" && ex.request.host == consts.Localhost {
		ex.request.host = host
	}

	// The dispatcher has already logged the failure
	if err := s.dispatcher.Dispatch(&ex.request, &ex.response); err != nil {
		ex.response.reset()
		s.options.ErrorHandler(&ex.response, err)
	}

	tmp := bytes.Buffer{}
	tmp.WriteString(consts.HTTP1)
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(strconv.Itoa(int(ex.response.status)))
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(http.StatusText(int(ex.response.status)))
	tmp.WriteString(consts.CRLF)
	tmp.WriteString(consts.HeaderContentLength)
	tmp.WriteString(": ")
	tmp.WriteString(strconv.Itoa(len(ex.response.body)))
	tmp.WriteString(consts.CRLF)

	for _, header := range ex.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	if ex.request.method != consts.MethodHead {
		tmp.Write(ex.response.body)
	}
	_, _ = writer.Write(tmp.Bytes())

	if s.options.Verbose {
		s.logger.Info(fmt.Sprintf("%s %s", ex.request.method, ex.request.path),
			"status", ex.response.status,
			"bytes", len(ex.response.body),
			"duration", time.Since(start))
	}
}
