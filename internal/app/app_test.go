package app_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/internal/app"
	"github.com/tidwall/gjson"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newServer(t *testing.T) (*rmvc.Server, *app.UserStore) {
	t.Helper()

	db, err := app.OpenDB(filepath.Join(t.TempDir(), "users.db"))
	assert.Nil(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := app.NewUserStore(db)
	d, err := app.NewDispatcher(store, quiet)
	assert.Nil(t, err)

	return rmvc.NewServer(d, rmvc.ServerOptions{Logger: quiet}), store
}

func TestWelcome(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodGet, "/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "Welcome to rmvc")
}

func TestCreateAndShowUser(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodPost, "/api/users", nil,
		strings.NewReader(`{"account":"javajigi","name":"JaeSung","email":"javajigi@slipp.net"}`))
	assert.Equal(t, response.Status(), 201)

	created := string(response.Body())
	assert.Equal(t, gjson.Get(created, "account").String(), "javajigi")
	assert.True(t, gjson.Get(created, "id").String() != "")

	response = s.Request(consts.MethodGet, "/api/user?account=javajigi", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, response.Header(consts.HeaderContentType), "application/json;charset=UTF-8")

	// A single model entry is written unwrapped
	shown := string(response.Body())
	assert.Equal(t, gjson.Get(shown, "name").String(), "JaeSung")
	assert.Equal(t, gjson.Get(shown, "email").String(), "javajigi@slipp.net")
	assert.Equal(t, gjson.Get(shown, "id").String(), gjson.Get(created, "id").String())
}

func TestListUsers(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodGet, "/api/users", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "[]")

	for _, body := range []string{`{"account":"zed","name":"Zed"}`, `{"account":"amy","name":"Amy"}`} {
		response = s.Request(consts.MethodPost, "/api/users", nil, strings.NewReader(body))
		assert.Equal(t, response.Status(), 201)
	}

	response = s.Request(consts.MethodGet, "/api/users", nil, nil)
	list := string(response.Body())
	assert.Equal(t, gjson.Get(list, "#").Int(), int64(2))
	assert.Equal(t, gjson.Get(list, "0.account").String(), "amy")
	assert.Equal(t, gjson.Get(list, "1.account").String(), "zed")

	response = s.Request(consts.MethodGet, "/api/users?format=html", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, response.Header(consts.HeaderContentType), consts.MIMEHTMLUTF8)
	assert.Contains(t, string(response.Body()), "<title>Users</title>")
	assert.Contains(t, string(response.Body()), "<td>amy</td>")
}

func TestListUsersEscapesHTML(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodPost, "/api/users", nil,
		strings.NewReader(`{"account":"<script>alert(1)</script>","name":"Tom & Jerry","email":"t@j.io"}`))
	assert.Equal(t, response.Status(), 201)

	response = s.Request(consts.MethodGet, "/api/users?format=html", nil, nil)
	assert.Equal(t, response.Status(), 200)

	body := string(response.Body())
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, body, "Tom &amp; Jerry")
	assert.NotContains(t, body, "<script>alert")
}

func TestUserErrors(t *testing.T) {
	s, _ := newServer(t)

	tests := []struct {
		method  string
		url     string
		body    string
		message string
	}{
		{method: consts.MethodGet, url: "/api/user", message: "account is required"},
		{method: consts.MethodGet, url: "/api/user?account=nobody", message: "user not found"},
		{method: consts.MethodPost, url: "/api/users", body: `{"account":`, message: "request body is not valid JSON"},
		{method: consts.MethodPost, url: "/api/users", body: `{"name":"x"}`, message: "account is required"},
		{method: consts.MethodDelete, url: "/api/users", message: "rmvc: no handler for request: DELETE /api/users"},
	}

	for _, tt := range tests {
		response := s.Request(tt.method, tt.url, nil, strings.NewReader(tt.body))
		assert.Equal(t, response.Status(), 500)
		assert.Equal(t, string(response.Body()), tt.message)
	}
}

func TestLogout(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodPost, "/logout", []rmvc.Header{{consts.HeaderCookie, "session=abc"}}, nil)
	assert.Equal(t, response.Status(), 302)
	assert.Equal(t, response.Header(consts.HeaderLocation), "/")
	assert.Contains(t, response.Header(consts.HeaderSetCookie), "session=")
	assert.Contains(t, response.Header(consts.HeaderSetCookie), "Max-Age=0")
}

func TestHealth(t *testing.T) {
	s, _ := newServer(t)

	response := s.Request(consts.MethodGet, "/health", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, gjson.Get(string(response.Body()), "status").String(), "ok")
	assert.True(t, gjson.Get(string(response.Body()), "goroutines").Int() > 0)
}

func TestNewDispatcherWithoutStore(t *testing.T) {
	_, err := app.NewDispatcher(nil, quiet)
	assert.True(t, err != nil)
	assert.Contains(t, err.Error(), "user store is required")
}
