package app

import (
	"context"
	"errors"
	"html"
	"runtime"
	"time"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/consts"
	"github.com/rohanthewiz/rmvc/mapping"
	"github.com/rohanthewiz/rmvc/view"
	"github.com/tidwall/gjson"
)

// Namespace is the root the demo's declarative mapping scans.
const Namespace = "github.com/rohanthewiz/rmvc/internal/app"

// UserController serves the user API.
type UserController struct {
	store *UserStore
}

// List returns every user, as an HTML page when ?format=html.
func (c *UserController) List(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	users, err := c.store.List(context.Background())
	if err != nil {
		return nil, err
	}

	if req.QueryParam("format") == "html" {
		return rmvc.NewModelAndView(view.HTMLView{Title: "Users"}).
			AddObject("users", userTable(users)).
			AddObject("count", len(users)), nil
	}
	return rmvc.NewModelAndView(view.NewJSON()).AddObject("users", users), nil
}

// Show returns the user named by the account query parameter.
func (c *UserController) Show(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	account := req.QueryParam("account")
	if account == "" {
		return nil, errors.New("account is required")
	}

	user, err := c.store.FindByAccount(context.Background(), account)
	if err != nil {
		return nil, err
	}
	return rmvc.NewModelAndView(view.NewJSON()).AddObject("user", user), nil
}

// Create registers a user from a JSON body such as
// {"account":"jane","name":"Jane","email":"jane@example.com"}.
func (c *UserController) Create(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	body := req.Body()
	if !gjson.ValidBytes(body) {
		return nil, errors.New("request body is not valid JSON")
	}

	fields := gjson.GetManyBytes(body, "account", "name", "email")
	if fields[0].String() == "" {
		return nil, errors.New("account is required")
	}

	user, err := c.store.Create(context.Background(), fields[0].String(), fields[1].String(), fields[2].String())
	if err != nil {
		return nil, err
	}

	res.SetStatus(201)
	return rmvc.NewModelAndView(view.NewJSON()).AddObject("user", user), nil
}

// userTable renders users as an HTML table.
type userTable []User

func (t userTable) Render(b *element.Builder) any {
	b.Table().R(
		b.Tr().R(
			b.Th().T("Account"),
			b.Th().T("Name"),
			b.Th().T("Email"),
		),
		t.rows(b),
	)
	return nil
}

func (t userTable) rows(b *element.Builder) any {
	for _, u := range t {
		b.Tr().R(
			b.Td().T(html.EscapeString(u.Account)),
			b.Td().T(html.EscapeString(u.Name)),
			b.Td().T(html.EscapeString(u.Email)),
		)
	}
	return nil
}

// HealthController reports liveness.
type HealthController struct{}

// Status reports uptime and goroutine count.
func (HealthController) Status(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	return rmvc.NewModelAndView(view.NewJSON()).
		AddObject("status", "ok").
		AddObject("uptime", time.Since(started).Round(time.Second).String()).
		AddObject("goroutines", runtime.NumGoroutine()), nil
}

var started = time.Now()

// Controllers declares the demo controllers.
func Controllers(store *UserStore) []mapping.Controller {
	return []mapping.Controller{
		mapping.DeclareWith(Namespace+"/users",
			func() (*UserController, error) {
				if store == nil {
					return nil, errors.New("user store is required")
				}
				return &UserController{store: store}, nil
			},
			mapping.Handle("/api/users", (*UserController).List, consts.MethodGet),
			mapping.Handle("/api/users", (*UserController).Create, consts.MethodPost),
			mapping.Handle("/api/user", (*UserController).Show, consts.MethodGet),
		),
		mapping.Declare[HealthController](Namespace+"/health",
			mapping.Handle("/health", HealthController.Status, consts.MethodGet, consts.MethodHead),
		),
	}
}
