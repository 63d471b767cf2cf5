package app

import (
	"github.com/rohanthewiz/rmvc"
	"github.com/rohanthewiz/rmvc/mapping"
	"github.com/rohanthewiz/rmvc/view"
)

// SessionCookie is the cookie cleared on logout.
const SessionCookie = "session"

// registerManual adds the handlers registered in code rather than declared.
func registerManual(m *mapping.ManualHandlerMapping) {
	m.Get("/", welcome)
	m.Post("/logout", logout)
}

func welcome(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	return rmvc.NewModelAndView(view.TextView{}).AddObject("message", "Welcome to rmvc"), nil
}

func logout(req rmvc.Request, res rmvc.Response) (*rmvc.ModelAndView, error) {
	res.SetCookie(&rmvc.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: rmvc.SameSiteLaxMode,
	})
	return rmvc.NewModelAndView(view.RedirectView{Location: "/"}), nil
}
