package rmvc

// ModelAndView is the result of every successful handler invocation:
// the view to render and the model to render with it.
type ModelAndView struct {
	View  View
	Model map[string]any
}

// NewModelAndView creates a result for the given view with an empty model.
func NewModelAndView(view View) *ModelAndView {
	return &ModelAndView{
		View:  view,
		Model: make(map[string]any),
	}
}

// AddObject stores a value in the model and returns the ModelAndView for chaining.
func (mav *ModelAndView) AddObject(key string, value any) *ModelAndView {
	if mav.Model == nil {
		mav.Model = make(map[string]any)
	}
	mav.Model[key] = value
	return mav
}

// Object returns the model value stored under key.
func (mav *ModelAndView) Object(key string) any {
	return mav.Model[key]
}
