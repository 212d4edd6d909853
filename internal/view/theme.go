package view

// themeResolver owns the Theme. A system preference change always wins,
// including over a manual toggle made since the last change.
type themeResolver struct {
	mode     Theme
	sub      Subscription
	stopped  bool
	onChange func()
}

func startThemeResolver(scheme ColorScheme, onChange func()) *themeResolver {
	r := &themeResolver{mode: ThemeDark, onChange: onChange}
	if scheme == nil {
		return r
	}
	if dark, ok := scheme.Preference(); ok {
		r.mode = ThemeFor(dark)
	}
	r.sub = scheme.Subscribe(r.preferenceChanged)
	return r
}

func (r *themeResolver) preferenceChanged(dark bool) {
	if r.stopped {
		return
	}
	r.mode = ThemeFor(dark)
	r.onChange()
}

func (r *themeResolver) toggle() {
	if r.stopped {
		return
	}
	r.mode = r.mode.Toggled()
	r.onChange()
}

func (r *themeResolver) stop() {
	r.stopped = true
	if r.sub != nil {
		r.sub.Unsubscribe()
	}
}
