package view

// RevealThreshold is the visible fraction at which a section counts as seen.
const RevealThreshold = 0.1

// revealObserver owns the RevealSet. Members are never removed.
type revealObserver struct {
	known    map[string]struct{}
	seen     map[string]struct{}
	order    []string
	sub      Subscription
	stopped  bool
	onChange func()
}

func startRevealObserver(src IntersectionSource, sections []string, onChange func()) *revealObserver {
	o := &revealObserver{
		known:    make(map[string]struct{}, len(sections)),
		seen:     make(map[string]struct{}, len(sections)),
		onChange: onChange,
	}
	for _, id := range sections {
		o.known[id] = struct{}{}
	}
	if src != nil && len(sections) > 0 {
		o.sub = src.Observe(sections, RevealThreshold, o.observed)
	}
	return o
}

func (o *revealObserver) observed(entries []Entry) {
	if o.stopped {
		return
	}
	grew := false
	for _, e := range entries {
		if e.Ratio < RevealThreshold {
			continue
		}
		if _, ok := o.known[e.ID]; !ok {
			continue
		}
		if _, ok := o.seen[e.ID]; ok {
			continue
		}
		o.seen[e.ID] = struct{}{}
		o.order = append(o.order, e.ID)
		grew = true
	}
	if grew {
		o.onChange()
	}
}

func (o *revealObserver) revealed() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

func (o *revealObserver) stop() {
	o.stopped = true
	if o.sub != nil {
		o.sub.Unsubscribe()
	}
}
