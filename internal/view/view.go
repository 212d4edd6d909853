package view

import "slices"

// View is one mounted page. It is not safe for concurrent use: callers must
// deliver events one at a time, each running to completion, and that includes
// the timer callback scheduled through Platform.Clock.
type View struct {
	sections []string
	theme    *themeResolver
	pointer  *pointerTracker
	reveal   *revealObserver
	typing   *typingIndicator
	skills   skillSelector

	watchers  []watcher
	nextWatch int
	mounted   bool
	version   uint64
}

type watcher struct {
	id int
	fn func(Snapshot)
}

// Mount subscribes to every platform signal and starts the typing timer.
// Observation covers exactly the given section ids.
func Mount(p Platform, sections []string) *View {
	v := &View{sections: slices.Clone(sections)}
	v.theme = startThemeResolver(p.Scheme, v.changed)
	v.pointer = startPointerTracker(p.Pointer, v.changed)
	v.reveal = startRevealObserver(p.Intersections, v.sections, v.changed)
	v.typing = startTypingIndicator(p.Clock, v.changed)
	v.mounted = true
	return v
}

// Sections returns the observed section ids.
func (v *View) Sections() []string {
	return slices.Clone(v.sections)
}

// Mounted reports whether Unmount has not yet been called.
func (v *View) Mounted() bool {
	return v.mounted
}

// ToggleTheme flips between light and dark. It is a no-op after Unmount.
func (v *View) ToggleTheme() {
	if !v.mounted {
		return
	}
	v.theme.toggle()
}

// SelectSkill toggles the highlight on key. It is a no-op after Unmount.
func (v *View) SelectSkill(key SkillKey) {
	if !v.mounted {
		return
	}
	v.skills.selectKey(key)
	v.changed()
}

// Snapshot copies the current state.
func (v *View) Snapshot() Snapshot {
	return Snapshot{
		Version:     v.version,
		Theme:       v.theme.mode,
		Pointer:     v.pointer.pos,
		Revealed:    v.reveal.revealed(),
		Typing:      v.typing.typing,
		ActiveSkill: v.skills.current(),
	}
}

// Watch registers fn to receive a snapshot after every state change.
func (v *View) Watch(fn func(Snapshot)) Subscription {
	id := v.nextWatch
	v.nextWatch++
	v.watchers = append(v.watchers, watcher{id: id, fn: fn})
	return once(func() {
		v.watchers = slices.DeleteFunc(v.watchers, func(w watcher) bool { return w.id == id })
	})
}

// Unmount cancels the typing timer and releases every subscription. After
// it returns no signal changes the state and no watcher is called. Calling
// it again does nothing.
func (v *View) Unmount() {
	if !v.mounted {
		return
	}
	v.mounted = false
	v.typing.stop()
	v.reveal.stop()
	v.pointer.stop()
	v.theme.stop()
	v.watchers = nil
}

func (v *View) changed() {
	if !v.mounted {
		return
	}
	v.version++
	snap := v.Snapshot()
	for _, w := range slices.Clone(v.watchers) {
		w.fn(snap)
	}
}
