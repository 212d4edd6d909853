// Package view holds the presentation state of one mounted portfolio page:
// theme, pointer glow, revealed sections, the intro caret and the active
// skill tag. Every piece of state has exactly one writer and the render pass
// only ever reads a Snapshot.
package view

import (
	"slices"
	"sync"
)

// Theme is the light/dark presentation mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite mode.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFor maps a color-scheme preference to a mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// Point is a pointer position in CSS pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SkillKey identifies one rendered skill tag.
type SkillKey struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// Entry is a single intersection observation for a section.
type Entry struct {
	ID    string  `json:"id"`
	Ratio float64 `json:"ratio"`
}

// Snapshot is a copy of the view state at one instant. Version grows by one
// with every state change, so of two snapshots of the same view the one with
// the higher version is the newer.
type Snapshot struct {
	Version     uint64    `json:"version"`
	Theme       Theme     `json:"theme"`
	Pointer     Point     `json:"pointer"`
	Revealed    []string  `json:"revealed"`
	Typing      bool      `json:"typing"`
	ActiveSkill *SkillKey `json:"activeSkill"`
}

// IsRevealed reports whether the section has been scrolled into view.
func (s Snapshot) IsRevealed(id string) bool {
	return slices.Contains(s.Revealed, id)
}

// IsActive reports whether the skill at category/index is highlighted.
func (s Snapshot) IsActive(category string, index int) bool {
	return s.ActiveSkill != nil && *s.ActiveSkill == SkillKey{Category: category, Index: index}
}

// Subscription is a registration with a signal source. Unsubscribe is safe
// to call more than once.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a release func to Subscription.
type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

// once wraps release so it runs at most one time.
func once(release func()) Subscription {
	var o sync.Once
	return SubscriptionFunc(func() { o.Do(release) })
}

// ColorScheme reports the ambient light/dark preference.
type ColorScheme interface {
	// Preference returns ok=false when the platform cannot detect a preference.
	Preference() (dark bool, ok bool)
	Subscribe(fn func(dark bool)) Subscription
}

// PointerSource delivers pointer moves.
type PointerSource interface {
	Subscribe(fn func(Point)) Subscription
}

// IntersectionSource reports how much of each observed section is in the
// viewport.
type IntersectionSource interface {
	Observe(ids []string, threshold float64, fn func([]Entry)) Subscription
}

// Platform bundles the ambient signals a view consumes. Nil sources are
// treated as unavailable.
type Platform struct {
	Scheme        ColorScheme
	Pointer       PointerSource
	Intersections IntersectionSource
	Clock         Clock
}
