package view

import "time"

// TypingDuration is how long the intro caret blinks after mount.
const TypingDuration = 3000 * time.Millisecond

// typingIndicator owns the TypingFlag: true at mount, false once the timer
// fires, never true again.
type typingIndicator struct {
	typing   bool
	timer    Timer
	stopped  bool
	onChange func()
}

func startTypingIndicator(clock Clock, onChange func()) *typingIndicator {
	t := &typingIndicator{typing: true, onChange: onChange}
	if clock == nil {
		clock = SystemClock{}
	}
	t.timer = clock.AfterFunc(TypingDuration, t.fire)
	return t
}

func (t *typingIndicator) fire() {
	if t.stopped || !t.typing {
		return
	}
	t.typing = false
	t.onChange()
}

func (t *typingIndicator) stop() {
	t.stopped = true
	t.timer.Stop()
}
