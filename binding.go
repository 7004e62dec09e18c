package insta

import (
	"sync"

	"github.com/petermattis/goid"
)

// boundSettings holds each goroutine's current Settings, keyed by
// goroutine ID. A goroutine with no entry observes the process defaults.
// The map is only for map-level safety: no goroutine ever reads or
// writes another goroutine's slot.
var boundSettings sync.Map

// Current returns the calling goroutine's current settings: the handle
// installed by Bind or BindToThread, or a fresh default handle when
// nothing is bound.
func Current() Settings {
	if v, ok := boundSettings.Load(goid.Get()); ok {
		return v.(Settings).Clone()
	}
	return New()
}

// WithCurrent invokes f with the calling goroutine's current settings.
// It is how the assertion engine reads tunables and redaction rules at
// comparison time.
func WithCurrent(f func(s Settings)) {
	cur := Current()
	defer cur.release()
	f(cur)
}

// Bind installs the settings as the calling goroutine's current settings
// for the duration of body, then restores whatever was bound before.
// Restoration happens on every exit path: if body panics, the previous
// binding is reinstated before the panic continues to propagate.
func (s Settings) Bind(body func()) {
	id := goid.Get()
	prev, hadPrev := boundSettings.Load(id)
	boundSettings.Store(id, s.Clone())

	defer func() {
		if cur, ok := boundSettings.Load(id); ok {
			cur.(Settings).release()
		}
		if hadPrev {
			boundSettings.Store(id, prev)
		} else {
			boundSettings.Delete(id)
		}
	}()

	body()
}

// BindToThread installs the settings as the calling goroutine's current
// settings for the goroutine's remaining lifetime. There is no
// restoration; use Bind for scoped overrides, or UnbindFromThread to
// return the goroutine to defaults.
func (s Settings) BindToThread() {
	id := goid.Get()
	if prev, ok := boundSettings.Load(id); ok {
		prev.(Settings).release()
	}
	boundSettings.Store(id, s.Clone())
}

// UnbindFromThread removes any binding installed for the calling
// goroutine, reverting it to the process defaults. Long-lived worker
// goroutines that called BindToThread can use this as explicit teardown.
func UnbindFromThread() {
	id := goid.Get()
	if prev, ok := boundSettings.Load(id); ok {
		prev.(Settings).release()
		boundSettings.Delete(id)
	}
}
