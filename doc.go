// Package insta provides per-goroutine snapshot-testing settings with
// copy-on-write sharing and a declarative content-redaction registry.
//
// Quick start:
//
//	settings := insta.New()
//	settings.SetSortMaps(true)
//	if err := settings.AddRedaction(".user.id", "[id]"); err != nil {
//	    t.Fatal(err)
//	}
//	settings.Bind(func() {
//	    // assertions made here observe the bound settings
//	})
//
// A Settings handle is cheap to share with Clone; mutating one handle
// never affects its clones, because the underlying snapshot is
// duplicated on the first write after a share. Binding installs a handle as the
// calling goroutine's current settings, either for the duration of a
// callback (Bind) or permanently (BindToThread).
//
// Selector syntax and the structured value model live in the redaction
// and content subpackages.
package insta
