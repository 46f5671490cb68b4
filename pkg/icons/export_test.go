package icons

import "sync"

// resetForTest rewinds the package to its pre-initialization state so
// tests can exercise the one-time build path repeatedly.
func resetForTest() {
	overridesMu.Lock()
	defer overridesMu.Unlock()

	initOnce = sync.Once{}
	initialized.Store(false)
	iconRegistry = nil
	overrides = nil
}

// ResetForTest is exported to the external test package only.
var ResetForTest = resetForTest
