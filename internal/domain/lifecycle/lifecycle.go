// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks so a stuck dependency
// cannot block the process forever.
const DefaultTimeout = 10 * time.Second
