// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of long-lived
// components.
const DefaultTimeout = 10 * time.Second
