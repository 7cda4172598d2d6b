// Package lifecycle holds shared timeouts for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks so a hung dependency cannot
// stall the whole process.
const DefaultTimeout = 10 * time.Second
