// Package lifecycle holds timing constants shared by components started and stopped through fx.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second
