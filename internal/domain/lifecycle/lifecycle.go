// Package lifecycle holds constants shared by components that participate in
// application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds how long start and stop hooks (server shutdown,
// database close, startup ping) may take before being abandoned.
const DefaultTimeout = 10 * time.Second
