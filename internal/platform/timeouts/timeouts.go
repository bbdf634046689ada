// Package timeouts defines shared timeout constants used by the board service.
package timeouts

import "time"

// UpstreamRequest caps one call to the capability API.
const UpstreamRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
