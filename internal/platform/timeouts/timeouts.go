// Package timeouts defines shared timeout constants for the web service.
// Keeping them together makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Idle closes keep-alive connections that stay quiet this long.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionLookup caps a single session store read made while gating a request.
const SessionLookup = 2 * time.Second
