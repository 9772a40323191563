// Package timeouts defines shared timeout constants used by the console.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// BackendRequest is the default ceiling for one REST backend round trip.
const BackendRequest = 30 * time.Second

// LogoutNotify caps the best-effort backend logout call made while a local
// session is being cleared.
const LogoutNotify = 3 * time.Second

// StoreDial caps the connection check against an external session store.
const StoreDial = 5 * time.Second
