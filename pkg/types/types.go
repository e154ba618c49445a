package types

// DeliveryView is one recently delivered event as shown by GET /status.
// The payload is rendered to a string; the concrete value never leaves the
// process.
type DeliveryView struct {
	// Event name the delivery was routed under.
	Event string `json:"event"`
	// Payload rendered with fmt.Sprint.
	Payload string `json:"payload"`
}

// BusStatus is returned by GET /status.
type BusStatus struct {
	// Registered subscribers per event name.
	Subscribers map[string]int `json:"subscribers"`
	// Total events posted since start.
	PostedTotal uint64 `json:"posted_total"`
	// Total posts that failed (a subscriber returned an error).
	FailuresTotal uint64 `json:"failures_total"`
	// Most recent deliveries, oldest first.
	Recent []DeliveryView `json:"recent,omitempty"`
	// Uptime of the daemon in seconds.
	UptimeSeconds int64 `json:"uptime_seconds"`
	// Server time in unix seconds.
	ServerTimeUnix int64 `json:"server_time_unix"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	Error string `json:"error"`
	// HTTP status code.
	Code int `json:"code"`
}
