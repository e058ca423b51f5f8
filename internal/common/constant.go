package common

const (
	// RequestSourceHeader identifies the caller to the automation webhook.
	RequestSourceHeader = "X-Request-Source"
	// RequestSourceValue is sent in RequestSourceHeader on every forward.
	RequestSourceValue = "employee-manager"

	// RequestIDHeader carries the relay-generated correlation id.
	RequestIDHeader = "X-Request-ID"

	// DefaultDepartment is the placeholder department put into every
	// notification payload.
	DefaultDepartment = "General"
)
