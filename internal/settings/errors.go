package settings

import "errors"

// Validation errors returned when the merged [Settings] are incomplete or
// invalid.
var (
	// ErrInvalidSourceSettings indicates an unusable env file path or
	// conflicting override switches.
	ErrInvalidSourceSettings = errors.New("invalid source settings")
	// ErrInvalidLogSettings indicates an unknown log level or format.
	ErrInvalidLogSettings = errors.New("invalid log settings")
	// ErrInvalidInspectorSettings indicates a bad inspector address, auth key
	// or timeout.
	ErrInvalidInspectorSettings = errors.New("invalid inspector settings")
	// ErrInvalidProbeSettings indicates a non-positive probe timeout.
	ErrInvalidProbeSettings = errors.New("invalid probe settings")
)
