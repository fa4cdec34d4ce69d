package service

// Service defines the lifecycle of a long-lived resource owned by the binary
// such as the log file or the audio device
//
// Lifecycle:
//  1. Construction with its configuration
//  2. Init() - validate and prepare, no side effects on failure
//  3. Start() - acquire the resource
//  4. [simulation runs]
//  5. Stop() - release the resource
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be idempotent
	Stop() error
}
