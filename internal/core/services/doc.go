// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies. All I/O happens
// through the driven ports; the filtering and fingerprinting logic
// itself is side-effect free and independently testable.
package services
