// Package services implements the driving port interfaces.
// Services contain the core pipeline logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external-process dependencies;
// those live behind the driven ports.
package services
