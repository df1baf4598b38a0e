// Package services implements the driving port interfaces.
// Services contain the pipeline business logic and orchestrate
// calls to driven ports (adapters).
//
// Both services are synchronous, pure functions of their input plus the
// clock: they hold no state between invocations and need no locking.
package services
