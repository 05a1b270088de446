// Package store defines the persistence interfaces for the review
// platform's entities along with the sentinel errors implementations
// report. Concrete implementations live under internal/platform.
package store
