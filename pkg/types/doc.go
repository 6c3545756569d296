// Package types defines the shared data structures used across the
// algorithm service: task records, progress events, scheme metadata,
// and status enums.
package types
