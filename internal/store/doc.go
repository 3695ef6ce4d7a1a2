// Package store defines interfaces for task data storage.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing handlers to remain
// independent of how the task collection is held.
package store
