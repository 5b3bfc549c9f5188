// Package services contains stateless domain services that coordinate
// behavior across the order aggregate.
//
// The package includes:
//   - LifecycleReconciler: derives the correct lifecycle dates for a
//     full-replacement update from the previously stored record, the
//     incoming record, and the current date
//
// Domain services here are pure: they hold no state, perform no I/O, and
// never touch persistence. Repositories invoke them under their own
// concurrency discipline.
package services
