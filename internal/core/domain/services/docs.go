// Package services provides domain services that span the order and driver models.
//
// The package includes:
//   - OrderDispatcher: checks that a driver may take an order and records the assignment
//   - NotificationRules: which stakeholders hear about each status, and whose failure blocks it
//   - MessageComposer: the bilingual texts sent to stakeholders
//
// Everything here is pure: no I/O, no clocks, no logging.
package services
