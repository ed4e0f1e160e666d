// Package order provides the Order aggregate driven through its fulfillment lifecycle.
//
// Two order kinds share one shape and differ only in their KindPolicy:
//
//	DELIVERY: PENDING -> PICKUP -> ON_WAY      -> COMPLETED
//	SERVICE:  PENDING -> PICKUP -> IN_PROGRESS -> COMPLETED
//
// CANCELED is reachable from every non-terminal status except itself; COMPLETED
// and CANCELED have no outgoing edges. Each policy is a pure table lookup, so the
// same Order methods serve both kinds without branching on the kind.
//
// Key business rules:
//   - Status changes only through Transition, and only along a policy edge
//   - Re-requesting the current status is an invalid transition, never a no-op
//   - PICKUP requires an assigned driver
//   - A driver, once recorded, is never silently replaced by a different one
//   - The driver access code is valid for AccessCodeTTL after creation, never refreshed
package order
