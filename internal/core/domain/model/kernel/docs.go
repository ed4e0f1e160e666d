// Package kernel provides the value objects shared by the order and driver models.
//
// The package includes:
//   - AccessCode: the opaque, unguessable token handed to couriers instead of an account
//   - Contact: a denormalized display name, messaging address and physical location
//
// Both are immutable; their zero values are invalid and fail Validate, so a missing
// contact is expressed as the zero Contact and detected with IsPresent.
package kernel
