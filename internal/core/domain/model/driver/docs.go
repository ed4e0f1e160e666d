// Package driver provides the read-only Driver entity owned by the driver directory.
//
// The fulfillment core never creates or mutates drivers; it only checks that a
// driver works in the order's city and reads the contact used to reach them.
package driver
