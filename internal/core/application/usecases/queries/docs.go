// Package queries contains read operations over orders and drivers.
// Queries never modify state; handlers either read through a repository port or
// run read-model SQL directly against the database.
package queries
