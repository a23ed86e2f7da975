// Package types defines the Table contract a host grid must satisfy, the
// shared vocabulary (sort order, selection mode, change events, resolved
// defaults), the polymorphic conditions setting, and standard error
// types for the tablekeep system.
package types
