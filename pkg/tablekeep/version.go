// Package tablekeep holds module-level metadata.
package tablekeep

// Version is the tablekeep release version.
const Version = "0.1.0"
