// Package runlock serializes pipeline runs that target the same output
// directory using flock-based advisory locks kept outside the directory itself.
package runlock
