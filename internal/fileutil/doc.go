// Package fileutil provisions directories and picks files by extension for the
// pipeline stages.
package fileutil
