// Package testsupport provides test configuration builders, stub executables
// and file helpers shared by package tests.
package testsupport
