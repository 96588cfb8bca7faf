// Package testutil provides the shared schema and document fixtures used
// across the test suites.
package testutil
