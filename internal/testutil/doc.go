// Package testutil provides deterministic clocks, ID generators and golden
// file assertions for tests.
package testutil
