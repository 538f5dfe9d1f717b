// Package testutil provides shared test utilities and fixtures for integration tests.
//
// This package contains common setup code, test data, and helper functions
// that are used across multiple integration tests.
//
// Utilities:
//   - Job: Runs every rank of a simulated job in-process
//   - RandomSystem: Seeded molecule, grid and basis generator
//   - Assert helpers: Coverage, padding and canonical order of task lists
//
// Note: For NATS server setup, use the github.com/arloliu/xcbalance/testing package.
// This package is specifically for integration test scenarios and helper utilities.
package testutil
