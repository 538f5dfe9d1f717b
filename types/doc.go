// Package types provides core type definitions and interfaces for the xcbalance library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root xcbalance package and its internal implementations.
//
// Key types:
//   - Task: Unit of integration work assigned to a rank
//   - Ledger: Per-rank cumulative cost counters for one balancing pass
//   - MolecularGrid, GridBatcher, Screener, Basis, Communicator: Collaborator interfaces
//   - DistributionStrategy: Pluggable rank selection
//   - Logger, MetricsCollector, Hooks: Ambient interfaces
package types
