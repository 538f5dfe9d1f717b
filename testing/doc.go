// Package testing provides test utilities for the xcbalance library.
//
// This package offers helpers for setting up test environments: embedded NATS
// servers for summary reporting tests, an in-process communicator, and a small
// reference molecule with grid and basis. It follows Go's convention of
// providing testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - FakeComm / Ranks: Communicators for simulated multi-rank jobs
//   - Water: Three-atom molecule with cube grids and a cutoff basis
//
// Example usage:
//
//	import (
//	    "testing"
//	    xctest "github.com/arloliu/xcbalance/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    sys := xctest.Water()
//	    for _, comm := range xctest.Ranks(3) {
//	        lb, _ := xcbalance.NewLoadBalancer(&cfg, comm, sys.Molecule, sys.Grid, sys.Basis)
//	        // ...
//	    }
//	}
package testing
