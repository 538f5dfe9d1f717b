// Package xcbalance provides a Go library for building and distributing the
// integration tasks of an exchange-correlation (XC) molecular grid across the
// ranks of a distributed job.
//
// Every rank runs the same deterministic construction over the whole molecule
// and keeps only its own share, so the ranks agree on the partition without
// exchanging any messages. Batches of each atomic grid are screened against
// the basis, padded, costed, and assigned to the least-loaded rank; equivalent
// local tasks are then merged into one.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/xcbalance"
//
//	cfg := xcbalance.DefaultConfig()
//	cfg.PadValue = 32
//
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tasks, err := lb.Tasks(ctx)
//
// # Key Features
//
//   - Replicated Assignment: No communication between ranks, only identical inputs
//   - Greedy Balancing: Each task goes to the rank with the lowest accumulated cost
//   - Basis Screening: Batches outside every shell cutoff are dropped
//   - Padding: Task point counts rounded up with zero-weight points for vectorized kernels
//   - Merging: Equivalent local tasks collapse into one
//
// # Architecture
//
// A load balancer moves through a small state machine:
//
//	UNBUILT → BUILT
//	UNBUILT → FAILED
//
// The first Tasks call builds the task list; later calls return copies of the
// cached result. A failed build stays failed.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    "github.com/arloliu/xcbalance"
//	    "github.com/arloliu/xcbalance/strategy"
//	)
//
//	affinity := strategy.NewAffinity(
//	    strategy.WithVirtualNodes(300),
//	)
//
//	hooks := &xcbalance.Hooks{
//	    OnBuildComplete: func(ctx context.Context, summary xcbalance.Summary) error {
//	        log.Printf("rank %d holds %d tasks", summary.Rank, summary.TasksMerged)
//	        return nil
//	    },
//	}
//
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis,
//	    xcbalance.WithStrategy(affinity),
//	    xcbalance.WithHooks(hooks),
//	)
//
// For more examples, see the examples/ directory.
package xcbalance
