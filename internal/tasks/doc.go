// Package tasks implements the task build pipeline of the load balancer.
//
// A build walks the molecule atom by atom:
//   - Assembler: screens every batch of the atom's grid in parallel and turns
//     the surviving batches into candidates
//   - Distributor: pads each candidate and asks the distribution strategy for
//     a rank, keeping the candidates that belong to the local rank
//   - Reconcile: sorts the local tasks canonically and merges equivalent ones
//
// Every rank runs the full pipeline and reproduces the same ledger, so no
// message passing is needed to agree on the assignment.
package tasks
