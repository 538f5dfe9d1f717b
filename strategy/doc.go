// Package strategy provides built-in distribution strategy implementations.
//
// A distribution strategy decides, round by round, which rank owns each
// candidate task. Every rank runs the same strategy on the same input and
// therefore reaches the same decisions without exchanging messages.
//
// Built-in strategies, registered under their canonical names:
//
//   - LeastLoaded ("replicated-petite", default): each task in batch order goes to
//     the rank with the least cumulative cost, ties to the lowest rank
//   - FillIn ("replicated-fillin"): within a round, largest task first onto the
//     least-loaded rank
//   - RoundRobin ("replicated-roundrobin"): batch index modulo rank count
//   - Affinity ("replicated-affinity"): consistent hashing of the task equivalence
//     key with a soft load cap, so equivalent tasks meet on one rank and merge
//
// # Strategy Selection Guide
//
// LeastLoaded:
//   - Guarantees max-min ledger spread bounded by the largest single task cost
//   - Reference behavior; use unless there is a reason not to
//
// FillIn:
//   - Use with AtomsPerRound > 1 where sorting a larger round pays off
//
// RoundRobin:
//   - Cost-agnostic; useful for debugging and for cost models under evaluation
//
// Affinity:
//   - Maximizes merging of equivalent tasks, trading some balance
//
// Custom strategies implement types.DistributionStrategy and may be registered
// with Register so that they can be selected by name from configuration.
package strategy
