// Package report shares build summaries between the ranks of a job.
//
// Each rank publishes its types.Summary to a NATS JetStream KV bucket under
// "<prefix>.rank-<n>". Any process can then collect the summaries and verify
// that all ranks computed the same assignment: same job size, strategy and
// ledger fingerprint, every rank present exactly once, and every accepted
// batch assigned to exactly one rank.
package report
