package types

import "context"

// Hooks defines callbacks for load balancer build events.
//
// All hooks are optional and run synchronously on the goroutine that triggered
// the build. Hook errors are logged but never fail the build.
//
// Example:
//
//	hooks := &xcbalance.Hooks{
//	    OnBuildComplete: func(ctx context.Context, s xcbalance.Summary) error {
//	        log.Printf("rank %d owns %d tasks", s.Rank, s.TasksMerged)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnBuildComplete is called once after a successful build.
	OnBuildComplete func(ctx context.Context, summary Summary) error

	// OnError is called when a build fails.
	OnError func(ctx context.Context, err error) error
}

// SummaryPublisher receives the summary of every successful build.
type SummaryPublisher interface {
	// Publish makes the summary visible to the other ranks of the job.
	Publish(ctx context.Context, summary Summary) error
}
