package tasks

import (
	"context"
	"fmt"

	"github.com/arloliu/xcbalance/internal/hash"
	"github.com/arloliu/xcbalance/types"
)

// Batch outcome labels.
const (
	OutcomeAccepted    = "accepted"
	OutcomeEmpty       = "empty"
	OutcomeScreenedOut = "screened_out"
)

// Local task stage labels.
const (
	StageAssigned = "assigned"
	StageMerged   = "merged"
)

// Result is the output of a build on one rank.
type Result struct {
	// Tasks are the local, padded, merged tasks in canonical order.
	Tasks []types.Task

	Summary types.Summary
}

// Builder runs the full task pipeline for one rank.
type Builder struct {
	Config

	assembler *Assembler
}

// NewBuilder creates a builder with validated configuration.
//
// Parameters:
//   - cfg: Builder configuration (required fields must be set)
//
// Returns:
//   - *Builder: Builder ready to run
//   - error: Validation error if required fields are missing
//
// Example:
//
//	b, err := tasks.NewBuilder(&tasks.Config{
//	    Molecule: mol,
//	    Grid:     grid,
//	    Basis:    basis,
//	    Screener: screen.NewCutoff(),
//	    Strategy: strategy.NewLeastLoaded(),
//	    Rank:     comm.Rank(),
//	    Size:     comm.Size(),
//	})
func NewBuilder(cfg *Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.SetDefaults()

	return &Builder{
		Config:    *cfg,
		assembler: NewAssembler(cfg),
	}, nil
}

// Build runs assembly, distribution and reconciliation over the whole molecule.
//
// Atoms are grouped into rounds of AtomsPerRound; each round is distributed
// once all of its atoms are assembled. The ledger persists across rounds.
//
// Returns:
//   - Result: Local tasks and build summary
//   - error: First failure; no partial task list is returned
func (b *Builder) Build(ctx context.Context) (Result, error) {
	nearest := b.Molecule.NearestNeighborDistances()
	dist := NewDistributor(&b.Config)

	var (
		stats  BatchStats
		round  []types.Candidate
		offset int
	)

	for i, atom := range b.Molecule {
		res, err := b.assembler.AssembleAtom(ctx, i, atom, nearest[i], offset)
		if err != nil {
			return Result{}, err
		}

		offset += res.NumBatches
		stats.Add(res.Stats)
		round = append(round, res.Candidates...)

		if (i+1)%b.AtomsPerRound != 0 && i != len(b.Molecule)-1 {
			continue
		}

		if err := dist.Distribute(round); err != nil {
			return Result{}, err
		}
		round = round[:0]
	}

	local := dist.Local()
	assigned := len(local)

	merged, groups, err := Reconcile(local)
	if err != nil {
		return Result{}, err
	}

	summary := b.summarize(merged, dist, stats)
	summary.TasksAssigned = assigned
	summary.DuplicateGroups = groups

	b.record(summary, stats)

	b.Logger.Debug("task build finished",
		"rank", b.Rank,
		"size", b.Size,
		"strategy", b.Strategy.Name(),
		"batches_accepted", stats.Accepted,
		"tasks_assigned", assigned,
		"tasks_merged", len(merged),
		"ledger_spread", summary.Ledger.Spread(),
	)

	return Result{Tasks: merged, Summary: summary}, nil
}

func (b *Builder) summarize(merged []types.Task, dist *Distributor, stats BatchStats) types.Summary {
	s := types.Summary{
		Rank:               b.Rank,
		Size:               b.Size,
		Strategy:           b.Strategy.Name(),
		PadValue:           b.PadValue,
		Atoms:              len(b.Molecule),
		BatchesSeen:        stats.Seen,
		BatchesAccepted:    stats.Accepted,
		BatchesEmpty:       stats.Empty,
		BatchesScreenedOut: stats.ScreenedOut,
		TasksMerged:        len(merged),
		PaddingPoints:      dist.LocalPaddingPoints(),
		Ledger:             dist.Ledger().Clone(),
		LedgerFingerprint:  hash.LedgerFingerprint(dist.Ledger()),
		TaskFingerprint:    hash.TaskListFingerprint(merged),
	}

	for i := range merged {
		t := &merged[i]
		s.TotalPoints += t.PointCount
		s.MaxPoints = max(s.MaxPoints, t.PointCount)
		s.MaxNBE = max(s.MaxNBE, t.Primary.NBE)
		s.MaxPointsXNBE = max(s.MaxPointsXNBE, t.PointCount*t.Primary.NBE)
	}

	return s
}

func (b *Builder) record(s types.Summary, stats BatchStats) {
	b.Metrics.RecordBatches(OutcomeAccepted, stats.Accepted)
	b.Metrics.RecordBatches(OutcomeEmpty, stats.Empty)
	b.Metrics.RecordBatches(OutcomeScreenedOut, stats.ScreenedOut)
	b.Metrics.RecordLocalTasks(StageAssigned, s.TasksAssigned)
	b.Metrics.RecordLocalTasks(StageMerged, s.TasksMerged)
	b.Metrics.RecordPaddingPoints(s.PaddingPoints)
	b.Metrics.RecordLedger(s.Ledger)
	b.Metrics.RecordLedgerSpread(s.Ledger.Spread())
}
