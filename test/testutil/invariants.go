package testutil

import (
	"math"
	"testing"

	"github.com/arloliu/xcbalance/types"
)

// pointKey identifies one real quadrature point of one atom.
type pointKey struct {
	parent int
	point  types.Point
	weight uint64
}

// RealPoints counts the non-padding points of tasks by (parent, coordinates, weight).
//
// Padding points carry a zero weight and are skipped.
func RealPoints(tasks []types.Task) map[pointKey]int {
	counts := make(map[pointKey]int)
	for i := range tasks {
		t := &tasks[i]
		for j, w := range t.Weights {
			if w == 0 {
				continue
			}
			counts[pointKey{parent: t.ParentIndex, point: t.Points[j], weight: math.Float64bits(w)}]++
		}
	}

	return counts
}

// AssertCoverage verifies that the ranks of a job jointly hold exactly the
// real points of a reference task list, each point on exactly one rank.
//
// Parameters:
//   - t: testing handle
//   - perRank: local task lists of every rank
//   - reference: task list of a single-rank build of the same system
func AssertCoverage(t *testing.T, perRank [][]types.Task, reference []types.Task) {
	t.Helper()

	want := RealPoints(reference)
	got := make(map[pointKey]int, len(want))
	for rank, tasks := range perRank {
		for key, n := range RealPoints(tasks) {
			if got[key] > 0 {
				t.Fatalf("point %v of atom %d held by rank %d and an earlier rank", key.point, key.parent, rank)
			}
			got[key] += n
		}
	}

	if len(got) != len(want) {
		t.Fatalf("ranks hold %d distinct points, reference has %d", len(got), len(want))
	}
	for key, n := range want {
		if got[key] != n {
			t.Fatalf("point %v of atom %d held %d times, want %d", key.point, key.parent, got[key], n)
		}
	}
}

// AssertPadded verifies the padding invariants of a task list.
//
// Every task holds a multiple of pad points, consistent slice lengths, and a
// non-empty primary shell list.
func AssertPadded(t *testing.T, tasks []types.Task, pad int) {
	t.Helper()

	for i := range tasks {
		task := &tasks[i]
		if len(task.Points) != task.PointCount || len(task.Weights) != task.PointCount {
			t.Fatalf("task %d: point count %d, %d points, %d weights", i, task.PointCount, len(task.Points), len(task.Weights))
		}
		if task.PointCount%pad != 0 {
			t.Fatalf("task %d: %d points is not a multiple of %d", i, task.PointCount, pad)
		}
		if len(task.Primary.ShellList) == 0 {
			t.Fatalf("task %d: empty primary shell list", i)
		}
	}
}

// AssertCanonicalOrder verifies that tasks are strictly increasing by
// (ParentIndex, primary shell list), i.e. sorted with no equivalent pair left.
func AssertCanonicalOrder(t *testing.T, tasks []types.Task) {
	t.Helper()

	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].Compare(&tasks[i]) >= 0 {
			t.Fatalf("tasks %d and %d out of canonical order or not merged", i-1, i)
		}
	}
}

// WeightSum returns the total quadrature weight of a task list.
func WeightSum(tasks []types.Task) float64 {
	sum := 0.0
	for i := range tasks {
		sum += tasks[i].WeightSum()
	}

	return sum
}
