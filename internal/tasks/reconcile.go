package tasks

import (
	"fmt"
	"slices"

	"github.com/arloliu/xcbalance/types"
)

// Reconcile sorts tasks canonically and merges equivalent ones.
//
// Tasks are sorted by (ParentIndex, Primary.ShellList). A unique list is formed
// by collapsing adjacent equivalent tasks, with point payloads cleared. The
// sorted list is then walked in lock-step with the unique list and each run of
// equivalent tasks is appended, in order, to its unique entry.
//
// The input slice is reordered in place.
//
// Returns:
//   - []types.Task: Merged tasks in canonical order
//   - int: Number of equivalence groups that held more than one task
//   - error: types.ErrMergeInvariant if the unique cursor runs out
func Reconcile(tasks []types.Task) ([]types.Task, int, error) {
	if len(tasks) == 0 {
		return nil, 0, nil
	}

	slices.SortStableFunc(tasks, func(a, b types.Task) int {
		return a.Compare(&b)
	})

	unique := make([]types.Task, 0, len(tasks))
	for i := range tasks {
		if len(unique) > 0 && unique[len(unique)-1].EquivalentTo(&tasks[i]) {
			continue
		}
		unique = append(unique, header(&tasks[i]))
	}

	groups, err := mergeRuns(tasks, unique)
	if err != nil {
		return nil, 0, err
	}

	return unique, groups, nil
}

// mergeRuns walks sorted in lock-step with unique and appends each run of
// equivalent tasks to its unique entry. It returns the number of runs with
// more than one task.
func mergeRuns(sorted, unique []types.Task) (int, error) {
	cur, start, groups := 0, 0, 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].EquivalentTo(&sorted[start]) {
			continue
		}

		if cur >= len(unique) {
			return 0, fmt.Errorf("%w: group at task %d of %d", types.ErrMergeInvariant, start, len(sorted))
		}
		if !unique[cur].EquivalentTo(&sorted[start]) {
			return 0, fmt.Errorf("%w: group at task %d does not match unique entry %d", types.ErrMergeInvariant, start, cur)
		}

		for j := start; j < i; j++ {
			unique[cur].MergeWith(&sorted[j])
		}
		if i-start > 1 {
			groups++
		}
		cur++
		start = i
	}

	return groups, nil
}

// header copies the screening metadata of a task without its points.
func header(t *types.Task) types.Task {
	h := types.Task{
		ParentIndex: t.ParentIndex,
		Primary:     t.Primary.Clone(),
		DistNearest: t.DistNearest,
	}
	if t.Secondary != nil {
		s := t.Secondary.Clone()
		h.Secondary = &s
	}

	return h
}
