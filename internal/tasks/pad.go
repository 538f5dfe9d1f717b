package tasks

import "github.com/arloliu/xcbalance/types"

// PadPoints pads the task up to a multiple of pad points.
//
// Padding repeats the first point with a zero weight, so integrals over the
// task are unchanged. Tasks without points and pad values below 2 are left
// alone.
//
// Returns:
//   - int: Number of points added
func PadPoints(task *types.Task, pad int) int {
	if pad < 2 || task.PointCount == 0 {
		return 0
	}

	rem := task.PointCount % pad
	if rem == 0 {
		return 0
	}

	extra := pad - rem
	first := task.Points[0]
	for range extra {
		task.Points = append(task.Points, first)
		task.Weights = append(task.Weights, 0)
	}
	task.PointCount += extra

	return extra
}
