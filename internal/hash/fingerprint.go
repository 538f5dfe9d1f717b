package hash

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/xcbalance/types"
)

// TaskKey hashes the equivalence key of a task: parent index and primary shell list.
//
// Equivalent tasks always produce the same key.
func TaskKey(task *types.Task, seed uint64) uint64 {
	buf := make([]byte, 0, 8+4*len(task.Primary.ShellList))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(task.ParentIndex)) //nolint:gosec // bit pattern only
	for _, sh := range task.Primary.ShellList {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(sh)) //nolint:gosec // bit pattern only
	}

	if seed != 0 {
		return xxh3.HashSeed(buf, seed)
	}

	return xxh3.Hash(buf)
}

// LedgerFingerprint hashes the per-rank counters of a ledger in rank order.
func LedgerFingerprint(ledger types.Ledger) uint64 {
	buf := make([]byte, 0, 8*len(ledger))
	for _, v := range ledger {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //nolint:gosec // bit pattern only
	}

	return xxh3.Hash(buf)
}

// TaskListFingerprint hashes an ordered task list.
//
// The digest covers, per task, the parent index, primary screening, point
// coordinates and weights bit-for-bit, so two lists share a fingerprint only if
// they are byte-identical for integration purposes.
func TaskListFingerprint(tasks []types.Task) uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 64)

	for i := range tasks {
		t := &tasks[i]

		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.ParentIndex)) //nolint:gosec // bit pattern only
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.PointCount))  //nolint:gosec // bit pattern only
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Primary.NBE)) //nolint:gosec // bit pattern only
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(t.Primary.ShellList)))
		for _, sh := range t.Primary.ShellList {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(sh)) //nolint:gosec // bit pattern only
		}
		_, _ = h.Write(buf)

		for j := range t.Points {
			buf = buf[:0]
			for _, c := range t.Points[j] {
				buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
			}
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(t.Weights[j]))
			_, _ = h.Write(buf)
		}
	}

	return h.Sum64()
}
