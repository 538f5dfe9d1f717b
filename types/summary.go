package types

// Summary describes the outcome of one build on one rank.
//
// Every rank of a job must report the same Size, Strategy, Ledger and
// LedgerFingerprint; TaskFingerprint is rank-specific.
type Summary struct {
	Rank     int    `json:"rank"`
	Size     int    `json:"size"`
	Strategy string `json:"strategy"`
	PadValue int    `json:"padValue"`
	Atoms    int    `json:"atoms"`

	// Batch accounting over the whole molecule (identical on every rank).
	BatchesSeen        int `json:"batchesSeen"`
	BatchesAccepted    int `json:"batchesAccepted"`
	BatchesEmpty       int `json:"batchesEmpty"`
	BatchesScreenedOut int `json:"batchesScreenedOut"`

	// Local task accounting.
	TasksAssigned int `json:"tasksAssigned"`
	TasksMerged   int `json:"tasksMerged"`
	// DuplicateGroups counts equivalence groups that held more than one task.
	DuplicateGroups int `json:"duplicateGroups"`

	// Local point statistics, padding included.
	TotalPoints   int `json:"totalPoints"`
	PaddingPoints int `json:"paddingPoints"`
	MaxPoints     int `json:"maxPoints"`
	MaxNBE        int `json:"maxNbe"`
	MaxPointsXNBE int `json:"maxPointsXNbe"`

	Ledger            Ledger `json:"ledger"`
	LedgerFingerprint uint64 `json:"ledgerFingerprint"`
	TaskFingerprint   uint64 `json:"taskFingerprint"`
}
