package scheduler

// SnapshotRebuilder rebuilds the materialized net-worth series for
// every user with recorded activity.
type SnapshotRebuilder interface {
	RebuildAll() error
}

// SnapshotJob materializes month-end portfolio values so the history
// endpoint can serve from the snapshot table instead of replaying
// transactions.
type SnapshotJob struct {
	rebuilder SnapshotRebuilder
}

// NewSnapshotJob creates a SnapshotJob over the given rebuilder.
func NewSnapshotJob(rebuilder SnapshotRebuilder) *SnapshotJob {
	return &SnapshotJob{rebuilder: rebuilder}
}

// Name identifies the job in scheduler logs.
func (j *SnapshotJob) Name() string {
	return "portfolio-snapshots"
}

// Run rebuilds snapshots for all users.
func (j *SnapshotJob) Run() error {
	return j.rebuilder.RebuildAll()
}
