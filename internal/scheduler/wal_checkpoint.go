package scheduler

import (
	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/rs/zerolog"
)

// walWarnFrames is the WAL size, in frames, above which a warning is logged.
const walWarnFrames = 1000

// WALCheckpointJob checkpoints the write-ahead log so it does not grow unbounded.
type WALCheckpointJob struct {
	db  *database.DB
	log zerolog.Logger
}

// NewWALCheckpointJob creates a new WALCheckpointJob
func NewWALCheckpointJob(db *database.DB, log zerolog.Logger) *WALCheckpointJob {
	return &WALCheckpointJob{
		db:  db,
		log: log.With().Str("job", "wal_checkpoint").Logger(),
	}
}

// Name returns the job name
func (j *WALCheckpointJob) Name() string {
	return "wal_checkpoint"
}

// Run executes a passive checkpoint and reports how large the WAL was.
func (j *WALCheckpointJob) Run() error {
	// PRAGMA wal_checkpoint returns: busy, log, checkpointed
	var busy, frames, checkpointed int
	err := j.db.Conn().QueryRow("PRAGMA wal_checkpoint(PASSIVE)").Scan(&busy, &frames, &checkpointed)
	if err != nil {
		return err
	}

	if frames > walWarnFrames {
		j.log.Warn().
			Str("database", j.db.Name()).
			Int("wal_frames", frames).
			Int("checkpointed", checkpointed).
			Msg("WAL file is large, checkpoint may be needed")
	} else {
		j.log.Debug().
			Str("database", j.db.Name()).
			Int("wal_frames", frames).
			Msg("WAL checkpoint status OK")
	}

	return nil
}
