package reliability

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const backupJobTimeout = 10 * time.Minute

// BackupJob uploads a fresh backup and then rotates old ones
type BackupJob struct {
	service       *BackupService
	retentionDays int
	log           zerolog.Logger
}

// NewBackupJob creates a new BackupJob
func NewBackupJob(service *BackupService, retentionDays int, log zerolog.Logger) *BackupJob {
	return &BackupJob{
		service:       service,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "database_backup").Logger(),
	}
}

// Name returns the job name
func (j *BackupJob) Name() string {
	return "database_backup"
}

// Run executes the backup. A rotation failure is logged but does not fail the job.
func (j *BackupJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), backupJobTimeout)
	defer cancel()

	if _, err := j.service.CreateAndUploadBackup(ctx); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	if _, err := j.service.RotateOldBackups(ctx, j.retentionDays); err != nil {
		j.log.Warn().Err(err).Msg("Backup rotation failed")
	}
	return nil
}
