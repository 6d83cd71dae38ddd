// Package reliability ships database snapshots to object storage and prunes old ones.
package reliability

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/rs/zerolog"
)

const (
	backupPrefix    = "advisor-backup-"
	backupSuffix    = ".tar.gz"
	backupTimestamp = "2006-01-02-150405"
	metadataFile    = "backup-metadata.json"

	// MinBackupsToKeep survive rotation regardless of age
	MinBackupsToKeep = 3
)

// BackupMetadata is written next to the snapshot inside each archive
type BackupMetadata struct {
	Timestamp time.Time          `json:"timestamp"`
	Version   string             `json:"version"`
	Databases []DatabaseMetadata `json:"databases"`
}

// DatabaseMetadata describes one database snapshot in an archive
type DatabaseMetadata struct {
	Name      string `json:"name"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Checksum  string `json:"checksum"`
}

// BackupInfo describes a backup archive in the bucket
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
	SizeBytes int64     `json:"size_bytes"`
	AgeHours  int64     `json:"age_hours"`
}

// BackupService snapshots the advisor database and uploads it as a tar.gz archive
type BackupService struct {
	store   ObjectStore
	db      *database.DB
	dataDir string
	now     func() time.Time
	log     zerolog.Logger
}

// NewBackupService creates a new backup service. dataDir hosts the staging directory.
func NewBackupService(store ObjectStore, db *database.DB, dataDir string, log zerolog.Logger) *BackupService {
	return &BackupService{
		store:   store,
		db:      db,
		dataDir: dataDir,
		now:     time.Now,
		log:     log.With().Str("service", "backup").Logger(),
	}
}

// CreateAndUploadBackup snapshots the database, archives it and uploads the archive.
// Returns the uploaded object key.
func (s *BackupService) CreateAndUploadBackup(ctx context.Context) (string, error) {
	startTime := time.Now()

	stagingDir, err := os.MkdirTemp(s.dataDir, "backup-staging-")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	dbFile := s.db.Name() + ".db"
	dbPath := filepath.Join(stagingDir, dbFile)
	if err := s.db.Snapshot(ctx, dbPath); err != nil {
		return "", fmt.Errorf("failed to snapshot %s: %w", s.db.Name(), err)
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat snapshot: %w", err)
	}
	checksum, err := fileChecksum(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to checksum snapshot: %w", err)
	}

	now := s.now().UTC()
	metadata := BackupMetadata{
		Timestamp: now,
		Version:   "1",
		Databases: []DatabaseMetadata{{
			Name:      s.db.Name(),
			Filename:  dbFile,
			SizeBytes: info.Size(),
			Checksum:  checksum,
		}},
	}
	if err := writeMetadata(filepath.Join(stagingDir, metadataFile), metadata); err != nil {
		return "", fmt.Errorf("failed to write metadata: %w", err)
	}

	key := backupPrefix + now.Format(backupTimestamp) + backupSuffix
	archivePath := filepath.Join(stagingDir, key)
	if err := createArchive(archivePath, stagingDir, []string{dbFile, metadataFile}); err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	archive, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer archive.Close()

	if err := s.store.Upload(ctx, key, archive); err != nil {
		return "", err
	}

	s.log.Info().
		Dur("duration_ms", time.Since(startTime)).
		Str("archive", key).
		Int64("db_size_bytes", info.Size()).
		Msg("Backup uploaded")

	return key, nil
}

// ListBackups returns the archives in the bucket, newest first.
// Objects whose names do not carry a backup timestamp are ignored.
func (s *BackupService) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	objects, err := s.store.List(ctx, backupPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	now := s.now()
	backups := make([]BackupInfo, 0, len(objects))
	for _, obj := range objects {
		if !strings.HasPrefix(obj.Key, backupPrefix) || !strings.HasSuffix(obj.Key, backupSuffix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(obj.Key, backupPrefix), backupSuffix)
		ts, err := time.Parse(backupTimestamp, stamp)
		if err != nil {
			s.log.Warn().Str("filename", obj.Key).Msg("Failed to parse timestamp from filename")
			continue
		}
		backups = append(backups, BackupInfo{
			Filename:  obj.Key,
			Timestamp: ts,
			SizeBytes: obj.SizeBytes,
			AgeHours:  int64(now.Sub(ts).Hours()),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RotateOldBackups deletes archives older than retentionDays, always keeping
// the newest MinBackupsToKeep. A retention of 0 keeps everything.
// Returns the number of deleted archives.
func (s *BackupService) RotateOldBackups(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	backups, err := s.ListBackups(ctx)
	if err != nil {
		return 0, err
	}
	if len(backups) <= MinBackupsToKeep {
		return 0, nil
	}

	cutoff := s.now().AddDate(0, 0, -retentionDays)
	deleted := 0
	for _, b := range backups[MinBackupsToKeep:] {
		if !b.Timestamp.Before(cutoff) {
			continue
		}
		if err := s.store.Delete(ctx, b.Filename); err != nil {
			s.log.Error().Err(err).Str("filename", b.Filename).Msg("Failed to delete old backup")
			continue
		}
		deleted++
	}

	s.log.Info().
		Int("deleted", deleted).
		Int("remaining", len(backups)-deleted).
		Msg("Backup rotation completed")

	return deleted, nil
}

func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

func writeMetadata(path string, metadata BackupMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(metadata)
}

func createArchive(archivePath, sourceDir string, names []string) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for _, name := range names {
		if err := addFileToArchive(tw, filepath.Join(sourceDir, name), name); err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}

func addFileToArchive(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header := &tar.Header{
		Name:    name,
		Size:    info.Size(),
		Mode:    int64(info.Mode().Perm()),
		ModTime: info.ModTime(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}
