package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/aristath/cryptoadvisor/internal/reliability"
	"github.com/aristath/cryptoadvisor/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers handles system monitoring and job trigger endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	db          *database.DB
	scheduler   *scheduler.Scheduler
	backups     BackupLister
}

// BackupLister lists database backups in object storage
type BackupLister interface {
	ListBackups(ctx context.Context) ([]reliability.BackupInfo, error)
}

// NewSystemHandlers creates a new system handlers instance. backups may be nil
// when backups are not configured.
func NewSystemHandlers(log zerolog.Logger, db *database.DB, sched *scheduler.Scheduler, backups BackupLister) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("handler", "system").Logger(),
		startupTime: time.Now(),
		db:          db,
		scheduler:   sched,
		backups:     backups,
	}
}

// SystemStatusResponse represents system status
type SystemStatusResponse struct {
	Status        string          `json:"status"`
	UptimeSeconds int64           `json:"uptime_seconds"`
	CPUPercent    float64         `json:"cpu_percent"`
	MemoryPercent float64         `json:"memory_percent"`
	Goroutines    int             `json:"goroutines"`
	GoVersion     string          `json:"go_version"`
	Database      *database.Stats `json:"database,omitempty"`
	DatabaseError string          `json:"database_error,omitempty"`
}

// JobsStatusResponse represents scheduler job status
type JobsStatusResponse struct {
	TotalJobs int                   `json:"total_jobs"`
	Jobs      []scheduler.JobStatus `json:"jobs"`
}

// HandleSystemStatus handles GET /system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, memPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
		GoVersion:     runtime.Version(),
	}

	if h.db != nil {
		if err := h.db.QuickCheck(r.Context()); err != nil {
			h.log.Warn().Err(err).Msg("Database integrity check failed")
			response.Status = "degraded"
			response.DatabaseError = err.Error()
		}

		stats, err := h.db.GetStats()
		if err != nil {
			h.log.Warn().Err(err).Msg("Failed to get database stats")
			response.Status = "degraded"
			response.DatabaseError = err.Error()
		} else {
			response.Database = stats
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleJobsStatus handles GET /system/jobs
func (h *SystemHandlers) HandleJobsStatus(w http.ResponseWriter, r *http.Request) {
	jobs := []scheduler.JobStatus{}
	if h.scheduler != nil {
		jobs = h.scheduler.Status()
	}

	h.writeJSON(w, http.StatusOK, JobsStatusResponse{
		TotalJobs: len(jobs),
		Jobs:      jobs,
	})
}

// HandleTriggerJob handles POST /system/jobs/{name}
func (h *SystemHandlers) HandleTriggerJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.scheduler == nil {
		http.Error(w, "Scheduler not available", http.StatusServiceUnavailable)
		return
	}

	h.log.Info().Str("job", name).Msg("Manual job trigger")

	if err := h.scheduler.RunNow(name); err != nil {
		if errors.Is(err, scheduler.ErrUnknownJob) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("job", name).Msg("Manual job run failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": name + " completed successfully",
	})
}

// BackupsResponse lists backups, newest first
type BackupsResponse struct {
	Count   int                      `json:"count"`
	Backups []reliability.BackupInfo `json:"backups"`
}

// HandleListBackups handles GET /system/backups
func (h *SystemHandlers) HandleListBackups(w http.ResponseWriter, r *http.Request) {
	if h.backups == nil {
		http.Error(w, "Backups not configured", http.StatusServiceUnavailable)
		return
	}

	backups, err := h.backups.ListBackups(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list backups")
		http.Error(w, "Failed to list backups", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, BackupsResponse{
		Count:   len(backups),
		Backups: backups,
	})
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the endpoint stays responsive
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
