// Package job runs document conversions in the background and tracks their
// progress for the API and websocket layers.
package job

import (
	"fmt"
	"sync"
	"time"

	"github.com/diagram-converter/backend/internal/converter"
	"github.com/diagram-converter/backend/internal/models"
	"github.com/google/uuid"
)

// MaxJobs limits retained jobs to keep memory bounded.
const MaxJobs = 50

// ProgressEvent is broadcast to subscribers whenever a job changes state.
type ProgressEvent struct {
	JobID    string           `json:"jobId"`
	FileID   string           `json:"fileId"`
	Status   models.JobStatus `json:"status"`
	Progress float64          `json:"progress"`
	Error    string           `json:"error,omitempty"`
}

// jobState holds a job's metadata and, once complete, its result.
type jobState struct {
	Job          *models.ConvertJob
	Result       *models.ConvertResult
	LastAccessed time.Time
}

// Manager handles active conversion jobs.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*jobState
	subs map[chan ProgressEvent]struct{}
}

// NewManager creates a new job manager.
func NewManager() *Manager {
	return &Manager{
		jobs: make(map[string]*jobState),
		subs: make(map[chan ProgressEvent]struct{}),
	}
}

// Start begins converting a stored document in a background goroutine.
func (m *Manager) Start(fileID, filePath string) *models.ConvertJob {
	m.cleanupIfNeeded()

	jobID := uuid.New().String()
	j := models.NewConvertJob(jobID, fileID)
	j.Status = models.JobStatusConverting

	m.mu.Lock()
	m.jobs[jobID] = &jobState{Job: j, LastAccessed: time.Now()}
	m.mu.Unlock()

	go m.runConvert(jobID, filePath)

	return j
}

func (m *Manager) runConvert(jobID, filePath string) {
	// Recover from panics so a bad document cannot take the process down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Job %s] PANIC recovered: %v\n", shortID(jobID), r)
			m.fail(jobID, fmt.Sprintf("conversion panicked: %v", r))
		}
	}()

	start := time.Now()
	fmt.Printf("[Job %s] Starting conversion of %s\n", shortID(jobID), filePath)
	m.setProgress(jobID, 10)

	result, err := converter.ConvertFile(filePath)
	if err != nil {
		fmt.Printf("[Job %s] ERROR: %v\n", shortID(jobID), err)
		m.fail(jobID, err.Error())
		return
	}

	m.mu.Lock()
	state, ok := m.jobs[jobID]
	if ok {
		state.Result = result
		state.Job.Status = models.JobStatusComplete
		state.Job.Progress = 100
		state.Job.ShapeCount = len(result.Shapes)
		state.Job.SkippedCount = result.Skipped
		state.Job.ProcessingTimeMs = time.Since(start).Milliseconds()
		state.LastAccessed = time.Now()
	}
	m.mu.Unlock()

	if ok {
		fmt.Printf("[Job %s] Converted %d shapes (%d skipped) in %v\n",
			shortID(jobID), len(result.Shapes), result.Skipped, time.Since(start))
		m.broadcast(jobID)
	}
}

// Get returns a job's metadata.
func (m *Manager) Get(jobID string) (*models.ConvertJob, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.jobs[jobID]
	if !ok {
		return nil, false
	}
	state.LastAccessed = time.Now()
	return state.Job, true
}

// Result returns a completed job's conversion result.
func (m *Manager) Result(jobID string) (*models.ConvertResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.jobs[jobID]
	if !ok || state.Result == nil {
		return nil, false
	}
	state.LastAccessed = time.Now()
	return state.Result, true
}

// Subscribe registers a progress-event channel. The caller must
// Unsubscribe when done.
func (m *Manager) Subscribe() chan ProgressEvent {
	ch := make(chan ProgressEvent, 16)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()
	return ch
}

// Unsubscribe removes a progress-event channel.
func (m *Manager) Unsubscribe(ch chan ProgressEvent) {
	m.mu.Lock()
	delete(m.subs, ch)
	m.mu.Unlock()
	close(ch)
}

// CleanupOldJobs drops jobs not accessed within maxAge. Returns the number
// removed.
func (m *Manager) CleanupOldJobs(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, state := range m.jobs {
		if state.LastAccessed.Before(cutoff) {
			delete(m.jobs, id)
			removed++
		}
	}
	if removed > 0 {
		fmt.Printf("[Job] Cleaned up %d old jobs\n", removed)
	}
	return removed
}

func (m *Manager) cleanupIfNeeded() {
	m.mu.Lock()
	if len(m.jobs) < MaxJobs {
		m.mu.Unlock()
		return
	}

	// Evict the least recently accessed job.
	var oldestID string
	var oldest time.Time
	for id, state := range m.jobs {
		if oldestID == "" || state.LastAccessed.Before(oldest) {
			oldestID = id
			oldest = state.LastAccessed
		}
	}
	if oldestID != "" {
		delete(m.jobs, oldestID)
	}
	m.mu.Unlock()
}

func (m *Manager) setProgress(jobID string, progress float64) {
	m.mu.Lock()
	if state, ok := m.jobs[jobID]; ok {
		state.Job.Progress = progress
	}
	m.mu.Unlock()
	m.broadcast(jobID)
}

func (m *Manager) fail(jobID, reason string) {
	m.mu.Lock()
	if state, ok := m.jobs[jobID]; ok {
		state.Job.Status = models.JobStatusError
		state.Job.Error = reason
	}
	m.mu.Unlock()
	m.broadcast(jobID)
}

func (m *Manager) broadcast(jobID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.jobs[jobID]
	if !ok {
		return
	}
	event := ProgressEvent{
		JobID:    state.Job.ID,
		FileID:   state.Job.FileID,
		Status:   state.Job.Status,
		Progress: state.Job.Progress,
		Error:    state.Job.Error,
	}
	for ch := range m.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, drop the event rather than block.
		}
	}
}

// shortID safely truncates an ID for logging.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
