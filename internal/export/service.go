package export

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/resource-browser/internal/imaging"
	"github.com/ytget/resource-browser/internal/model"
)

const (
	TaskIDPrefix    = "export-"
	TempFilePattern = ".export-*.tmp"
	ExportFileMode  = 0o644
)

var _ Exporter = (*Service)(nil)

// ErrUnsupportedFormat is returned when no codec is registered for an entry's extension
var ErrUnsupportedFormat = imaging.ErrUnsupportedFormat

// Service writes resources to disk and keeps a record of every attempt
type Service struct {
	tasks      map[string]*model.ExportTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		tasks: make(map[string]*model.ExportTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// Export decodes the entry and re-encodes it to w using the entry's own
// format. destination is only recorded on the task.
func (s *Service) Export(entry model.ResourceEntry, w io.Writer, destination string) (*model.ExportTask, error) {
	task := s.newTask(entry, destination)

	if !imaging.Supported(entry.Ext) {
		err := fmt.Errorf("cannot export %s: %w", entry.Path, ErrUnsupportedFormat)
		s.setTaskError(task, err)
		return task, err
	}

	s.setStatus(task, model.TaskStatusWriting)

	cw := &countingWriter{w: w}
	if err := imaging.Transcode(cw, entry.Ext, entry.Data); err != nil {
		err = fmt.Errorf("failed to export %s: %w", entry.Path, err)
		s.setTaskError(task, err)
		return task, err
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Bytes = cw.n
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log.Printf("Exported %s (%d bytes)", entry.Path, cw.n)
	return task, nil
}

// ExportToFile exports the entry to path. The image is written to a temporary
// file in the same directory and renamed into place, so a failed export never
// leaves a partial file behind.
func (s *Service) ExportToFile(entry model.ResourceEntry, path string) (*model.ExportTask, error) {
	if !imaging.Supported(entry.Ext) {
		task := s.newTask(entry, path)
		err := fmt.Errorf("cannot export %s: %w", entry.Path, ErrUnsupportedFormat)
		s.setTaskError(task, err)
		return task, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePattern)
	if err != nil {
		task := s.newTask(entry, path)
		err = fmt.Errorf("failed to create file in %s: %w", filepath.Dir(path), err)
		s.setTaskError(task, err)
		return task, err
	}
	tmpPath := tmp.Name()

	task, err := s.Export(entry, tmp, path)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", tmpPath, closeErr)
		s.setTaskError(task, err)
	}
	if err == nil {
		if chmodErr := os.Chmod(tmpPath, ExportFileMode); chmodErr != nil {
			log.Printf("Failed to set permissions on %s: %v", tmpPath, chmodErr)
		}
		if renameErr := os.Rename(tmpPath, path); renameErr != nil {
			err = fmt.Errorf("failed to move export into place: %w", renameErr)
			s.setTaskError(task, err)
		}
	}
	if err != nil {
		os.Remove(tmpPath)
		return task, err
	}

	return task, nil
}

// Cancel records an export the user abandoned before anything was written
func (s *Service) Cancel(entry model.ResourceEntry) *model.ExportTask {
	task := s.newTask(entry, "")

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCancelled
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	return task
}

// GetTask returns an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// Tasks returns all export tasks, oldest first
func (s *Service) Tasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.ExportTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	s.tasksMutex.RUnlock()

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// SuggestFileName returns the file name offered in the save prompt
func SuggestFileName(entry model.ResourceEntry) string {
	name := entry.FileName()
	if name == "." || name == "/" {
		return "resource" + entry.Ext
	}
	return name
}

func (s *Service) newTask(entry model.ResourceEntry, destination string) *model.ExportTask {
	task := &model.ExportTask{
		ID:          generateTaskID(),
		Source:      entry.Path,
		Destination: destination,
		Format:      strings.TrimPrefix(entry.Ext, "."),
		Status:      model.TaskStatusPending,
		StartedAt:   time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	return task
}

func (s *Service) setStatus(task *model.ExportTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.Bytes = 0
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Export of %s failed: %v", task.Source, err)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique, time ordered task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
