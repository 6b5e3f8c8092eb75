package model

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task was created but nothing was written yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusWriting means the encoded image is being written to disk
	TaskStatusWriting TaskStatus = "Writing"

	// TaskStatusCompleted means the file was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusCancelled means the user dismissed the save prompt
	TaskStatusCancelled TaskStatus = "Cancelled"

	// TaskStatusError means the export failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusWriting
}

// IsFinished returns true if the task is in a finished state (completed, cancelled, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCancelled || ts == TaskStatusError
}
