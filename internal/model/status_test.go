package model

import "testing"

func TestTaskStatus_String(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{TaskStatusPending, "Pending"},
		{TaskStatusWriting, "Writing"},
		{TaskStatusCompleted, "Completed"},
		{TaskStatusCancelled, "Cancelled"},
		{TaskStatusError, "Error"},
	}

	for _, test := range tests {
		if result := test.status.String(); result != test.expected {
			t.Errorf("String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestTaskStatus_IsActive(t *testing.T) {
	active := []TaskStatus{TaskStatusPending, TaskStatusWriting}
	inactive := []TaskStatus{TaskStatusCompleted, TaskStatusCancelled, TaskStatusError}

	for _, status := range active {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
	}
	for _, status := range inactive {
		if status.IsActive() {
			t.Errorf("Expected %s to be inactive", status)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	finished := []TaskStatus{TaskStatusCompleted, TaskStatusCancelled, TaskStatusError}
	unfinished := []TaskStatus{TaskStatusPending, TaskStatusWriting}

	for _, status := range finished {
		if !status.IsFinished() {
			t.Errorf("Expected %s to be finished", status)
		}
	}
	for _, status := range unfinished {
		if status.IsFinished() {
			t.Errorf("Expected %s to be unfinished", status)
		}
	}
}
