package export

import (
	"io"

	"github.com/ytget/resource-browser/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	Export(entry model.ResourceEntry, w io.Writer, destination string) (*model.ExportTask, error)
	ExportToFile(entry model.ResourceEntry, path string) (*model.ExportTask, error)
	Cancel(entry model.ResourceEntry) *model.ExportTask
	GetTask(taskID string) (*model.ExportTask, bool)
	Tasks() []*model.ExportTask
}
