package cron

import (
	"context"
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
)

type ArchiveJobs struct {
	archiveService archive.ArchiveService
}

func NewArchiveJobs(archiveService archive.ArchiveService) *ArchiveJobs {
	return &ArchiveJobs{archiveService: archiveService}
}

// Register adds the folder item_count reconciliation job. Counts are
// maintained transactionally; the job only repairs drift from rows touched
// outside the service.
func (j *ArchiveJobs) Register(scheduler *Scheduler) {
	scheduler.AddJob("reconcile-archive-folder-counts", 6*time.Hour, func(ctx context.Context) error {
		return j.archiveService.ReconcileFolderCounts(ctx)
	})
}
