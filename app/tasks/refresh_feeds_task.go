package tasks

import (
	"context"
	"log/slog"

	"github.com/newslens/newslens/app/feed"
)

// RefreshFeedsTask re-runs the full ingestion pipeline, warming the listing
// cache and populating the archive ahead of inbound requests.
type RefreshFeedsTask struct {
	Task
	service *feed.Service
}

func NewRefreshFeedsTask(service *feed.Service) *RefreshFeedsTask {
	return &RefreshFeedsTask{
		Task:    NewTask(TaskTypeRefreshFeeds, "all"),
		service: service,
	}
}

func (t *RefreshFeedsTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	items := t.service.Refresh(ctx)

	slog.Info("Task completed",
		"type", "RefreshFeeds",
		"duration", t.GetDuration(),
		"items", len(items))

	return nil
}
