package workflow

import (
	"context"
	"fmt"

	"watchsweep/internal/arr"
	"watchsweep/pkg/models"
)

// Workflow walks the persisted unwatched list in stored order and
// deletes confirmed items through the owning service.
type Workflow struct {
	sonarr    arr.Client
	radarr    arr.Client
	confirmer Confirmer
	logger    arr.Logger
}

// NewWorkflow creates a new deletion workflow
func NewWorkflow(sonarr, radarr arr.Client, confirmer Confirmer, logger arr.Logger) *Workflow {
	return &Workflow{
		sonarr:    sonarr,
		radarr:    radarr,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Run prompts for every item. A decline or a failed deletion leaves the
// rest of the run untouched; an unknown media kind in the store aborts.
func (w *Workflow) Run(ctx context.Context, items []models.UnwatchedItem) (*models.DeleteStats, error) {
	stats := &models.DeleteStats{}

	for i, item := range items {
		client, err := w.clientFor(item.Kind)
		if err != nil {
			return stats, err
		}

		w.logger.Info("")
		w.logger.Info("[%d/%d] %s (%d)", i+1, len(items), item.Title, item.Year)
		w.logger.Info("  %s", item.URL)

		stats.Prompted++
		ok, err := w.confirmer.Confirm(fmt.Sprintf("Delete %q and its files?", item.Title))
		if err != nil {
			return stats, err
		}
		if !ok {
			stats.Declined++
			w.logger.Info("  Skipped")
			continue
		}

		if err := client.DeleteMedia(ctx, item.ID); err != nil {
			stats.Failed++
			w.logger.Error("  ❌ Failed to delete %s: %s", item.Title, err.Error())
			continue
		}

		stats.Deleted++
		w.logger.Info("  ✅ Deleted %s", item.Title)
	}

	return stats, nil
}

// clientFor returns the service that owns items of the given kind
func (w *Workflow) clientFor(kind models.MediaKind) (arr.Client, error) {
	switch kind {
	case models.MediaKindShow:
		return w.sonarr, nil
	case models.MediaKindMovie:
		return w.radarr, nil
	default:
		return nil, fmt.Errorf("unknown media type %q in result store", kind)
	}
}
