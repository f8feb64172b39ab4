package reconcile

import (
	"watchsweep/internal/arr"
	"watchsweep/pkg/models"
)

// ProgressReporter receives per-item reconciliation outcomes
type ProgressReporter interface {
	ReportUnwatched(item models.UnwatchedItem)
	Finish(stats models.ReconcileStats)
}

// ConsoleProgressReporter implements the ProgressReporter interface for console output
type ConsoleProgressReporter struct {
	logger arr.Logger
}

// NewConsoleProgressReporter creates a new ConsoleProgressReporter
func NewConsoleProgressReporter(logger arr.Logger) ProgressReporter {
	return &ConsoleProgressReporter{
		logger: logger,
	}
}

// ReportUnwatched reports one item added to the unwatched set
func (r *ConsoleProgressReporter) ReportUnwatched(item models.UnwatchedItem) {
	r.logger.Info("  Unwatched: %s (%d) -> %s", item.Title, item.Year, item.Path)
}

// Finish reports the final reconciliation statistics
func (r *ConsoleProgressReporter) Finish(stats models.ReconcileStats) {
	r.logger.Info("")
	r.logger.Info("================================================")
	r.logger.Info("Reconciliation Summary:")
	r.logger.Info("  Entries checked:     %d", stats.Checked)
	r.logger.Info("  Recently added:      %d", stats.SkippedRecent)
	r.logger.Info("  Already watched:     %d", stats.SkippedWatched)
	r.logger.Info("  Missing metadata:    %d", stats.SkippedNoMeta)
	r.logger.Info("  No library match:    %d", stats.SkippedNoMatch)
	r.logger.Info("  Protected paths:     %d", stats.SkippedProtected)
	if stats.FuzzyMatches > 0 {
		r.logger.Info("  Fuzzy title matches: %d", stats.FuzzyMatches)
	}
	r.logger.Info("  Unwatched items:     %d", stats.Unwatched)
}
