package workers

import (
	"context"
	"fmt"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/logging"
	"github.com/Fripe070/experienced/internal/metrics"
	"github.com/Fripe070/experienced/internal/models/dtos"
)

// ImportProvider pages through the third-party leaderboard API.
type ImportProvider interface {
	GetLeaderboardPage(ctx context.Context, guildID uint64, token string, page int) (*dtos.Mee6LeaderboardPage, error)
}

// ImportStore writes imported XP rows.
type ImportStore interface {
	UpsertXP(ctx context.Context, userID, guildID, xp int64) error
}

// ImportWorker is the single long-lived task draining the import queue. A
// job's failure is logged and the worker moves on; it never crashes the loop.
type ImportWorker struct {
	queue    *ImportQueue
	provider ImportProvider
	levels   ImportStore
	metrics  *metrics.MetricsRegistry
}

func NewImportWorker(queue *ImportQueue, provider ImportProvider, levels ImportStore, reg *metrics.MetricsRegistry) *ImportWorker {
	return &ImportWorker{queue: queue, provider: provider, levels: levels, metrics: reg}
}

// Start runs the drain loop until the context ends. Exactly one import is in
// flight at any time.
func (w *ImportWorker) Start(ctx context.Context) {
	logging.Info("Import worker started")
	for {
		job, err := w.queue.dequeueOrWait(ctx)
		if err != nil {
			logging.Info("Import worker stopping", "reason", err.Error())
			return
		}

		rows, err := w.processJob(ctx, job)
		if err != nil {
			logging.Error("Import job failed",
				"job_id", job.ID,
				"guild_id", common.FormatID(job.GuildID),
				"rows_imported", rows,
				"error", err.Error(),
			)
			w.metrics.ImportJobsTotal.WithLabelValues("failure").Inc()
			continue
		}
		logging.Info("Import job finished",
			"job_id", job.ID,
			"guild_id", common.FormatID(job.GuildID),
			"rows_imported", rows,
		)
		w.metrics.ImportJobsTotal.WithLabelValues("success").Inc()
	}
}

// processJob paginates the leaderboard until the source is exhausted,
// upserting each (user, xp) pair. The first fatal error aborts the job.
func (w *ImportWorker) processJob(ctx context.Context, job ImportJob) (int64, error) {
	var rows int64
	for page := 0; ; page++ {
		result, err := w.provider.GetLeaderboardPage(ctx, job.GuildID, job.Token, page)
		if err != nil {
			return rows, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		if len(result.Players) == 0 {
			return rows, nil
		}
		for _, player := range result.Players {
			userID, err := common.ParseID(player.ID)
			if err != nil {
				return rows, fmt.Errorf("leaderboard page %d: %w", page, err)
			}
			if err := w.levels.UpsertXP(ctx, common.IDToDB(userID), common.IDToDB(job.GuildID), player.XP); err != nil {
				return rows, err
			}
			rows++
			w.metrics.ImportedRowsTotal.Inc()
		}
	}
}
