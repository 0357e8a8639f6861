package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/futstats/fixture-insights/internal/domain/summary"
	"github.com/futstats/fixture-insights/internal/platform/cache"
)

// RebuildService recomputes cached aggregates after a dataset reload so
// the first read after a reload does not pay the aggregation cost.
type RebuildService struct {
	summary    *SummaryService
	standings  *StandingsService
	cache      *cache.Store
	maxWorkers int
}

func NewRebuildService(summarySvc *SummaryService, standingsSvc *StandingsService, store *cache.Store, maxWorkers int) *RebuildService {
	return &RebuildService{
		summary:    summarySvc,
		standings:  standingsSvc,
		cache:      store,
		maxWorkers: maxWorkers,
	}
}

type RebuildResult struct {
	Tasks        int      `json:"tasks"`
	SuccessCount int      `json:"success_count"`
	FailedCount  int      `json:"failed_count"`
	WorkerCount  int      `json:"worker_count"`
	Failures     []string `json:"failures,omitempty"`
}

type rebuildTask struct {
	competitionID string
	kind          string
	groupKey      summary.GroupKey
}

// Warm drops stale cache entries and recomputes summaries for every
// group key plus the standings table of each competition.
func (s *RebuildService) Warm(ctx context.Context, competitionIDs []string) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RebuildService.Warm")
	defer span.End()

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, "summary:")
		s.cache.DeletePrefix(ctx, "standings:")
	}

	tasks := make([]rebuildTask, 0, len(competitionIDs)*4)
	for _, competitionID := range competitionIDs {
		for _, key := range []summary.GroupKey{summary.GroupByHomeTeam, summary.GroupByTeam, summary.GroupByStage} {
			tasks = append(tasks, rebuildTask{competitionID: competitionID, kind: "summary", groupKey: key})
		}
		tasks = append(tasks, rebuildTask{competitionID: competitionID, kind: "standings"})
	}

	workerCount := normalizeRebuildWorkerCount(s.maxWorkers, len(tasks))
	result := RebuildResult{Tasks: len(tasks), WorkerCount: workerCount}
	if len(tasks) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	failures := make(chan string, len(tasks))
	var successCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.runRebuildTask(ctx, task); err != nil {
				failures <- fmt.Sprintf("%s %s: %v", task.competitionID, task.kind, err)
				return
			}
			successCount.Add(1)
		}); err != nil {
			workers.Done()
			return RebuildResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	for failure := range failures {
		result.Failures = append(result.Failures, failure)
	}
	sort.Strings(result.Failures)

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = len(result.Failures)
	return result, nil
}

func (s *RebuildService) runRebuildTask(ctx context.Context, task rebuildTask) error {
	switch task.kind {
	case "summary":
		_, err := s.summary.Summarize(ctx, task.competitionID, task.groupKey, SummarizeOptions{})
		return err
	case "standings":
		_, err := s.standings.Table(ctx, task.competitionID)
		return err
	default:
		return fmt.Errorf("unsupported rebuild kind %q", task.kind)
	}
}

func normalizeRebuildWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 2
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
