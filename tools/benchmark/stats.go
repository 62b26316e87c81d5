package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
)

const walletSyncIDPrefix = "wallet-sync-"

// WorkflowLister is the part of the Temporal client the report needs
type WorkflowLister interface {
	ListWorkflow(ctx context.Context, request *workflowservice.ListWorkflowExecutionsRequest) (*workflowservice.ListWorkflowExecutionsResponse, error)
}

// SyncExecution is one wallet sync run
type SyncExecution struct {
	WorkflowID    string
	RunID         string
	WalletID      uint64
	Status        enums.WorkflowExecutionStatus
	StartTime     time.Time
	CloseTime     *time.Time
	ExecutionTime time.Duration
}

// SyncStats aggregates the wallet sync runs of a window
type SyncStats struct {
	WorkflowType  string
	WindowStart   time.Time
	WindowEnd     time.Time
	Total         int
	ByStatus      map[enums.WorkflowExecutionStatus]int
	Wallets       map[uint64]int // runs per wallet
	Durations     []time.Duration
	FirstStart    *time.Time
	LastEnd       *time.Time
	Slowest       []SyncExecution
	Truncated     bool
	slowestLimit  int
	completedRuns []SyncExecution
}

func newSyncStats(workflowType string, windowStart, windowEnd time.Time, slowestLimit int) *SyncStats {
	return &SyncStats{
		WorkflowType: workflowType,
		WindowStart:  windowStart,
		WindowEnd:    windowEnd,
		ByStatus:     make(map[enums.WorkflowExecutionStatus]int),
		Wallets:      make(map[uint64]int),
		slowestLimit: slowestLimit,
	}
}

// buildQuery returns the visibility query selecting the window's executions
func buildQuery(workflowType string, since time.Time) string {
	return fmt.Sprintf("WorkflowType = '%s' AND StartTime >= '%s'", workflowType, since.UTC().Format(time.RFC3339))
}

// collectSyncStats pages through the visibility store and aggregates every execution in the window
func collectSyncStats(ctx context.Context, lister WorkflowLister, cfg *Config, now time.Time) (*SyncStats, error) {
	windowStart := now.Add(-cfg.Since)
	stats := newSyncStats(cfg.WorkflowType, windowStart, now, cfg.SlowestCount)
	query := buildQuery(cfg.WorkflowType, windowStart)

	if cfg.Debug {
		fmt.Printf("[DEBUG] Query: %s\n", query)
	}

	var pageToken []byte
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := lister.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			Query:         query,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("timeout while listing workflows (timeout: %v). Try increasing -query-timeout", cfg.QueryTimeout)
			}
			return nil, fmt.Errorf("failed to list workflows: %w", err)
		}

		for i, exec := range resp.Executions {
			stats.add(exec, now)
			if cfg.MaxWorkflows > 0 && stats.Total >= cfg.MaxWorkflows {
				stats.Truncated = len(resp.NextPageToken) > 0 || i < len(resp.Executions)-1
				stats.finish()
				return stats, nil
			}
		}

		if cfg.Debug {
			fmt.Printf("[DEBUG] Page done, collected %d executions so far\n", stats.Total)
		}

		if len(resp.NextPageToken) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	stats.finish()
	return stats, nil
}

// add folds one execution into the aggregate
func (s *SyncStats) add(exec *workflowpb.WorkflowExecutionInfo, now time.Time) {
	run := SyncExecution{
		WorkflowID: exec.GetExecution().GetWorkflowId(),
		RunID:      exec.GetExecution().GetRunId(),
		Status:     exec.GetStatus(),
		StartTime:  exec.GetStartTime().AsTime(),
	}
	if walletID, ok := parseWalletID(run.WorkflowID); ok {
		run.WalletID = walletID
		s.Wallets[walletID]++
	}

	if exec.GetCloseTime() != nil {
		closeTime := exec.GetCloseTime().AsTime()
		run.CloseTime = &closeTime
		run.ExecutionTime = closeTime.Sub(run.StartTime)
		s.Durations = append(s.Durations, run.ExecutionTime)
		s.completedRuns = append(s.completedRuns, run)
		if s.LastEnd == nil || closeTime.After(*s.LastEnd) {
			s.LastEnd = &closeTime
		}
	} else {
		run.ExecutionTime = now.Sub(run.StartTime)
	}

	if s.FirstStart == nil || run.StartTime.Before(*s.FirstStart) {
		start := run.StartTime
		s.FirstStart = &start
	}

	s.Total++
	s.ByStatus[run.Status]++
}

// finish sorts durations and keeps the slowest closed runs
func (s *SyncStats) finish() {
	sort.Slice(s.Durations, func(i, j int) bool { return s.Durations[i] < s.Durations[j] })
	sort.Slice(s.completedRuns, func(i, j int) bool {
		return s.completedRuns[i].ExecutionTime > s.completedRuns[j].ExecutionTime
	})

	limit := s.slowestLimit
	if limit > len(s.completedRuns) {
		limit = len(s.completedRuns)
	}
	s.Slowest = s.completedRuns[:limit]
}

// Running returns the number of executions still in flight
func (s *SyncStats) Running() int {
	return s.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_RUNNING]
}

// Failures returns the number of executions that closed without completing
func (s *SyncStats) Failures() int {
	return s.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_FAILED] +
		s.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_TERMINATED] +
		s.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT] +
		s.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_CANCELED]
}

// RepeatedWallets returns the number of wallets synchronized more than once in the window
func (s *SyncStats) RepeatedWallets() int {
	repeated := 0
	for _, runs := range s.Wallets {
		if runs > 1 {
			repeated++
		}
	}
	return repeated
}

// Percentile returns the p-th percentile (0-100) of closed execution durations using nearest rank
func (s *SyncStats) Percentile(p float64) time.Duration {
	if len(s.Durations) == 0 {
		return 0
	}
	if p <= 0 {
		return s.Durations[0]
	}
	if p >= 100 {
		return s.Durations[len(s.Durations)-1]
	}

	rank := int(math.Ceil(p/100*float64(len(s.Durations)))) - 1
	if rank < 0 {
		rank = 0
	}
	return s.Durations[rank]
}

// parseWalletID extracts the wallet id from a wallet sync workflow id
func parseWalletID(workflowID string) (uint64, bool) {
	if !strings.HasPrefix(workflowID, walletSyncIDPrefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(workflowID, walletSyncIDPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
