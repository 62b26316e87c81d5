package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
)

// reportStatuses is the display order of execution statuses
var reportStatuses = []enums.WorkflowExecutionStatus{
	enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
	enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
	enums.WORKFLOW_EXECUTION_STATUS_FAILED,
	enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT,
	enums.WORKFLOW_EXECUTION_STATUS_TERMINATED,
	enums.WORKFLOW_EXECUTION_STATUS_CANCELED,
	enums.WORKFLOW_EXECUTION_STATUS_CONTINUED_AS_NEW,
}

func printSyncStats(stats *SyncStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%s %s\n", statusEmoji(stats.ByStatus[enums.WORKFLOW_EXECUTION_STATUS_COMPLETED], stats.Failures(), stats.Running()), stats.WorkflowType)
	fmt.Printf("  Window:      %s -> %s\n", stats.WindowStart.Format("2006-01-02 15:04:05"), stats.WindowEnd.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Executions:  %d\n", stats.Total)
	if stats.Truncated {
		fmt.Printf("  (truncated, raise -max-workflows to collect more)\n")
	}
	fmt.Printf("  Wallets:     %d (%d synced more than once)\n", len(stats.Wallets), stats.RepeatedWallets())
	fmt.Println()

	fmt.Println("By Status:")
	for _, status := range reportStatuses {
		count := stats.ByStatus[status]
		if count == 0 {
			continue
		}
		fmt.Printf("  %-24s %d (%s)\n", formatStatus(status), count, percentageString(count, stats.Total))
	}
	fmt.Println()

	if len(stats.Durations) == 0 {
		fmt.Println("No closed executions in the window.")
		fmt.Println(strings.Repeat("-", 80))
		return
	}

	fmt.Println("Duration (closed executions):")
	fmt.Printf("  p50:         %s\n", formatDuration(stats.Percentile(50)))
	fmt.Printf("  p95:         %s\n", formatDuration(stats.Percentile(95)))
	fmt.Printf("  p99:         %s\n", formatDuration(stats.Percentile(99)))
	fmt.Printf("  max:         %s\n", formatDuration(stats.Percentile(100)))
	if stats.FirstStart != nil && stats.LastEnd != nil {
		fmt.Printf("  Throughput:  %s\n", formatRate(len(stats.Durations), stats.LastEnd.Sub(*stats.FirstStart)))
	}
	fmt.Println()

	if len(stats.Slowest) > 0 {
		fmt.Println("Slowest:")
		for _, run := range stats.Slowest {
			fmt.Printf("  %-28s %-10s %s\n", run.WorkflowID, formatDuration(run.ExecutionTime), formatStatus(run.Status))
		}
	}

	fmt.Println(strings.Repeat("-", 80))
}

// writeMarkdownReport writes a markdown report of the sync stats
func writeMarkdownReport(path string, stats *SyncStats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return renderMarkdown(file, stats, time.Now())
}

func renderMarkdown(w io.Writer, stats *SyncStats, generatedAt time.Time) error {
	_, _ = fmt.Fprintf(w, "# Wallet Sync Report\n\n")
	_, _ = fmt.Fprintf(w, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(w, "| Property | Value |\n")
	_, _ = fmt.Fprintf(w, "|----------|-------|\n")
	_, _ = fmt.Fprintf(w, "| **Workflow Type** | %s |\n", stats.WorkflowType)
	_, _ = fmt.Fprintf(w, "| **Window Start** | %s |\n", stats.WindowStart.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(w, "| **Window End** | %s |\n", stats.WindowEnd.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(w, "| **Executions** | %d |\n", stats.Total)
	_, _ = fmt.Fprintf(w, "| **Wallets** | %d |\n", len(stats.Wallets))
	_, _ = fmt.Fprintf(w, "| **Wallets Synced More Than Once** | %d |\n", stats.RepeatedWallets())
	if stats.Truncated {
		_, _ = fmt.Fprintf(w, "| **Truncated** | yes |\n")
	}
	_, _ = fmt.Fprintf(w, "\n")

	_, _ = fmt.Fprintf(w, "## By Status\n\n")
	_, _ = fmt.Fprintf(w, "| Status | Count | Share |\n")
	_, _ = fmt.Fprintf(w, "|--------|-------|-------|\n")
	for _, status := range reportStatuses {
		count := stats.ByStatus[status]
		if count == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "| %s | %d | %s |\n", formatStatus(status), count, percentageString(count, stats.Total))
	}
	_, _ = fmt.Fprintf(w, "\n")

	if len(stats.Durations) == 0 {
		_, _ = fmt.Fprintf(w, "*No closed executions in the window.*\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "## Duration\n\n")
	_, _ = fmt.Fprintf(w, "| Percentile | Duration |\n")
	_, _ = fmt.Fprintf(w, "|------------|----------|\n")
	_, _ = fmt.Fprintf(w, "| p50 | %s |\n", formatDuration(stats.Percentile(50)))
	_, _ = fmt.Fprintf(w, "| p95 | %s |\n", formatDuration(stats.Percentile(95)))
	_, _ = fmt.Fprintf(w, "| p99 | %s |\n", formatDuration(stats.Percentile(99)))
	_, _ = fmt.Fprintf(w, "| max | %s |\n", formatDuration(stats.Percentile(100)))
	_, _ = fmt.Fprintf(w, "\n")

	if len(stats.Slowest) > 0 {
		_, _ = fmt.Fprintf(w, "## Slowest Executions\n\n")
		_, _ = fmt.Fprintf(w, "| Workflow ID | Duration | Status |\n")
		_, _ = fmt.Fprintf(w, "|-------------|----------|--------|\n")
		for _, run := range stats.Slowest {
			_, _ = fmt.Fprintf(w, "| `%s` | %s | %s |\n", run.WorkflowID, formatDuration(run.ExecutionTime), formatStatus(run.Status))
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	// Busiest wallets help spot clients reconnecting in a loop
	type walletRuns struct {
		walletID uint64
		runs     int
	}
	var busiest []walletRuns
	for walletID, runs := range stats.Wallets {
		if runs > 1 {
			busiest = append(busiest, walletRuns{walletID, runs})
		}
	}
	if len(busiest) == 0 {
		return nil
	}
	sort.Slice(busiest, func(i, j int) bool {
		if busiest[i].runs != busiest[j].runs {
			return busiest[i].runs > busiest[j].runs
		}
		return busiest[i].walletID < busiest[j].walletID
	})
	if len(busiest) > 10 {
		busiest = busiest[:10]
	}

	_, _ = fmt.Fprintf(w, "## Busiest Wallets\n\n")
	_, _ = fmt.Fprintf(w, "| Wallet ID | Runs |\n")
	_, _ = fmt.Fprintf(w, "|-----------|------|\n")
	for _, b := range busiest {
		_, _ = fmt.Fprintf(w, "| %d | %d |\n", b.walletID, b.runs)
	}

	return nil
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "🟡 RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "✅ COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "❌ FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "🚫 CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "⛔ TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_CONTINUED_AS_NEW:
		return "🔄 CONTINUED_AS_NEW"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "⏱️ TIMED_OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
