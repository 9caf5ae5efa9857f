package scenario

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/models"
)

var statusIcons = map[models.StepStatus]string{
	models.StepPassed:  app.IconOK,
	models.StepFailed:  app.IconFail,
	models.StepSkipped: "⏭",
}

// report prints the step table, the totals and, when metrics are attached,
// the per-operation outcome counts.
func (r *Runner) report(run models.ScenarioRun) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, StepTable(run))
	fmt.Fprintf(r.out, app.MsgSummary+"\n",
		run.Count(models.StepPassed),
		run.Count(models.StepFailed),
		run.Count(models.StepSkipped),
		run.Duration().Round(time.Millisecond),
		humanize.RelTime(run.StartedAt, r.now(), "ago", "from now"),
	)

	if r.metrics == nil {
		return
	}
	stats, err := r.metrics.Snapshot()
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to read operation metrics")
		return
	}
	if len(stats) == 0 {
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("OPERATION", "OUTCOME", "COUNT")
	for _, s := range stats {
		t.Row(s.Operation, string(s.Outcome), humanize.Comma(int64(s.Count)))
	}
	fmt.Fprintln(r.out, t.String())
}

// StepTable renders the steps of run as a bordered table.
func StepTable(run models.ScenarioRun) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "STEP", "STATUS", "TOOK", "DETAIL")
	for _, s := range run.Steps {
		t.Row(
			strconv.Itoa(s.Position),
			s.Name,
			statusIcons[s.Status]+" "+string(s.Status),
			s.Duration.Round(time.Millisecond).String(),
			s.Detail,
		)
	}
	return t.String()
}
