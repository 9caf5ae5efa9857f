package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/task-manager-client/models"
)

const (
	tableRuns  = "scenario_runs"
	tableSteps = "scenario_steps"
)

var (
	runColumns  = []string{"id", "kind", "base_url", "username", "started_at", "finished_at", "aborted"}
	stepColumns = []string{"run_id", "position", "name", "status", "detail", "duration_ns"}

	// sqlite uses ? placeholders
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func buildInsertRunQuery(run *models.ScenarioRun) (string, []any, error) {
	return builder.
		Insert(tableRuns).
		Columns(runColumns[1:]...).
		Values(string(run.Kind), run.BaseURL, run.Username, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.Aborted).
		ToSql()
}

// buildInsertStepsQuery inserts all steps of a run in one statement.
func buildInsertStepsQuery(runID int64, steps []models.ScenarioStep) (string, []any, error) {
	q := builder.Insert(tableSteps).Columns(stepColumns...)
	for _, s := range steps {
		q = q.Values(runID, s.Position, s.Name, string(s.Status), s.Detail, s.Duration.Nanoseconds())
	}
	return q.ToSql()
}

func buildListRunsQuery(limit int) (string, []any, error) {
	q := builder.
		Select(runColumns...).
		From(tableRuns).
		OrderBy("started_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildListStepsQuery(runIDs []int64) (string, []any, error) {
	return builder.
		Select(stepColumns...).
		From(tableSteps).
		Where(sq.Eq{"run_id": runIDs}).
		OrderBy("run_id", "position").
		ToSql()
}
