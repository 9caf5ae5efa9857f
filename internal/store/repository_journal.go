package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

type journalRepository struct {
	*DB
	logger *logger.Logger
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *journalRepository) SaveRun(ctx context.Context, run *models.ScenarioRun) error {
	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := j.DB.BeginTx(ctx, nil)
	if err != nil {
		j.logger.Err(err).Str("func", "journalRepository.SaveRun").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		j.logger.Err(err).Str("func", "journalRepository.SaveRun").Msg("failed to insert scenario run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(run.Steps) > 0 {
		query, args, err = buildInsertStepsQuery(runID, run.Steps)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			j.logger.Err(err).
				Str("func", "journalRepository.SaveRun").
				Int64("run_id", runID).
				Msg("failed to insert scenario steps")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	run.ID = runID
	j.logger.Debug().Int64("run_id", runID).Int("steps", len(run.Steps)).Msg("scenario run journaled")
	return nil
}

func (j *journalRepository) ListRuns(ctx context.Context, limit int) ([]models.ScenarioRun, error) {
	query, args, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		j.logger.Err(err).Str("func", "journalRepository.ListRuns").Msg("failed to query scenario runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.ScenarioRun
	index := make(map[int64]int)
	for rows.Next() {
		var (
			run  models.ScenarioRun
			kind string
		)
		if err = rows.Scan(&run.ID, &kind, &run.BaseURL, &run.Username, &run.StartedAt, &run.FinishedAt, &run.Aborted); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		run.Kind = models.ScenarioKind(kind)
		index[run.ID] = len(runs)
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if len(runs) == 0 {
		return runs, nil
	}

	ids := make([]int64, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}
	if err = j.attachSteps(ctx, ids, runs, index); err != nil {
		return nil, err
	}
	return runs, nil
}

func (j *journalRepository) attachSteps(ctx context.Context, ids []int64, runs []models.ScenarioRun, index map[int64]int) error {
	query, args, err := buildListStepsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		j.logger.Err(err).Str("func", "journalRepository.attachSteps").Msg("failed to query scenario steps")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			runID    int64
			step     models.ScenarioStep
			status   string
			duration int64
		)
		if err = rows.Scan(&runID, &step.Position, &step.Name, &status, &step.Detail, &duration); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		step.Status = models.StepStatus(status)
		step.Duration = time.Duration(duration)

		if i, ok := index[runID]; ok {
			runs[i].Steps = append(runs[i].Steps, step)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
