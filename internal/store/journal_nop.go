package store

import (
	"context"

	"github.com/MKhiriev/task-manager-client/models"
)

// nopJournal is used when no journal DSN is configured.
type nopJournal struct{}

func (nopJournal) SaveRun(context.Context, *models.ScenarioRun) error { return nil }

func (nopJournal) ListRuns(context.Context, int) ([]models.ScenarioRun, error) {
	return nil, ErrJournalDisabled
}
