// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the scenario journal: one row per scenario run plus
// its ordered steps, kept in a local SQLite file.
package store

import (
	"context"

	"github.com/MKhiriev/task-manager-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_repository_mock.go -package=mock

// JournalRepository records scenario runs.
type JournalRepository interface {
	// SaveRun stores run with its steps and sets run.ID.
	SaveRun(ctx context.Context, run *models.ScenarioRun) error
	// ListRuns returns up to limit runs, newest first, with their steps.
	ListRuns(ctx context.Context, limit int) ([]models.ScenarioRun, error)
}
