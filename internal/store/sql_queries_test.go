// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/task-manager-client/models"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertRunQuery(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	run := &models.ScenarioRun{
		Kind:       models.ScenarioFull,
		BaseURL:    "http://localhost:8080",
		Username:   "testuser_100000",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Aborted:    true,
	}

	query, args, err := buildInsertRunQuery(run)
	require.NoError(t, err)

	require.Equal(t,
		"INSERT INTO scenario_runs (kind,base_url,username,started_at,finished_at,aborted) VALUES (?,?,?,?,?,?)",
		query)
	require.Equal(t, []any{"full", "http://localhost:8080", "testuser_100000", started, started.Add(time.Second), true}, args)
}

func Test_buildInsertStepsQuery(t *testing.T) {
	steps := []models.ScenarioStep{
		{Position: 1, Name: "health", Status: models.StepPassed, Duration: time.Millisecond},
		{Position: 2, Name: "register", Status: models.StepFailed, Detail: "no token"},
	}

	query, args, err := buildInsertStepsQuery(7, steps)
	require.NoError(t, err)

	// one values group per step
	require.Equal(t, 2, strings.Count(query, "(?,?,?,?,?,?)"))
	require.Len(t, args, 12)
	require.Equal(t, int64(7), args[0])
	require.Equal(t, "passed", args[3])
	require.Equal(t, int64(time.Millisecond), args[5])
	require.Equal(t, "no token", args[10])
}

func Test_buildListRunsQuery(t *testing.T) {
	query, args, err := buildListRunsQuery(5)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from scenario_runs")
	require.Contains(t, q, "order by started_at desc, id desc")
	require.Contains(t, q, "limit 5")

	query, _, err = buildListRunsQuery(0)
	require.NoError(t, err)
	require.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildListStepsQuery(t *testing.T) {
	query, args, err := buildListStepsQuery([]int64{3, 1})
	require.NoError(t, err)

	require.Contains(t, query, "run_id IN (?,?)")
	require.Equal(t, []any{int64(3), int64(1)}, args)
}
