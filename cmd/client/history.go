// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/scenario"
	"github.com/MKhiriev/task-manager-client/internal/store"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 10

func newHistoryCmd(c *cli) *cobra.Command {
	var (
		limit int
		steps bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List scenario runs recorded in the journal",
		Long: `history prints the most recent scenario runs stored in the SQLite
journal given by --journal (or STORAGE_JOURNAL_DSN), newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			d, err := c.wire(ctx, out)
			if err != nil {
				return err
			}
			defer d.close()

			runs, err := d.storages.Journal.ListRuns(ctx, limit)
			if errors.Is(err, store.ErrJournalDisabled) {
				return fmt.Errorf("%w: pass --journal or set STORAGE_JOURNAL_DSN", err)
			}
			if err != nil {
				return fmt.Errorf("list scenario runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No scenario runs recorded")
				return nil
			}

			fmt.Fprintln(out, runsTable(runs, time.Now()))
			if steps {
				for _, run := range runs {
					fmt.Fprintf(out, "\nRun %d (%s)\n", run.ID, run.Kind)
					fmt.Fprintln(out, scenario.StepTable(run))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&steps, "steps", false, "Also print the steps of every run")
	return cmd
}

func runsTable(runs []models.ScenarioRun, now time.Time) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "KIND", "USER", "STARTED", "TOOK", "PASSED", "FAILED", "SKIPPED", "RESULT")
	for _, run := range runs {
		t.Row(
			strconv.FormatInt(run.ID, 10),
			string(run.Kind),
			run.Username,
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			run.Duration().Round(time.Millisecond).String(),
			strconv.Itoa(run.Count(models.StepPassed)),
			strconv.Itoa(run.Count(models.StepFailed)),
			strconv.Itoa(run.Count(models.StepSkipped)),
			result(run),
		)
	}
	return t.String()
}

func result(run models.ScenarioRun) string {
	switch {
	case run.Aborted:
		return "stopped"
	case run.Succeeded():
		return "passed"
	default:
		return "failed"
	}
}
