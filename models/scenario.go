// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ScenarioKind names a scripted run.
type ScenarioKind string

const (
	ScenarioFull  ScenarioKind = "full"
	ScenarioQuick ScenarioKind = "quick"
)

// StepStatus is the outcome of a scenario step.
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// ScenarioStep records one step of a run.
type ScenarioStep struct {
	Position int
	Name     string
	Status   StepStatus
	Detail   string
	Duration time.Duration
}

// ScenarioRun is the record of a complete scenario execution.
type ScenarioRun struct {
	ID         int64
	Kind       ScenarioKind
	BaseURL    string
	Username   string
	StartedAt  time.Time
	FinishedAt time.Time
	Aborted    bool
	Steps      []ScenarioStep
}

// Count returns how many steps ended with status.
func (r ScenarioRun) Count(status StepStatus) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}
	return n
}

// Succeeded reports whether the run finished with no failed step.
func (r ScenarioRun) Succeeded() bool {
	return !r.Aborted && r.Count(StepFailed) == 0
}

// Duration is the wall-clock length of the run.
func (r ScenarioRun) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
