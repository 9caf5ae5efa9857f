// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive numbered menu of the client.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/client"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/scenario"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// RunnerFactory builds a scenario runner printing to out.
type RunnerFactory func(out io.Writer) *scenario.Runner

// TUI runs the menu against one [client.Client]. It implements
// [client.Frontend].
type TUI struct {
	client    *client.Client
	newRunner RunnerFactory
	buildInfo models.AppBuildInfo
	copy      func(string) error
	now       func() time.Time
	progOpts  []tea.ProgramOption

	logger *logger.Logger
}

type Option func(*TUI)

func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(t *TUI) { t.buildInfo = info }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copyFn func(string) error) Option {
	return func(t *TUI) { t.copy = copyFn }
}

func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(t *TUI) { t.progOpts = append(t.progOpts, opts...) }
}

func WithLogger(log *logger.Logger) Option {
	return func(t *TUI) { t.logger = log }
}

func New(c *client.Client, newRunner RunnerFactory, opts ...Option) *TUI {
	t := &TUI{
		client:    c,
		newRunner: newRunner,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		copy:      clipboard.WriteAll,
		now:       time.Now,
		progOpts:  []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run blocks until the user exits. The client's output is restored
// afterwards and a farewell line is printed to it.
func (t *TUI) Run(ctx context.Context) error {
	out := t.client.Output()
	defer t.client.SetOutput(out)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.progOpts...)
	_, err := tea.NewProgram(newModel(ctx, t), opts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Error().Err(err).Msg("menu terminated")
		return fmt.Errorf("run menu: %w", err)
	}

	fmt.Fprintf(out, "\n%s %s\n", app.IconBye, app.MsgGoodbye)
	return nil
}
