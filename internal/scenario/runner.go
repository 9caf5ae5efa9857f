package scenario

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/store"
	"github.com/MKhiriev/task-manager-client/models"
)

// Default credentials of the quick check.
const (
	DefaultUsername = "user"
	DefaultPassword = "user123"
)

// Runner executes scenarios through a [SessionClient].
type Runner struct {
	client  SessionClient
	out     io.Writer
	journal store.JournalRepository
	metrics *instrumentation.Metrics
	now     func() time.Time

	baseURL  string
	username string
	password string

	logger *logger.Logger
}

// Option configures a [Runner].
type Option func(*Runner)

// WithOutput sets where step headers and the summary are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithJournal appends every finished run to j.
func WithJournal(j store.JournalRepository) Option {
	return func(r *Runner) { r.journal = j }
}

// WithMetrics adds per-operation outcome counts to the summary.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithBaseURL records the target service in run records.
func WithBaseURL(baseURL string) Option {
	return func(r *Runner) { r.baseURL = baseURL }
}

// WithCredentials sets the account used by the quick check.
func WithCredentials(username, password string) Option {
	return func(r *Runner) {
		if username != "" {
			r.username = username
		}
		if password != "" {
			r.password = password
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(r *Runner) { r.logger = log }
}

func NewRunner(client SessionClient, opts ...Option) *Runner {
	r := &Runner{
		client:   client,
		out:      os.Stdout,
		now:      time.Now,
		username: DefaultUsername,
		password: DefaultPassword,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// state carries the values produced by earlier steps.
type state struct {
	username string
	task1    *models.Task
	task2    *models.Task
}

// step is one entry of a scenario plan.
type step struct {
	name string
	// header is printed before the step runs; empty prints nothing.
	header func(*state) string
	// ready reports whether the step's input exists; nil means always.
	ready func(*state) bool
	run   func(context.Context, *state) (bool, string)
	// stop, when set, ends the run on failure after printing it.
	stop string
}

// execute runs plan in order and returns the recorded run.
func (r *Runner) execute(ctx context.Context, kind models.ScenarioKind, plan []step, numbered string, st *state) models.ScenarioRun {
	run := models.ScenarioRun{
		Kind:      kind,
		BaseURL:   r.baseURL,
		StartedAt: r.now(),
	}

	stopped := false
	for i, s := range plan {
		rec := models.ScenarioStep{Position: i + 1, Name: s.name}

		switch {
		case stopped:
			rec.Status = models.StepSkipped
			rec.Detail = "run stopped"
		case s.ready != nil && !s.ready(st):
			rec.Status = models.StepSkipped
			rec.Detail = "missing input from an earlier step"
		default:
			if s.header != nil {
				if h := s.header(st); h != "" {
					fmt.Fprintf(r.out, numbered, h)
				}
			}

			started := r.now()
			ok, detail := s.run(ctx, st)
			rec.Duration = r.now().Sub(started)
			rec.Detail = detail
			rec.Status = models.StepPassed
			if !ok {
				rec.Status = models.StepFailed
				if s.stop != "" {
					fmt.Fprintf(r.out, "%s %s\n", app.IconFail, s.stop)
					stopped = true
				}
			}
		}

		run.Steps = append(run.Steps, rec)
		r.logger.Debug().
			Str("scenario", string(kind)).
			Str("step", rec.Name).
			Str("status", string(rec.Status)).
			Dur("took", rec.Duration).
			Msg("scenario step")
	}

	run.Aborted = stopped
	run.Username = st.username
	run.FinishedAt = r.now()

	r.save(ctx, &run)
	return run
}

func (r *Runner) save(ctx context.Context, run *models.ScenarioRun) {
	if r.journal == nil {
		return
	}
	if err := r.journal.SaveRun(ctx, run); err != nil {
		r.logger.Warn().Err(err).Str("scenario", string(run.Kind)).Msg("failed to journal scenario run")
	}
}

func (r *Runner) banner(icon, title string, width int) {
	fmt.Fprintf(r.out, "%s %s\n%s\n", icon, title, strings.Repeat("=", width))
}
