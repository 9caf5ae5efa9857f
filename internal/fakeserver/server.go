package fakeserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

// Operation names recorded in [Call.Operation] and accepted by [Server.Fail].
const (
	OpRegister   = "register"
	OpLogin      = "login"
	OpTasks      = "tasks"
	OpTask       = "task"
	OpCreateTask = "createTask"
	OpUpdateTask = "updateTask"
	OpDeleteTask = "deleteTask"
	OpUsers      = "users"
	OpHealth     = "health"
	OpMetrics    = "metrics"
)

const (
	tokenIssuer   = "task-manager"
	tokenDuration = time.Hour
	signKey       = "fake-task-manager-key"
)

// Call is one request received by the server.
type Call struct {
	Operation     string
	Authorization string
	CorrelationID string
	// Body is the raw request body of REST calls.
	Body json.RawMessage
	// Variables are the GraphQL variables, keyed by name.
	Variables map[string]json.RawMessage
}

// Failure describes how an operation should misbehave. The first non-zero
// field wins, in declaration order.
type Failure struct {
	// Drop closes the connection without a response.
	Drop bool
	// Status replies with this HTTP status and Body.
	Status int
	Body   string
	// GraphQLErrors replies 200 with these messages in the errors array.
	GraphQLErrors []string
	// Null replies 200 with a null result for the operation.
	Null bool
}

type account struct {
	user     models.User
	password string
	role     string
}

// Server is the fake task manager. The zero value is not usable; use [New].
type Server struct {
	mu sync.Mutex

	accounts []*account
	tokens   map[string]*account
	tasks    map[int64]*storedTask
	order    []int64
	nextTask int64

	health   string
	metrics  []string
	failures map[string]Failure
	calls    []Call

	logger *logger.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the logger used for request logging.
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) {
		s.logger = log
	}
}

// WithMetricNames replaces the default metric index.
func WithMetricNames(names ...string) Option {
	return func(s *Server) {
		s.metrics = names
	}
}

// New creates a server seeded with the default accounts user/user123 and
// admin/admin123.
func New(opts ...Option) *Server {
	s := &Server{
		tokens:   make(map[string]*account),
		tasks:    make(map[int64]*storedTask),
		nextTask: 1,
		health:   models.HealthStatusUp,
		metrics:  defaultMetricNames(),
		failures: make(map[string]Failure),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.addAccount("user", "user@example.com", "Default", "User", "user123", "USER")
	s.addAccount("admin", "admin@example.com", "Default", "Admin", "admin123", "ADMIN")
	return s
}

// Start serves the fake on a loopback listener. Close the returned server
// when done.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.Handler())
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Fail makes every following call of op misbehave as f describes.
func (s *Server) Fail(op string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = f
}

// Recover undoes [Server.Fail] for op.
func (s *Server) Recover(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, op)
}

// SetHealthStatus changes the status reported by the health endpoint.
func (s *Server) SetHealthStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = status
}

// Calls returns a copy of the calls received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Operations returns the operation names of the calls received so far.
func (s *Server) Operations() []string {
	calls := s.Calls()
	ops := make([]string, 0, len(calls))
	for _, c := range calls {
		ops = append(ops, c.Operation)
	}
	return ops
}

// LastCall returns the most recent call of op.
func (s *Server) LastCall(op string) (Call, bool) {
	calls := s.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Operation == op {
			return calls[i], true
		}
	}
	return Call{}, false
}

// Tasks returns the stored tasks in creation order.
func (s *Server) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, 0, len(s.order))
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			out = append(out, s.render(t))
		}
	}
	return out
}

// AddTask stores a task directly and returns its id.
func (s *Server) AddTask(input models.CreateTaskInput) models.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(s.createTask(input)).ID
}

func (s *Server) record(c Call) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *Server) failure(op string) (Failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.failures[op]
	return f, ok
}

func (s *Server) addAccount(username, email, firstName, lastName, password, role string) *account {
	acc := &account{
		user: models.User{
			ID:        strconv.Itoa(len(s.accounts) + 1),
			Username:  username,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		password: password,
		role:     role,
	}
	s.accounts = append(s.accounts, acc)
	return acc
}

func (s *Server) findAccount(username string) *account {
	for _, acc := range s.accounts {
		if acc.user.Username == username {
			return acc
		}
	}
	return nil
}

func defaultMetricNames() []string {
	return []string{
		"application.ready.time",
		"application.started.time",
		"disk.free",
		"disk.total",
		"graphql.request",
		"http.server.requests",
		"jvm.gc.pause",
		"jvm.memory.max",
		"jvm.memory.used",
		"jvm.threads.live",
		"process.cpu.usage",
		"process.uptime",
		"system.cpu.count",
		"tasks.created",
	}
}
