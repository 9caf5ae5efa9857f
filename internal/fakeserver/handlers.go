package fakeserver

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/task-manager-client/internal/utils"
	"github.com/MKhiriev/task-manager-client/models"
)

const headerCorrelationID = "X-Correlation-ID"

var rootField = regexp.MustCompile(`\b(createTask|updateTask|deleteTask|tasks|task|users)\b\s*[({]`)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readREST(w, r, OpRegister)
	if !ok {
		return
	}

	var req models.RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "Invalid registration data", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.findAccount(req.Username) != nil {
		s.mu.Unlock()
		http.Error(w, "Username already exists", http.StatusBadRequest)
		return
	}
	acc := s.addAccount(req.Username, req.Email, req.FirstName, req.LastName, req.Password, "USER")
	s.mu.Unlock()

	s.issueToken(w, acc)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readREST(w, r, OpLogin)
	if !ok {
		return
	}

	var req models.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid login data", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc := s.findAccount(req.Username)
	s.mu.Unlock()
	if acc == nil || acc.password != req.Password {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	s.issueToken(w, acc)
}

func (s *Server) issueToken(w http.ResponseWriter, acc *account) {
	token, err := utils.GenerateJWTToken(tokenIssuer, acc.user.Username, tokenDuration, signKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.tokens[token] = acc
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, models.AuthResponse{
		Token:    token,
		Username: acc.user.Username,
		Email:    acc.user.Email,
		Role:     acc.role,
	})
}

func (s *Server) healthProbe(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.readREST(w, r, OpHealth); !ok {
		return
	}

	s.mu.Lock()
	status := s.health
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, models.HealthStatus{Status: status})
}

func (s *Server) metricsProbe(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.readREST(w, r, OpMetrics); !ok {
		return
	}

	s.mu.Lock()
	names := append([]string(nil), s.metrics...)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, models.MetricsIndex{Names: names})
}

func (s *Server) graphql(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string                     `json:"query"`
		Variables map[string]json.RawMessage `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid GraphQL request", http.StatusBadRequest)
		return
	}

	op := OpTasks
	if m := rootField.FindStringSubmatch(req.Query); m != nil {
		op = m[1]
	}
	s.record(Call{
		Operation:     op,
		Authorization: r.Header.Get("Authorization"),
		CorrelationID: r.Header.Get(headerCorrelationID),
		Variables:     req.Variables,
	})

	if f, ok := s.failure(op); ok {
		s.fail(w, op, f)
		return
	}

	if s.caller(r) == nil {
		s.writeGraphQLErrors(w, "Unauthorized")
		return
	}

	s.mu.Lock()
	result, errMsg := s.resolve(op, req.Variables)
	s.mu.Unlock()
	if errMsg != "" {
		s.writeGraphQLErrors(w, errMsg)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{op: result}})
}

// resolve must be called with s.mu held.
func (s *Server) resolve(op string, vars map[string]json.RawMessage) (any, string) {
	switch op {
	case OpTasks:
		out := make([]models.Task, 0, len(s.order))
		for _, id := range s.order {
			if t, ok := s.tasks[id]; ok {
				out = append(out, s.render(t))
			}
		}
		return out, ""

	case OpTask:
		id, ok := idVariable(vars)
		if !ok {
			return nil, "Invalid task id"
		}
		if t, found := s.tasks[id]; found {
			return s.render(t), ""
		}
		return nil, ""

	case OpCreateTask:
		var in models.CreateTaskInput
		if err := json.Unmarshal(vars["input"], &in); err != nil || strings.TrimSpace(in.Title) == "" {
			return nil, "Task title is required"
		}
		return s.render(s.createTask(in)), ""

	case OpUpdateTask:
		id, ok := idVariable(vars)
		if !ok {
			return nil, "Invalid task id"
		}
		var in models.UpdateTaskInput
		if err := json.Unmarshal(vars["input"], &in); err != nil {
			return nil, "Invalid task input"
		}
		t, found := s.updateTask(id, in)
		if !found {
			return nil, "Task not found with id: " + strconv.FormatInt(id, 10)
		}
		return s.render(t), ""

	case OpDeleteTask:
		id, ok := idVariable(vars)
		if !ok {
			return nil, "Invalid task id"
		}
		return s.deleteTask(id), ""

	case OpUsers:
		return s.users(), ""
	}
	return nil, "Unknown operation"
}

// readREST records a REST call and applies any configured failure. ok is
// false when the response has already been written.
func (s *Server) readREST(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return nil, false
	}

	call := Call{
		Operation:     op,
		Authorization: r.Header.Get("Authorization"),
		CorrelationID: r.Header.Get(headerCorrelationID),
	}
	if len(body) > 0 {
		call.Body = body
	}
	s.record(call)

	if f, ok := s.failure(op); ok {
		s.fail(w, op, f)
		return nil, false
	}
	return body, true
}

func (s *Server) fail(w http.ResponseWriter, op string, f Failure) {
	switch {
	case f.Drop:
		hj, ok := w.(http.Hijacker)
		if !ok {
			http.Error(w, "drop not supported", http.StatusInternalServerError)
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
	case f.Status != 0:
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(f.Status)
		_, _ = io.WriteString(w, f.Body)
	case len(f.GraphQLErrors) > 0:
		s.writeGraphQLErrors(w, f.GraphQLErrors...)
	case f.Null:
		if isGraphQLOp(op) {
			s.writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{op: nil}})
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{})
	}
}

func (s *Server) caller(r *http.Request) *account {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

func (s *Server) writeGraphQLErrors(w http.ResponseWriter, messages ...string) {
	errs := make([]models.GraphQLError, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, models.GraphQLError{Message: m})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"data": nil, "errors": errs})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := utils.WriteJSON(w, status, data); err != nil {
		s.logger.Err(err).Msg("fake server response")
	}
}

func isGraphQLOp(op string) bool {
	switch op {
	case OpTasks, OpTask, OpCreateTask, OpUpdateTask, OpDeleteTask, OpUsers:
		return true
	}
	return false
}

func idVariable(vars map[string]json.RawMessage) (int64, bool) {
	raw, ok := vars["id"]
	if !ok {
		return 0, false
	}
	var id models.TaskID
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, false
	}
	return parseID(id.String())
}
