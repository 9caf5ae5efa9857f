package service

import (
	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
)

// Services bundles the service implementations sharing one adapter.
type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	UserService    UserService
	MonitorService MonitorService
}

// NewServices wires every service to taskManager. metrics may be nil.
func NewServices(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(taskManager, metrics, log),
		TaskService:    NewTaskService(taskManager, metrics, log),
		UserService:    NewUserService(taskManager, metrics, log),
		MonitorService: NewMonitorService(taskManager, metrics, log),
	}
}
