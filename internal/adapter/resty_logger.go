package adapter

import "github.com/MKhiriev/task-manager-client/internal/logger"

// restyLogger routes resty's internal messages to the client log file so
// they never reach the terminal.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
