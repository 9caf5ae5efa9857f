package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the persistent command-line flags.
// Zero values mean "not given" and do not override other sources.
type Flags struct {
	BaseURL        string
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
	JournalDSN     string
	LogFile        string
	LogLevel       string
	JSONConfigPath string
	DotEnvPath     string
}

// BindFlags registers the configuration flags on fs and returns the struct
// they are parsed into.
//
// Flags:
//
//	-a/--base-url        task manager base url
//	--request-timeout    timeout of auth and GraphQL calls (e.g. 10s)
//	--probe-timeout      timeout of health and metrics probes (e.g. 5s)
//	--journal            SQLite DSN of the scenario journal
//	--log-file           log file path
//	--log-level          log level (debug, info, warn, error)
//	-c/--config          JSON config file path
//	--env-file           .env file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.BaseURL, "base-url", "a", "", "Task manager base URL")
	fs.DurationVar(&f.RequestTimeout, "request-timeout", 0, "Auth and GraphQL request timeout (e.g., 10s)")
	fs.DurationVar(&f.ProbeTimeout, "probe-timeout", 0, "Health and metrics probe timeout (e.g., 5s)")
	fs.StringVar(&f.JournalDSN, "journal", "", "SQLite DSN of the scenario journal")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level")
	fs.StringVarP(&f.JSONConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.DotEnvPath, "env-file", DefaultDotEnvPath, ".env file path")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        f.BaseURL,
			RequestTimeout: f.RequestTimeout,
			ProbeTimeout:   f.ProbeTimeout,
		},
		Storage: Storage{
			Journal: Journal{DSN: f.JournalDSN},
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		JSONFilePath: f.JSONConfigPath,
	}
}
