package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"staffbook/internal/staff/models"
	employeestore "staffbook/internal/staff/store/employee"
)

// Config captures process level configuration for the staffbook binary.
type Config struct {
	// Capacity is the fixed number of slots in the staff book.
	Capacity  int
	LogFormat string
	LogLevel  slog.Level
	// RosterDepartment limits the roster printout to one department. The zero
	// value prints all of them.
	RosterDepartment models.Department
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Capacity:  employeestore.DefaultCapacity,
		LogFormat: "text",
		LogLevel:  slog.LevelInfo,
	}
}

// FromEnv builds a Config from environment variables so main stays lean.
// Invalid values fall back to their defaults; the returned error lists what
// was ignored so the caller can log it.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var problems []string

	if raw, ok := lookup("STAFFBOOK_CAPACITY"); ok && raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			problems = append(problems, fmt.Sprintf("STAFFBOOK_CAPACITY=%q must be a positive integer", raw))
		} else {
			cfg.Capacity = n
		}
	}

	if raw, ok := lookup("STAFFBOOK_LOG_FORMAT"); ok && raw != "" {
		switch f := strings.ToLower(strings.TrimSpace(raw)); f {
		case "text", "json":
			cfg.LogFormat = f
		default:
			problems = append(problems, fmt.Sprintf("STAFFBOOK_LOG_FORMAT=%q must be text or json", raw))
		}
	}

	if raw, ok := lookup("STAFFBOOK_LOG_LEVEL"); ok && raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
			problems = append(problems, fmt.Sprintf("STAFFBOOK_LOG_LEVEL=%q is not a log level", raw))
		} else {
			cfg.LogLevel = level
		}
	}

	if raw, ok := lookup("STAFFBOOK_ROSTER_DEPARTMENT"); ok && raw != "" {
		d, err := models.ParseDepartment(strings.TrimSpace(raw))
		if err != nil {
			problems = append(problems, fmt.Sprintf("STAFFBOOK_ROSTER_DEPARTMENT=%q: %v", raw, err))
		} else {
			cfg.RosterDepartment = d
		}
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}
