// Package telemetry provides the structured logger and Prometheus metrics
// shared by the sampler driver and the spikyball-demo CLI.
package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names the supported log levels, kept as strings so they round-trip
// through YAML config and CLI flags without an extra parsing layer.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the on-wire encoding of log lines.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger wraps a configured zerolog.Logger with the field vocabulary the
// sampler driver and CLI emit (hop, depth, policy, node counts).
type Logger struct {
	z zerolog.Logger
}

// NewLogger builds a Logger from cfg, defaulting to stderr/info/json.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	out := cfg.Output
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, for callers that never
// configured telemetry (e.g. library users who only call spikyball.Explore).
func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// HopStarted logs the beginning of a hop expansion.
func (l *Logger) HopStarted(depth, frontierSize int) {
	l.z.Debug().Int("depth", depth).Int("frontier", frontierSize).Msg("hop started")
}

// HopFinished logs the outcome of a hop: edges kept, nodes newly visited.
func (l *Logger) HopFinished(depth, keptEdges, newNodes int) {
	l.z.Info().Int("depth", depth).Int("kept_edges", keptEdges).Int("new_nodes", newNodes).Msg("hop finished")
}

// BackendError logs a transient backend failure that the driver absorbed.
func (l *Logger) BackendError(node string, err error) {
	l.z.Warn().Str("node", node).Err(err).Msg("backend error, node skipped")
}

// RunFinished logs the terminal summary of an Explore call.
func (l *Logger) RunFinished(visited, edges int, d time.Duration) {
	l.z.Info().Int("visited", visited).Int("edges", edges).Dur("elapsed", d).Msg("run finished")
}
