// Package logging provides the shared log surface for NameForge: leveled,
// color-styled output used by the generator, availability checker, cache,
// CLI, and daemon.
//
// OUTPUT CONVENTIONS:
//   - INFO and SUCCESS go to stdout, DEBUG/WARN/ERROR go to stderr, so piped
//     CLI output stays clean while diagnostics remain visible.
//   - SUCCESS is INFO-level with a green label, used for completed operations
//     (cache flushed, daemon started, batch finished).
//   - Third-party output (gin, resty) is routed in through LevelWriter so the
//     daemon emits a single consistent stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// levelColors maps each level label to its display color. Chosen to stay
// readable on both light and dark terminals.
var levelColors = map[log.Level]struct {
	label string
	color string
}{
	log.DebugLevel: {"DEBUG", "#7F6DFF"},
	log.InfoLevel:  {"INFO", "#42E7FF"},
	log.WarnLevel:  {"WARN", "#FFE763"},
	log.ErrorLevel: {"ERROR", "#FF4473"},
}

// successColor styles the SUCCESS label. Shared with the CLI display package
// for available-domain rows.
const successColor = "#60F281"

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, c := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(c.label).
			Foreground(lipgloss.Color(c.color))
	}
	return styles
}

func newStyledLogger(w io.Writer, styles *log.Styles) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	logger.SetStyles(styles)
	return logger
}

var (
	outLogger     *log.Logger // INFO
	errLogger     *log.Logger // DEBUG, WARN, ERROR
	successLogger *log.Logger // INFO with the SUCCESS label
)

func init() {
	styles := levelStyles()
	outLogger = newStyledLogger(os.Stdout, styles)
	errLogger = newStyledLogger(os.Stderr, styles)

	successStyles := levelStyles()
	successStyles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color(successColor))
	successLogger = newStyledLogger(os.Stdout, successStyles)
}

// Info logs routine operational messages to stdout.
func Info(format string, v ...any) {
	outLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs troubleshooting detail to stderr. Hidden unless the level is
// lowered to DEBUG.
func Debug(format string, v ...any) {
	errLogger.Debug(fmt.Sprintf(format, v...))
}

// Warn logs recoverable problems to stderr.
func Warn(format string, v ...any) {
	errLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs failures to stderr.
func Error(format string, v ...any) {
	errLogger.Error(fmt.Sprintf(format, v...))
}

// Success logs a completed operation with a green SUCCESS label. Filtered
// with INFO: a level above INFO suppresses it.
func Success(format string, v ...any) {
	if outLogger.GetLevel() > log.InfoLevel {
		return
	}
	successLogger.Info(fmt.Sprintf(format, v...))
}

// parseLevel maps a level string to its charmbracelet level. Unknown values
// fall back to INFO rather than erroring; ValidateLogLevel is the strict
// gate for user input.
func parseLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// SetLevel applies a minimum level to all loggers. The CLI defaults to ERROR
// so command output stays clean; the daemon defaults to INFO.
func SetLevel(level string) {
	parsed := parseLevel(level)
	outLogger.SetLevel(parsed)
	errLogger.SetLevel(parsed)
	successLogger.SetLevel(parsed)
}

// LevelWriter adapts this package to io.Writer so libraries that log through
// a writer (gin's DefaultWriter, for one) feed the shared stream. Each
// non-empty line becomes one log record at the configured level.
type LevelWriter struct {
	logFn  func(format string, v ...any)
	prefix string
}

// NewLevelWriter returns a writer that records each written line at the given
// level (DEBUG, INFO, WARN, or ERROR) with a source prefix.
func NewLevelWriter(level, prefix string) io.Writer {
	var fn func(format string, v ...any)
	switch strings.ToUpper(level) {
	case "DEBUG":
		fn = Debug
	case "WARN":
		fn = Warn
	case "ERROR":
		fn = Error
	default:
		fn = Info
	}
	return &LevelWriter{logFn: fn, prefix: prefix}
}

func (w *LevelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if w.prefix != "" {
			line = w.prefix + ": " + line
		}
		w.logFn("%s", line)
	}
	return len(p), nil
}
