package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/postpager/internal/config"
	"github.com/rshade/postpager/internal/logging"
	"github.com/rshade/postpager/internal/tracing"
)

// Environment overrides applied after the config file.
const (
	envLogLevel  = "POSTPAGER_LOG_LEVEL"
	envLogFormat = "POSTPAGER_LOG_FORMAT"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, debug bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(envLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(envLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// runSession holds resources that live for one command run.
type runSession struct {
	shutdownTracing tracing.ShutdownFunc
	traceFile       *os.File
}

// setupTracing installs the tracer provider. Spans are exported only when
// --trace is set or tracing is enabled in the config file; otherwise the
// provider records nothing.
func setupTracing(cmd *cobra.Command, ver string, traceFlag bool) (*runSession, error) {
	cfg := config.GetGlobalConfig().Tracing
	s := &runSession{}

	tcfg := tracing.Config{ServiceName: "postpager", ServiceVersion: ver}
	if traceFlag || cfg.Enabled {
		f, err := openTraceFile(cfg.File)
		if err != nil {
			return nil, err
		}
		s.traceFile = f
		tcfg.Writer = f
	}

	shutdown, err := tracing.Init(cmd.Context(), tcfg)
	if err != nil {
		s.closeTraceFile()
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	s.shutdownTracing = shutdown

	if s.traceFile != nil {
		logger.Debug().Ctx(cmd.Context()).Str("file", s.traceFile.Name()).Msg("exporting spans")
	}
	return s, nil
}

func openTraceFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: tracing.file is required when tracing is enabled", config.ErrInvalidConfig)
	}
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	return f, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}

// shutdown flushes pending spans and closes the trace file. It is safe on a
// nil session so a failed pre-run does not need special casing.
func (s *runSession) shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	if s.shutdownTracing != nil {
		err = s.shutdownTracing(ctx)
	}
	s.closeTraceFile()
	return err
}

func (s *runSession) closeTraceFile() {
	if s.traceFile != nil {
		_ = s.traceFile.Close()
		s.traceFile = nil
	}
}
