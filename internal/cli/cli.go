// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the timefmt command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/internal/config"
	"github.com/z5labs/timefmt/internal/slogfield"

	"github.com/spf13/cobra"
)

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "TIMEFMT"

// Config is read from the config file, the environment and flags,
// in increasing order of precedence.
type Config struct {
	// Descriptions are named format descriptions which
	// can be referred to as @name on the command line.
	Descriptions map[string]description.Layout `config:"descriptions"`

	Log struct {
		Level  slog.Level `config:"level"`
		Format string     `config:"format"`
	} `config:"log"`

	Batch struct {
		Workers int `config:"workers"`
	} `config:"batch"`
}

func defaults() config.Map {
	return config.Map{
		"log": map[string]any{
			"level":  "info",
			"format": "text",
		},
		"batch": map[string]any{
			"workers": runtime.NumCPU(),
		},
	}
}

type app struct {
	cfg Config
	log *slog.Logger
	now func() time.Time

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line described by args and returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		log:    slog.New(slog.NewTextHandler(stderr, nil)),
		now:    time.Now,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	return a.run(ctx, args)
}

func (a *app) run(ctx context.Context, args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	a.log.ErrorContext(ctx, "command failed", slogfield.Error(err))
	return ExitCode(err)
}

// configFile reads path as JSON when it has a .json extension
// and as YAML otherwise.
func configFile(path string) config.Source {
	r := config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return config.FromJson(r)
	}
	return config.FromYaml(r)
}

func (a *app) rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:           "timefmt",
		Short:         "Format and parse dates and times with format descriptions",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			srcs := []config.Source{defaults()}
			if configPath != "" {
				srcs = append(srcs, configFile(configPath))
			}
			srcs = append(srcs, config.FromEnv(EnvPrefix))

			logFlags := map[string]any{}
			if cmd.Flags().Changed("log-level") {
				logFlags["level"] = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				logFlags["format"] = logFormat
			}
			srcs = append(srcs, config.Map{"log": logFlags})

			m, err := config.Read(srcs...)
			if err != nil {
				return ConfigReadError{Cause: err}
			}
			err = m.Unmarshal(&a.cfg)
			if err != nil {
				return ConfigUnmarshalError{Cause: err}
			}

			log, err := newLogger(a.stderr, a.cfg.Log.Format, a.cfg.Log.Level)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML or JSON config file")
	flags.StringVar(&logLevel, "log-level", "info", "minimum log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "text", "log output format: text or json")

	cmd.AddCommand(
		a.checkCmd(),
		a.formatCmd(),
		a.parseCmd(),
		a.batchCmd(),
	)
	return cmd
}

// UnknownLogFormatError occurs when the configured log format is not supported.
type UnknownLogFormatError struct {
	Format string
}

// Error implements the [builtin.error] interface.
func (e UnknownLogFormatError) Error() string {
	return fmt.Sprintf("unknown log format: %s", e.Format)
}

func newLogger(w io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, UnknownLogFormatError{Format: format}
	}
}

// ConfigReadError occurs when a configuration source cannot be read.
type ConfigReadError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigReadError) Error() string {
	return fmt.Sprintf("failed to read config sources: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigReadError) Unwrap() error {
	return e.Cause
}

// ConfigUnmarshalError occurs when configuration values cannot be decoded.
type ConfigUnmarshalError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigUnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigUnmarshalError) Unwrap() error {
	return e.Cause
}

// UnknownDescriptionError occurs when a @name refers to
// a description missing from the configuration.
type UnknownDescriptionError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e UnknownDescriptionError) Error() string {
	return fmt.Sprintf("no description named %q is configured", e.Name)
}

// items resolves a command line description argument. An argument of
// the form @name refers to a configured description.
func (a *app) items(arg string) ([]description.Item, error) {
	if len(arg) > 1 && arg[0] == '@' {
		layout, ok := a.cfg.Descriptions[arg[1:]]
		if !ok {
			return nil, UnknownDescriptionError{Name: arg[1:]}
		}
		return layout.Items(), nil
	}

	items, err := description.Compile(arg)
	if err != nil {
		return nil, wrap(err)
	}
	return items, nil
}
