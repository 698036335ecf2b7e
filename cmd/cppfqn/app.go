package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cppfqn/internal/config"
	"cppfqn/internal/observ"
	"cppfqn/internal/prof"
	"cppfqn/internal/trace"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfg        config.Config
	configPath string
	quiet      bool
	timings    bool

	timer   *observ.Timer
	span    *trace.Span
	cleanup func()
	prof    *prof.Session
}

// setup runs before every command: it loads cppfqn.toml, applies flag
// overrides and installs the tracer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.timer = observ.NewTimer()
	var err error
	if err = a.timer.Measure("config", func() error { return a.loadSettings(cmd) }); err != nil {
		return err
	}

	if a.prof, err = setupProfiling(cmd); err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	a.cleanup = cleanup

	ctx := cmd.Context()
	a.span = trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, cmd.Name(), 0)
	if a.configPath != "" {
		a.span.WithExtra("config", a.configPath)
	}
	cmd.SetContext(trace.WithSpanContext(ctx, trace.SpanContext{SpanID: a.span.ID()}))
	return nil
}

func (a *app) loadSettings(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()

	path, err := pf.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		if a.cfg, err = config.Load(path); err != nil {
			return err
		}
		a.configPath = path
	} else {
		file, _, err := config.Discover(".")
		if err != nil {
			return err
		}
		a.cfg, a.configPath = file.Config, file.Path
	}

	// Флаги перекрывают значения из файла
	if pf.Changed("color") {
		v, _ := pf.GetString("color")
		if a.cfg.Output.Color, err = readToggle("--color", v); err != nil {
			return err
		}
	}
	if pf.Changed("max-diagnostics") {
		a.cfg.Run.MaxDiagnostics, _ = pf.GetInt("max-diagnostics")
	}
	if pf.Changed("jobs") {
		a.cfg.Run.Jobs, _ = pf.GetInt("jobs")
	}
	if a.cfg.Run.MaxDiagnostics < 0 || a.cfg.Run.Jobs < 0 {
		return fmt.Errorf("--max-diagnostics and --jobs must be >= 0")
	}
	if a.quiet, err = pf.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.timings, err = pf.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	return nil
}

// close ends the command span, prints timings and releases the tracer.
// It runs after Execute so that failing commands are covered too.
func (a *app) close(stderr io.Writer) {
	if a.span != nil {
		a.span.End("")
	}
	if a.timings && a.timer != nil {
		fmt.Fprint(stderr, a.timer.Summary())
	}
	if a.cleanup != nil {
		a.cleanup()
	}
	if err := a.prof.Stop(); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
	}
}

// resolveFormat picks the flag value, then the config value, then fallback,
// and checks it against allowed.
func (a *app) resolveFormat(flag string, allowed ...string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(flag))
	if value == "" {
		value = a.cfg.Output.Format
		if !contains(allowed, value) {
			value = allowed[0]
		}
		return value, nil
	}
	if !contains(allowed, value) {
		return "", fmt.Errorf("unsupported format %q (must be %s)", flag, strings.Join(allowed, "|"))
	}
	return value, nil
}

func (a *app) colorFor(w io.Writer) bool {
	switch a.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return writerIsTerminal(w)
	}
}

func readToggle(name, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "auto", "on", "off":
		return v, nil
	}
	return "", fmt.Errorf("invalid %s value %q (expected auto|on|off)", name, value)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
