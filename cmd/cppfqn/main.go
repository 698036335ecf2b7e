package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cppfqn/internal/trace"
	"cppfqn/internal/version"
)

// errFailed signals that some input did not parse; diagnostics were
// already printed, so main only sets the exit code.
var errFailed = errors.New("one or more inputs failed")

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cppfqn",
		Short: "C++ declarator parser",
		Long: `cppfqn splits C++ fully qualified declarators such as
"int ns::cls<T>::method(const T &) const" into name, scopes, template,
arguments, qualifiers and return type.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	// Устанавливаем версию для автоматического флага --version
	root.Version = version.Version

	root.AddCommand(newTokenizeCmd(a))
	root.AddCommand(newParseCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newFixtureCmd(a))
	root.AddCommand(newVersionCmd(a))

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to cppfqn.toml (default: search upwards from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.Int("jobs", 0, "parallel workers for signature lists (0 = GOMAXPROCS)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", trace.DefaultRingSize, "events kept in ring mode")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 = off)")

	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime execution trace to this file")
	return root
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.close(stderr)
	if err == nil {
		return 0
	}
	if !errors.Is(err, errFailed) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal reports whether w is a terminal-backed file.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func durationMS(d time.Duration) string {
	return fmt.Sprintf("%.1f ms", float64(d)/float64(time.Millisecond))
}
