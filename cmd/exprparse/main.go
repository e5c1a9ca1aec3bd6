package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/constraints"

	"github.com/zephyrtronium/exprparse"
)

const description = `Evaluate arithmetic expressions.

  Each argument is one expression. With --in, each non-blank line of the file
  is one expression as well. Variables come from --vars and --given; functions
  exp, ln, log, sqrt, abs and constants pi and e are available unless
  --builtins=false. Use -- before expressions that begin with a minus sign.`

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the exprparse command writing results to out.
func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "exprparse [options] EXPR...",
		Short:        "Evaluate arithmetic expressions",
		Long:         description,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.SetOut(out)
	addFlags(cmd.Flags())
	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("in", "", "file with one expression per line (- for stdin)")
	flags.String("vars", "", "TOML file with variables and settings")
	flags.StringArray("given", nil, "name=value variable definition (any number of times)")
	flags.String("fmt", "%g", "result formatting string")
	flags.Bool("echo", false, "print parse trees")
	flags.Bool("builtins", true, "register builtin functions and constants")
	flags.Bool("f32", false, "evaluate with 32-bit floats")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level")
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)

	var cfg config
	if path, _ := flags.GetString("vars"); path != "" {
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
	}
	if cfg.Format == "" || flags.Changed("fmt") {
		cfg.Format, _ = flags.GetString("fmt")
	}
	if f32, _ := flags.GetBool("f32"); f32 {
		cfg.Precision = "float32"
	}
	cfg.Echo, _ = flags.GetBool("echo")
	cfg.Builtins, _ = flags.GetBool("builtins")
	given, _ := flags.GetStringArray("given")
	if err := cfg.given(log, given); err != nil {
		return err
	}

	srcs := args
	if in, _ := flags.GetString("in"); in != "" {
		lines, err := readLines(in, cmd.InOrStdin())
		if err != nil {
			return err
		}
		srcs = append(lines, srcs...)
	}
	if len(srcs) == 0 {
		return errors.New("no expressions given")
	}
	log.WithField("count", len(srcs)).Debug("evaluating expressions")

	switch cfg.Precision {
	case "", "float64":
		return evaluate[float64](cmd.OutOrStdout(), log, &cfg, srcs)
	case "float32":
		return evaluate[float32](cmd.OutOrStdout(), log, &cfg, srcs)
	default:
		return errors.Errorf("unknown precision %q", cfg.Precision)
	}
}

// evaluate parses and evaluates each source with one Expression, printing a
// result or an error per line. The returned error collects all failures.
func evaluate[T constraints.Float](out io.Writer, log logrus.FieldLogger, cfg *config, srcs []string) error {
	e := exprparse.New[T](exprparse.WithLogger(log))
	if err := register(e, cfg); err != nil {
		return err
	}
	verb := cfg.Format + "\n"
	var errs *multierror.Error
	for i, src := range srcs {
		if err := e.Parse(src); err != nil {
			fmt.Fprintln(out, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "parsing expression %d %q", i+1, src))
			continue
		}
		if cfg.Echo {
			fmt.Fprintf(out, "%v : ", e)
		}
		r, err := e.Eval()
		if err != nil {
			fmt.Fprintln(out, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "evaluating expression %d %q", i+1, src))
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	return errs.ErrorOrNil()
}

// register adds the configured variables to e, along with builtins whose
// names the variables don't shadow.
func register[T constraints.Float](e *exprparse.Expression[T], cfg *config) error {
	vars := make(map[string]*exprparse.Variable[T], len(cfg.Vars))
	for k, v := range cfg.Vars {
		vars[k] = exprparse.NewVariable(T(v))
	}
	if cfg.Builtins {
		for k, v := range exprparse.Constants[T]() {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	if err := e.RegisterVariables(vars); err != nil {
		return errors.Wrap(err, "registering variables")
	}
	if !cfg.Builtins {
		return nil
	}
	fns := exprparse.Builtins[T]()
	for k := range fns {
		if _, ok := vars[k]; ok {
			delete(fns, k)
		}
	}
	return errors.Wrap(e.RegisterFunctions(fns), "registering builtins")
}

// readLines reads the non-blank lines of a file. The name - means stdin.
func readLines(name string, stdin io.Reader) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}
