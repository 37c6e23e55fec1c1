package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Lurgrid/Glushkovizer/internal/autfile"
	"github.com/Lurgrid/Glushkovizer/internal/automata"
	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// words collects repeated -accept flags.
type words []string

func (w *words) String() string { return strings.Join(*w, ",") }

func (w *words) Set(v string) error {
	*w = append(*w, v)
	return nil
}

type config struct {
	re       string
	aut      string
	load     string
	out      string
	json     string
	cbor     string
	accept   words
	report   bool
	inverse  bool
	ends     bool
	logLevel string
}

func (c *config) options() []automata.Option {
	if c.ends {
		return []automata.Option{automata.WithDoorPolicy(automata.DoorsFromEdgesAndEnds)}
	}
	return nil
}

func main() {
	var cfg config
	flag.StringVar(&cfg.re, "re", "", "regular expression, e.g. (a+b)*.a")
	flag.StringVar(&cfg.aut, "aut", "", "handmade automaton file")
	flag.StringVar(&cfg.load, "load", "", "automaton saved with -json or -cbor")
	flag.StringVar(&cfg.out, "o", "", "DOT output prefix: <prefix>.dot plus <prefix><i>.dot per orbit")
	flag.StringVar(&cfg.json, "json", "", "write the automaton as JSON to this file")
	flag.StringVar(&cfg.cbor, "cbor", "", "write the automaton as CBOR to this file")
	flag.Var(&cfg.accept, "accept", "word to test, may be repeated")
	flag.BoolVar(&cfg.report, "report", false, "print the properties of the automaton and its components")
	flag.BoolVar(&cfg.inverse, "inverse", false, "white strokes in DOT output")
	flag.BoolVar(&cfg.ends, "doors-ends", false, "count initial and final states as doors")
	flag.StringVar(&cfg.logLevel, "log-level", getEnv("GLUSHKOVIZER_LOG_LEVEL", "info"), "debug, info, warn or error")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.logLevel),
	}))
	slog.SetDefault(logger)
	logger.Debug("starting glushkovizer", "version", Version)

	if cfg.re == "" && cfg.aut == "" && cfg.load == "" {
		if err := repl(os.Stdout, &cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "glushkovizer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(&cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "glushkovizer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	switch {
	case cfg.re != "":
		r, err := regexp.Parse(cfg.re)
		if err != nil {
			return fmt.Errorf("parse %q: %w", cfg.re, err)
		}
		logger.Info("glushkov construction", "regexp", r.String())
		return process(os.Stdout, automata.FromRegexp(r, cfg.options()...), cfg, logger)
	case cfg.aut != "":
		a, err := autfile.ParseFile(cfg.aut, cfg.options()...)
		if err != nil {
			return err
		}
		logger.Info("loaded handmade automaton", "file", cfg.aut)
		return process(os.Stdout, a, cfg, logger)
	default:
		return loadAndProcess(cfg, logger)
	}
}

// loadAndProcess reads a saved automaton. Labels are tried as integers,
// which is what Glushkov automata use, then as strings.
func loadAndProcess(cfg *config, logger *slog.Logger) error {
	b, err := os.ReadFile(cfg.load)
	if err != nil {
		return err
	}
	logger.Info("loading automaton", "file", cfg.load)
	if a, err := decode[int](cfg.load, b, cfg.options()); err == nil {
		return process(os.Stdout, a, cfg, logger)
	} else if errors.Is(err, automata.ErrInvalidSchema) {
		return err
	}
	a, err := decode[string](cfg.load, b, cfg.options())
	if err != nil {
		return err
	}
	return process(os.Stdout, a, cfg, logger)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
