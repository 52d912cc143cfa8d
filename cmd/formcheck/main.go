// Command formcheck validates a URL-encoded sign-up submission and prints a
// report of field errors and flags.
//
//	formcheck 'username=gopher&password=secret123&confirm=secret123&terms=on'
//	echo 'username=%20' | FORMCHECK_LANG=de formcheck -output json
//
// The exit status is 0 for a valid submission, 1 for an invalid one and 2 for
// usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

var (
	errInvalidOutput = errors.New("invalid output format")
	errNoLocaleFiles = errors.New("no locale files found")
)

// Config is read from the environment, then from the -env file or ".env".
// Flags set on the command line win.
type Config struct {
	Lang       string `env:"FORMCHECK_LANG" envDefault:"en"`
	LocalesDir string `env:"FORMCHECK_LOCALES_DIR"`
	LogLevel   string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
	Output     string `env:"FORMCHECK_OUTPUT" envDefault:"yaml"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var lang, output, localesDir, envFile string
	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&lang, "lang", "", "message language or Accept-Language value (default $FORMCHECK_LANG)")
	fs.StringVar(&output, "output", "", "report format: yaml or json (default $FORMCHECK_OUTPUT)")
	fs.StringVar(&localesDir, "locales", "", "directory with extra YAML/JSON locale files (default $FORMCHECK_LOCALES_DIR)")
	fs.StringVar(&envFile, "env", "", "read configuration from this .env file first")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: formcheck [flags] [submission]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			fmt.Fprintf(stderr, "formcheck: %v\n", err)
			return exitUsage
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "lang":
			cfg.Lang = lang
		case "output":
			cfg.Output = output
		case "locales":
			cfg.LocalesDir = localesDir
		}
	})

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}

	values, err := readSubmission(fs.Args(), stdin)
	if err != nil {
		log.ErrorContext(ctx, "failed to read submission", logger.Error(err))
		return exitUsage
	}

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitUsage
	}

	f, err := form.New(
		form.WithName("signup"),
		form.WithTranslator(tr),
		form.WithLogger(log),
		form.WithFields(signupFields()...),
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to build form", logger.Error(err))
		return exitUsage
	}

	ctx = i18n.SetLocale(ctx, cfg.Lang)
	f.Process(values)
	valid := f.Validate(ctx)

	if err := writeReport(stdout, cfg.Output, newReport(f, valid, f.Language(ctx))); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitUsage
	}

	if !valid {
		return exitInvalid
	}
	return exitValid
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("formcheck")),
		logger.WithContextExtractors(requestedLocale),
	), nil
}

// requestedLocale logs the locale set on the context before it is matched
// against the supported languages.
func requestedLocale(ctx context.Context) (slog.Attr, bool) {
	locale, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Locale(locale), true
}

// readSubmission parses the first argument, or stdin when there is none.
func readSubmission(args []string, stdin io.Reader) (url.Values, error) {
	var raw string
	switch {
	case len(args) > 1:
		return nil, fmt.Errorf("expected one submission, got %d arguments", len(args))
	case len(args) == 1:
		raw = args[0]
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		raw = string(b)
	}
	return url.ParseQuery(strings.TrimSpace(raw))
}

// newTranslator loads the built-in catalogs and layers the files of
// cfg.LocalesDir on top.
func newTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	tr, err := form.DefaultTranslator(ctx,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, err
	}
	if cfg.LocalesDir == "" {
		return tr, nil
	}

	merged := 0
	for _, parser := range []i18n.Parser{i18n.NewYAMLParser(), i18n.NewJSONParser()} {
		err := tr.Merge(ctx, i18n.NewDirectoryAdapter(parser, cfg.LocalesDir))
		switch {
		case errors.Is(err, i18n.ErrNoTranslationFiles):
			continue
		case err != nil:
			return nil, fmt.Errorf("%s: %w", cfg.LocalesDir, err)
		}
		merged++
	}
	if merged == 0 {
		return nil, fmt.Errorf("%w in %s", errNoLocaleFiles, cfg.LocalesDir)
	}

	log.DebugContext(ctx, "custom locales merged",
		slog.String("dir", cfg.LocalesDir),
		slog.Any("languages", tr.SupportedLanguages()),
	)
	return tr, nil
}
