package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/alex005489465/MeowManager/internal/client"
	"github.com/alex005489465/MeowManager/internal/config"
	"github.com/alex005489465/MeowManager/internal/logger"
	"github.com/alex005489465/MeowManager/internal/services"
	"github.com/alex005489465/MeowManager/internal/types"
	"github.com/alex005489465/MeowManager/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app holds the dependencies shared by the subcommands. It is populated by the root command's PersistentPreRunE.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *services.Services

	// flag overrides
	apiURL   string
	timeout  time.Duration
	logLevel string
	envFile  string
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "erpctl",
		Short:         "MeowManager ERP console",
		Long:          `Command line console for managing customers, products and stock records via the ERP backend API`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "ERP backend base URL (overrides API_BASE_URL)")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (overrides REQUEST_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "optional file of environment variables")

	cmd.AddCommand(
		newCustomersCmd(a),
		newProductsCmd(a),
		newStockCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		// a missing .env is fine - the environment may already be set
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", a.envFile, err)
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL = a.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RequestTimeout = a.timeout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
	a.logger.Debug("using ERP API", slog.String("url", cfg.APIBaseURL), slog.Duration("timeout", cfg.RequestTimeout))

	apiClient := client.NewClient(cfg.APIBaseURL, a.logger,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
	a.services = services.New(apiClient, a.logger)

	return nil
}

// reportError writes err for the user. API failures are shown with their user message and the full
// message (status, error code) is logged at debug level.
func (a *app) reportError(w io.Writer, err error) {
	msg := apperrors.FormatMessage(err)

	var te *apperrors.TransportError
	if apperrors.IsBusinessError(err) || errors.As(err, &te) {
		log := a.logger
		if log == nil {
			log = slog.Default()
		}
		log.Debug("command failed", slog.String("error", msg))
		msg = apperrors.UserMessage(err)
	}

	fmt.Fprintln(w, "Error:", msg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// no config is needed to print the version
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), version.Get())
		},
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// notFound is returned when a lookup has no result
func notFound(what string) error {
	return fmt.Errorf("%s not found", what)
}

// readPayload decodes a JSON request from --data, or --file (- reads stdin)
func readPayload(cmd *cobra.Command, data, file string, dest any) error {
	var r io.Reader
	switch {
	case data != "" && file != "":
		return errors.New("use either --data or --file, not both")
	case data != "":
		r = strings.NewReader(data)
	case file == "-":
		r = cmd.InOrStdin()
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening payload file: %w", err)
		}
		defer f.Close()
		r = f
	default:
		return errors.New("a JSON payload is required (--data or --file)")
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// addPageFlags adds --page and --size; unset values leave paging to the backend defaults
func addPageFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", -1, "zero based page number (default: server default)")
	cmd.Flags().IntVar(size, "size", 0, "page size (default: server default)")
}

func pageRequest(page, size int) types.PageRequest {
	return types.NewPageRequest(page, size)
}
