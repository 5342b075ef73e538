// Package cli contains all adopctl commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/config"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
	"github.com/facundocornejo/adopcionResposanble/session"
)

var (
	cfgFile   string
	apiURL    string
	verbose   bool
	jsonOut   bool
	colorFlag string
	version   = "dev"

	cfg     *config.Config
	logger  *slog.Logger
	printer *output.Printer
	client  *adopcion.Client
	store   *session.Store
	auth    *session.Controller
	guard   *session.Guard
)

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "adopctl",
	Short: "Adopción Responsable command-line client",
	Long: `adopctl is the command-line client for the Adopción Responsable
pet-adoption marketplace.

Browse the public catalog, submit an adoption request through the guided
form, and manage your organization's animals and requests.

Example usage:
  adopctl animals list --especie Perro     # Browse available dogs
  adopctl adopt 42                          # Start the adoption form for animal 42
  adopctl login admin@refugio.org           # Log in as an organization admin
  adopctl requests list --estado Nueva      # Review new adoption requests`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Run executes the root command and returns the process exit code.
func Run() int {
	err := rootCmd.Execute()
	if err == nil {
		return output.ExitSuccess
	}
	var ce *output.CLIError
	if !errors.As(err, &ce) {
		ce = &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitGeneral,
		}
	}
	if printer == nil {
		printer = output.NewPrinter(false)
	}
	printer.FormatError(ce)
	return ce.ExitCode
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .adopctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
}

// initApp loads configuration and wires the client, session store and
// auth controller together.
func initApp() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return &output.CLIError{
			Summary:  "could not load configuration",
			Detail:   err.Error(),
			ExitCode: output.ExitConfig,
		}
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	logLevel := slog.LevelInfo
	if verbose || cfg.Logging.Level == "debug" {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}
	printer = output.NewPrinter(output.ResolveColors(mode, cfg.Output.Colors))

	store = session.NewStore(cfg.Session.File)
	client = adopcion.New(
		adopcion.WithBaseURL(cfg.API.BaseURL),
		adopcion.WithTimeout(cfg.API.Timeout),
		adopcion.WithTokenSource(store.Token),
		adopcion.WithNotifier(printer),
		adopcion.WithAuthRejectedHandler(func() {
			// The controller is the sole writer of the store; the
			// client only signals.
			if auth != nil {
				auth.HandleAuthRejected()
			}
		}),
	)
	auth = session.NewController(store, client.Auth)
	guard = &session.Guard{}
	auth.Subscribe(func(s session.State) {
		logger.Debug("auth state changed", "state", s.String())
	})

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout,
		"session_file", cfg.Session.File,
	)
	return nil
}

// requireAuth bootstraps the session and gates an admin command the way
// the web client's route guard gates admin views.
func requireAuth(cmd *cobra.Command) error {
	state := auth.Bootstrap(cmd.Context())
	switch guard.Check(state, cmd.CommandPath()) {
	case session.DecisionAllow:
		return nil
	default:
		return &output.CLIError{
			Summary:    "not logged in",
			Detail:     fmt.Sprintf("%q requires an organization admin session", guard.ConsumeIntended()),
			Suggestion: "Run 'adopctl login <email>' and try again",
			ExitCode:   output.ExitAuthError,
		}
	}
}

// printJSON renders v as indented JSON on stdout for --json mode.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
