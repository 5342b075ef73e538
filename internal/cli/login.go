package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/facundocornejo/adopcionResposanble/internal/output"
	"github.com/facundocornejo/adopcionResposanble/session"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in as an organization admin",
	Long: `Log in with an organization admin account and store the session
token for subsequent commands.

The password is read from the terminal without echo. If no email is
given on the command line it is prompted for as well.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var email string
	if len(args) == 1 {
		email = args[0]
	} else {
		fmt.Fprint(os.Stderr, "Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return &output.CLIError{
				Summary:  "could not read email",
				Detail:   err.Error(),
				ExitCode: output.ExitGeneral,
			}
		}
		email = strings.TrimSpace(line)
	}

	password, err := readPassword()
	if err != nil {
		return &output.CLIError{
			Summary:  "could not read password",
			Detail:   err.Error(),
			ExitCode: output.ExitGeneral,
		}
	}

	admin, err := auth.Login(ctx, email, password)
	if err != nil {
		return loginError(err)
	}

	printer.Success("Logged in as %s (%s)", admin.Nombre, admin.Email)
	if target := guard.ConsumeIntended(); target != "" {
		printer.Info("You can now retry: %s", target)
	}
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	// Not a terminal, e.g. piped input in scripts.
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func loginError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return &output.CLIError{
			Summary:    "invalid credentials",
			Detail:     "the email or password is incorrect",
			Suggestion: "Check the email address and try again",
			ExitCode:   output.ExitAuthError,
		}
	case errors.Is(err, session.ErrRateLimited):
		return &output.CLIError{
			Summary:    "too many login attempts",
			Suggestion: "Wait a few minutes before trying again",
			ExitCode:   output.ExitAuthError,
		}
	case errors.Is(err, session.ErrConnectivity):
		return &output.CLIError{
			Summary:    "could not reach the server",
			Detail:     err.Error(),
			Suggestion: "Check your internet connection",
			ExitCode:   output.ExitAPIError,
		}
	default:
		return &output.CLIError{
			Summary:  "login failed",
			Detail:   err.Error(),
			ExitCode: output.ExitGeneral,
		}
	}
}
