package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth.Logout()
		printer.Success("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
