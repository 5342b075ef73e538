package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(cmd); err != nil {
			return err
		}
		admin := auth.Profile()
		if jsonOut {
			return printJSON(admin)
		}
		t := output.NewTable(nil)
		t.AddRow([]string{"Nombre", admin.Nombre})
		t.AddRow([]string{"Email", admin.Email})
		t.AddRow([]string{"Rol", string(admin.Rol)})
		if admin.OrganizacionID != 0 {
			t.AddRow([]string{"Organización", strconv.FormatInt(admin.OrganizacionID, 10)})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
