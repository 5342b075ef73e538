package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "View and edit your organization's public profile",
}

var orgInput adopcion.OrganizationInput

var orgShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show an organization profile",
	Long: `Show an organization's public profile.

Without arguments, shows your own organization (requires login). With a
slug argument, shows that organization's public page data.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrgShow,
}

var orgUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your organization's profile",
	RunE:  runOrgUpdate,
}

func init() {
	f := orgUpdateCmd.Flags()
	f.StringVar(&orgInput.Nombre, "nombre", "", "display name")
	f.StringVar(&orgInput.Email, "email", "", "contact email")
	f.StringVar(&orgInput.Telefono, "telefono", "", "contact phone")
	f.StringVar(&orgInput.Whatsapp, "whatsapp", "", "WhatsApp number")
	f.StringVar(&orgInput.Descripcion, "descripcion", "", "public description")
	f.StringVar(&orgInput.Direccion, "direccion", "", "address")
	f.StringVar(&orgInput.Instagram, "instagram", "", "Instagram handle")
	f.StringVar(&orgInput.Facebook, "facebook", "", "Facebook page")
	f.StringVar(&orgInput.DonacionAlias, "donacion-alias", "", "donation alias")
	f.StringVar(&orgInput.DonacionCBU, "donacion-cbu", "", "donation CBU")
	f.StringVar(&orgInput.DonacionInfo, "donacion-info", "", "donation notes")

	orgCmd.AddCommand(orgShowCmd, orgUpdateCmd)
	rootCmd.AddCommand(orgCmd)
}

func runOrgShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var org *adopcion.Organization
	var err error
	if len(args) == 1 {
		org, err = client.Organization.BySlug(ctx, args[0])
	} else {
		if err := requireAuth(cmd); err != nil {
			return err
		}
		org, err = client.Organization.Mine(ctx)
	}
	if err != nil {
		return apiError("could not fetch organization", err)
	}
	if jsonOut {
		return printJSON(org)
	}
	printOrganization(org)
	return nil
}

func printOrganization(org *adopcion.Organization) {
	t := output.NewTable(nil)
	t.AddRow([]string{"ID", strconv.FormatInt(org.ID, 10)})
	t.AddRow([]string{"Nombre", org.Nombre})
	if org.Slug != "" {
		t.AddRow([]string{"Slug", org.Slug})
	}
	if org.Email != "" {
		t.AddRow([]string{"Email", org.Email})
	}
	if org.Telefono != "" {
		t.AddRow([]string{"Teléfono", org.Telefono})
	}
	if org.Whatsapp != "" {
		t.AddRow([]string{"WhatsApp", org.Whatsapp})
	}
	if org.Direccion != "" {
		t.AddRow([]string{"Dirección", org.Direccion})
	}
	if org.Instagram != "" {
		t.AddRow([]string{"Instagram", org.Instagram})
	}
	if org.Facebook != "" {
		t.AddRow([]string{"Facebook", org.Facebook})
	}
	if org.DonacionAlias != "" {
		t.AddRow([]string{"Alias donación", org.DonacionAlias})
	}
	if org.DonacionCBU != "" {
		t.AddRow([]string{"CBU donación", org.DonacionCBU})
	}
	t.AddRow([]string{"Activa", yesNo(org.Activa)})
	t.Render()
	if org.Descripcion != "" {
		printer.Plain("")
		printer.Plain("%s", org.Descripcion)
	}
}

func runOrgUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	if cmd.Flags().NFlag() == 0 {
		return &output.CLIError{
			Summary:    "nothing to update",
			Suggestion: "Pass at least one field flag, e.g. --whatsapp",
			ExitCode:   output.ExitUsageError,
		}
	}
	org, err := client.Organization.UpdateMine(cmd.Context(), orgInput)
	if err != nil {
		return apiError("could not update organization", err)
	}
	if jsonOut {
		return printJSON(org)
	}
	printer.Success("Updated %s", org.Nombre)
	return nil
}
