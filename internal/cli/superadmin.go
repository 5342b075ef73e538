package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var superCmd = &cobra.Command{
	Use:     "super",
	Aliases: []string{"superadmin"},
	Short:   "Platform administration (super admin only)",
}

var superOrgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations on the platform",
}

var superOrgsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all organizations",
	RunE:  runSuperOrgsList,
}

var superOrgsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one organization with its administrators",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuperOrgsGet,
}

var superCreateInput adopcion.CreateOrganizationInput

var superOrgsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Onboard a new organization",
	Long: `Create a new organization together with its first administrator
account. The generated credentials are printed exactly once; they cannot
be retrieved later.`,
	RunE: runSuperOrgsCreate,
}

var superOrgsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuperOrgsUpdate,
}

var superOrgsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuperOrgsDelete,
}

var superContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Review shelter onboarding requests",
}

var superContactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List onboarding requests",
	RunE:  runSuperContactsList,
}

var superContactsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <estado>",
	Short: "Change the state of an onboarding request",
	Long: `Change the state of an onboarding request.

Valid states: Pendiente, Contactado, Aprobado, Rechazado.`,
	Args: cobra.ExactArgs(2),
	RunE: runSuperContactsSetStatus,
}

func init() {
	f := superOrgsCreateCmd.Flags()
	f.StringVar(&superCreateInput.Nombre, "nombre", "", "organization name (required)")
	f.StringVar(&superCreateInput.Email, "email", "", "organization email")
	f.StringVar(&superCreateInput.Telefono, "telefono", "", "organization phone")
	f.StringVar(&superCreateInput.Descripcion, "descripcion", "", "public description")
	f.StringVar(&superCreateInput.AdminNombre, "admin-nombre", "", "first admin's name (required)")
	f.StringVar(&superCreateInput.AdminEmail, "admin-email", "", "first admin's email (required)")
	_ = superOrgsCreateCmd.MarkFlagRequired("nombre")
	_ = superOrgsCreateCmd.MarkFlagRequired("admin-nombre")
	_ = superOrgsCreateCmd.MarkFlagRequired("admin-email")

	u := superOrgsUpdateCmd.Flags()
	u.StringVar(&orgInput.Nombre, "nombre", "", "display name")
	u.StringVar(&orgInput.Email, "email", "", "contact email")
	u.StringVar(&orgInput.Telefono, "telefono", "", "contact phone")
	u.StringVar(&orgInput.Descripcion, "descripcion", "", "public description")

	superOrgsCmd.AddCommand(superOrgsListCmd, superOrgsGetCmd, superOrgsCreateCmd,
		superOrgsUpdateCmd, superOrgsDeleteCmd)
	superContactsCmd.AddCommand(superContactsListCmd, superContactsSetStatusCmd)
	superCmd.AddCommand(superOrgsCmd, superContactsCmd)
	rootCmd.AddCommand(superCmd)
}

func runSuperOrgsList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	orgs, err := client.SuperAdmin.ListOrganizations(cmd.Context())
	if err != nil {
		return apiError("could not list organizations", err)
	}
	if jsonOut {
		return printJSON(orgs)
	}
	if len(orgs) == 0 {
		printer.Info("No organizations")
		return nil
	}
	t := output.NewTable([]string{"ID", "Nombre", "Slug", "Email", "Activa"})
	for _, o := range orgs {
		t.AddRow([]string{
			strconv.FormatInt(o.ID, 10),
			o.Nombre,
			o.Slug,
			o.Email,
			yesNo(o.Activa),
		})
	}
	t.Render()
	return nil
}

func runSuperOrgsGet(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	org, err := client.SuperAdmin.GetOrganization(cmd.Context(), id)
	if err != nil {
		return apiError("could not fetch organization", err)
	}
	if jsonOut {
		return printJSON(org)
	}
	printOrganization(org)
	if len(org.Administradores) > 0 {
		printer.Plain("")
		t := output.NewTable([]string{"Admin", "Email", "Rol"})
		for _, a := range org.Administradores {
			t.AddRow([]string{a.Nombre, a.Email, string(a.Rol)})
		}
		t.Render()
	}
	return nil
}

func runSuperOrgsCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	created, err := client.SuperAdmin.CreateOrganization(cmd.Context(), superCreateInput)
	if err != nil {
		return apiError("could not create organization", err)
	}
	if jsonOut {
		return printJSON(created)
	}
	printer.Success("Created %s (id %d)", created.Organizacion.Nombre, created.Organizacion.ID)
	printer.Warn("Save these credentials now; they are shown only once.")
	t := output.NewTable(nil)
	t.AddRow([]string{"Usuario", created.Credenciales.Username})
	t.AddRow([]string{"Contraseña", created.Credenciales.Password})
	t.Render()
	return nil
}

func runSuperOrgsUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().NFlag() == 0 {
		return &output.CLIError{
			Summary:    "nothing to update",
			Suggestion: "Pass at least one field flag, e.g. --email",
			ExitCode:   output.ExitUsageError,
		}
	}
	org, err := client.SuperAdmin.UpdateOrganization(cmd.Context(), id, orgInput)
	if err != nil {
		return apiError("could not update organization", err)
	}
	if jsonOut {
		return printJSON(org)
	}
	printer.Success("Updated %s", org.Nombre)
	return nil
}

func runSuperOrgsDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := client.SuperAdmin.DeleteOrganization(cmd.Context(), id); err != nil {
		return apiError("could not delete organization", err)
	}
	printer.Success("Deleted organization %d", id)
	return nil
}

func runSuperContactsList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	contacts, err := client.SuperAdmin.ListContactRequests(cmd.Context())
	if err != nil {
		return apiError("could not list contact requests", err)
	}
	if jsonOut {
		return printJSON(contacts)
	}
	if len(contacts) == 0 {
		printer.Info("No onboarding requests")
		return nil
	}
	t := output.NewTable([]string{"ID", "Refugio", "Contacto", "Email", "Estado", "Fecha"})
	for _, c := range contacts {
		t.AddRow([]string{
			strconv.FormatInt(c.ID, 10),
			output.Truncate(c.NombreRefugio, 25),
			output.Truncate(c.NombreContacto, 25),
			c.Email,
			string(c.Estado),
			c.FechaSolicitud.Format("2006-01-02"),
		})
	}
	t.Render()
	return nil
}

func runSuperContactsSetStatus(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := client.SuperAdmin.UpdateContactRequest(cmd.Context(), id, adopcion.EstadoContacto(args[1]))
	if err != nil {
		return apiError("could not update contact request", err)
	}
	if jsonOut {
		return printJSON(c)
	}
	printer.Success("Contact request %d is now %s", c.ID, c.Estado)
	return nil
}
