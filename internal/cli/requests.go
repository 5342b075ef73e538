package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Review adoption requests for your organization",
}

var (
	requestsEstado   string
	requestsAnimalID int64
	requestsLimit    int
)

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List adoption requests",
	RunE:  runRequestsList,
}

var requestsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent adoption requests",
	RunE:  runRequestsRecent,
}

var requestsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one adoption request in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsGet,
}

var requestsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <estado>",
	Short: "Change the review state of a request",
	Long: `Change the review state of an adoption request.

Valid states: Nueva, Revisada, "En evaluación", Aprobada, Rechazada.`,
	Args: cobra.ExactArgs(2),
	RunE: runRequestsSetStatus,
}

var requestsViewedCmd = &cobra.Command{
	Use:   "viewed <id>",
	Short: "Mark a request as viewed",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsViewed,
}

var requestsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an adoption request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsDelete,
}

var requestsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request statistics for your organization",
	RunE:  runRequestsStats,
}

func init() {
	requestsListCmd.Flags().StringVar(&requestsEstado, "estado", "", "filter by review state")
	requestsListCmd.Flags().Int64Var(&requestsAnimalID, "animal", 0, "filter by animal id")
	requestsRecentCmd.Flags().IntVar(&requestsLimit, "limit", 5, "how many requests to show")

	requestsCmd.AddCommand(requestsListCmd, requestsRecentCmd, requestsGetCmd,
		requestsSetStatusCmd, requestsViewedCmd, requestsDeleteCmd, requestsStatsCmd)
	rootCmd.AddCommand(requestsCmd)
}

func runRequestsList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	requests, err := client.Requests.List(cmd.Context(), adopcion.RequestFilters{
		Estado:   adopcion.EstadoSolicitud(requestsEstado),
		AnimalID: requestsAnimalID,
	})
	if err != nil {
		return apiError("could not list requests", err)
	}
	if jsonOut {
		return printJSON(requests)
	}
	printRequestList(requests)
	return nil
}

func runRequestsRecent(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	requests, err := client.Requests.Recent(cmd.Context(), requestsLimit)
	if err != nil {
		return apiError("could not list requests", err)
	}
	if jsonOut {
		return printJSON(requests)
	}
	printRequestList(requests)
	return nil
}

func printRequestList(requests []*adopcion.AdoptionRequest) {
	if len(requests) == 0 {
		printer.Info("No adoption requests")
		return
	}
	t := output.NewTable([]string{"ID", "Animal", "Solicitante", "Ciudad", "Estado", "Vista", "Fecha"})
	for _, r := range requests {
		animal := strconv.FormatInt(r.AnimalID, 10)
		if r.Animal != nil {
			animal = r.Animal.Nombre
		}
		t.AddRow([]string{
			strconv.FormatInt(r.ID, 10),
			animal,
			output.Truncate(r.NombreCompleto, 25),
			output.Truncate(r.CiudadZona, 20),
			string(r.Estado),
			yesNo(r.Vista),
			r.CreatedAt.Format("2006-01-02"),
		})
	}
	t.Render()
}

func runRequestsGet(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	r, err := client.Requests.Get(cmd.Context(), id)
	if err != nil {
		return apiError("could not fetch request", err)
	}
	if jsonOut {
		return printJSON(r)
	}
	printRequest(r)
	return nil
}

func printRequest(r *adopcion.AdoptionRequest) {
	t := output.NewTable(nil)
	t.AddRow([]string{"ID", strconv.FormatInt(r.ID, 10)})
	if r.Animal != nil {
		t.AddRow([]string{"Animal", r.Animal.Nombre})
	} else {
		t.AddRow([]string{"Animal", strconv.FormatInt(r.AnimalID, 10)})
	}
	t.AddRow([]string{"Estado", string(r.Estado)})
	t.AddRow([]string{"Solicitante", r.NombreCompleto})
	t.AddRow([]string{"Edad", strconv.Itoa(r.Edad)})
	t.AddRow([]string{"Email", r.Email})
	t.AddRow([]string{"WhatsApp", r.TelefonoWhatsapp})
	t.AddRow([]string{"Ciudad", r.CiudadZona})
	t.AddRow([]string{"Vivienda", string(r.TipoVivienda)})
	t.AddRow([]string{"Convivencia", r.ViveSoloAcompanado})
	t.AddRow([]string{"Todos de acuerdo", yesNo(r.TodosDeAcuerdo)})
	t.AddRow([]string{"Otros animales", yesNo(r.TieneOtrosAnimales)})
	if r.OtrosAnimalesCastrados != nil {
		t.AddRow([]string{"Castrados", *r.OtrosAnimalesCastrados})
	}
	t.AddRow([]string{"Compromiso castración", yesNo(r.CompromisoCastracion)})
	t.Render()
	printer.Plain("")
	printer.Plain("Experiencia previa:")
	printer.Plain("  %s", r.ExperienciaPrevia)
	printer.Plain("Motivación:")
	printer.Plain("  %s", r.Motivacion)
}

func runRequestsSetStatus(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	r, err := client.Requests.UpdateStatus(cmd.Context(), id, adopcion.EstadoSolicitud(args[1]))
	if err != nil {
		return apiError("could not update status", err)
	}
	if jsonOut {
		return printJSON(r)
	}
	printer.Success("Request %d is now %s", r.ID, r.Estado)
	return nil
}

func runRequestsViewed(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if _, err := client.Requests.MarkViewed(cmd.Context(), id); err != nil {
		return apiError("could not mark as viewed", err)
	}
	printer.Success("Request %d marked as viewed", id)
	return nil
}

func runRequestsDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := client.Requests.Delete(cmd.Context(), id); err != nil {
		return apiError("could not delete request", err)
	}
	printer.Success("Deleted request %d", id)
	return nil
}

func runRequestsStats(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	stats, err := client.Requests.Stats(cmd.Context())
	if err != nil {
		return apiError("could not fetch stats", err)
	}
	if jsonOut {
		return printJSON(stats)
	}
	printRequestStats(stats)
	return nil
}

func printRequestStats(stats *adopcion.RequestStats) {
	t := output.NewTable(nil)
	t.AddRow([]string{"Total", strconv.Itoa(stats.Total)})
	t.AddRow([]string{"Nuevas", strconv.Itoa(stats.Nuevas)})
	t.AddRow([]string{"Pendientes", strconv.Itoa(stats.Pendientes)})
	t.Render()
}
