package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your organization's dashboard",
	Long: `Show the admin dashboard: animal and request statistics plus the
most recent adoption requests, fetched concurrently.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}

	var (
		animalStats  *adopcion.AnimalStats
		requestStats *adopcion.RequestStats
		recent       []*adopcion.AdoptionRequest
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		animalStats, err = client.Animals.Stats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		requestStats, err = client.Requests.Stats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = client.Requests.Recent(ctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		return apiError("could not load the dashboard", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"animales":    animalStats,
			"solicitudes": requestStats,
			"recientes":   recent,
		})
	}

	printer.Info("Animales")
	printAnimalStats(animalStats)
	printer.Plain("")
	printer.Info("Solicitudes")
	printRequestStats(requestStats)
	printer.Plain("")
	printer.Info("Solicitudes recientes")
	printRequestList(recent)
	return nil
}
