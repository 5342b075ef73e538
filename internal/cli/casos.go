package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var casosCmd = &cobra.Command{
	Use:     "casos",
	Aliases: []string{"casos-exito"},
	Short:   "Success stories of adopted animals",
}

var casosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published success stories",
	Long: `List every published success story, grouped per organization.

Stories are public; no login is needed.`,
	RunE: runCasosList,
}

var (
	casoAnimalID int64
	casoInput    adopcion.CasoExitoInput
	casoFotos    []string
)

var casosCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a success story",
	Long: `Publish a success story for an adopted animal of your organization.

Photo URLs come from 'adopctl upload'; you can attach up to three.`,
	RunE: runCasosCreate,
}

func init() {
	f := casosCreateCmd.Flags()
	f.Int64Var(&casoAnimalID, "animal", 0, "id of the adopted animal (required)")
	f.StringVar(&casoInput.Titulo, "titulo", "", "story title (required)")
	f.StringVar(&casoInput.Historia, "historia", "", "the adoption story (required)")
	f.StringVar(&casoInput.FechaAdopcion, "fecha", "", "adoption date, YYYY-MM-DD (required)")
	f.StringArrayVar(&casoFotos, "foto", nil, "photo URL from 'adopctl upload' (repeat up to 3 times)")
	_ = casosCreateCmd.MarkFlagRequired("animal")
	_ = casosCreateCmd.MarkFlagRequired("titulo")
	_ = casosCreateCmd.MarkFlagRequired("historia")
	_ = casosCreateCmd.MarkFlagRequired("fecha")

	casosCmd.AddCommand(casosListCmd, casosCreateCmd)
	rootCmd.AddCommand(casosCmd)
}

func runCasosList(cmd *cobra.Command, args []string) error {
	groups, err := client.CasosExito.List(cmd.Context())
	if err != nil {
		return apiError("could not list success stories", err)
	}
	if jsonOut {
		return printJSON(groups)
	}
	if len(groups) == 0 {
		printer.Info("No success stories published yet")
		return nil
	}
	for i, g := range groups {
		if i > 0 {
			printer.Plain("")
		}
		printer.Plain("%s", g.Nombre)
		t := output.NewTable([]string{"ID", "Animal", "Título", "Fecha"})
		for _, c := range g.CasosExito {
			nombre := ""
			if c.Animal != nil {
				nombre = c.Animal.Nombre
			}
			t.AddRow([]string{
				strconv.FormatInt(c.ID, 10),
				nombre,
				output.Truncate(c.Titulo, 40),
				c.FechaAdopcion,
			})
		}
		t.Render()
	}
	return nil
}

func runCasosCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	if len(casoFotos) > 3 {
		return &output.CLIError{
			Summary:  "too many photos",
			Detail:   "a success story carries at most 3 photos",
			ExitCode: output.ExitUsageError,
		}
	}
	casoInput.AnimalID = casoAnimalID
	for i, foto := range casoFotos {
		switch i {
		case 0:
			casoInput.FotoActual1 = foto
		case 1:
			casoInput.FotoActual2 = foto
		case 2:
			casoInput.FotoActual3 = foto
		}
	}
	if err := inputValidate.Struct(casoInput); err != nil {
		return &output.CLIError{
			Summary:  "invalid success story",
			Detail:   validationDetail(err),
			ExitCode: output.ExitUsageError,
		}
	}
	caso, err := client.CasosExito.Create(cmd.Context(), casoInput)
	if err != nil {
		return apiError("could not publish the story", err)
	}
	if jsonOut {
		return printJSON(caso)
	}
	printer.Success("Historia publicada: %s (id %d)", caso.Titulo, caso.ID)
	return nil
}
