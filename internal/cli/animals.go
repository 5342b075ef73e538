package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
)

var inputValidate = validator.New()

var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "Browse and manage animals",
}

var (
	animalsEspecie string
	animalsEstado  string
	animalsTamanio string
	animalsSearch  string
	animalsAll     bool
)

var animalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available animals",
	Long: `List animals in the public catalog.

By default only adoptable animals are shown. With --all (admin only)
every animal of your organization is listed, including adopted ones.`,
	RunE: runAnimalsList,
}

var animalsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one animal",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnimalsGet,
}

var animalsCreateCmd = &cobra.Command{
	Use:   "create -f <file.json>",
	Short: "Publish a new animal",
	RunE:  runAnimalsCreate,
}

var animalsUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file.json>",
	Short: "Update an animal",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnimalsUpdate,
}

var animalsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <estado>",
	Short: "Change an animal's adoption state",
	Long: `Change an animal's adoption state.

Valid states: Disponible, "En proceso", Adoptado, "En tránsito".`,
	Args: cobra.ExactArgs(2),
	RunE: runAnimalsSetStatus,
}

var animalsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an animal",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnimalsDelete,
}

var animalsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show animal statistics for your organization",
	RunE:  runAnimalsStats,
}

var animalInputFile string

func init() {
	animalsListCmd.Flags().StringVar(&animalsEspecie, "especie", "", "filter by species (Perro, Gato)")
	animalsListCmd.Flags().StringVar(&animalsEstado, "estado", "", "filter by state")
	animalsListCmd.Flags().StringVar(&animalsTamanio, "tamanio", "", "filter by size")
	animalsListCmd.Flags().StringVar(&animalsSearch, "search", "", "free-text search on name and story")
	animalsListCmd.Flags().BoolVar(&animalsAll, "all", false, "include non-adoptable animals (admin)")

	animalsCreateCmd.Flags().StringVarP(&animalInputFile, "file", "f", "", "JSON file with the animal definition")
	_ = animalsCreateCmd.MarkFlagRequired("file")
	animalsUpdateCmd.Flags().StringVarP(&animalInputFile, "file", "f", "", "JSON file with the animal definition")
	_ = animalsUpdateCmd.MarkFlagRequired("file")

	animalsCmd.AddCommand(animalsListCmd, animalsGetCmd, animalsCreateCmd,
		animalsUpdateCmd, animalsSetStatusCmd, animalsDeleteCmd, animalsStatsCmd)
	rootCmd.AddCommand(animalsCmd)
}

func runAnimalsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var animals []*adopcion.Animal
	var err error
	if animalsAll {
		if err := requireAuth(cmd); err != nil {
			return err
		}
		animals, err = client.Animals.List(ctx, adopcion.AnimalFilters{
			Especie:  adopcion.Especie(animalsEspecie),
			Estado:   adopcion.EstadoAnimal(animalsEstado),
			Tamanio:  adopcion.Tamanio(animalsTamanio),
			Busqueda: animalsSearch,
		})
	} else if animalsEspecie != "" || animalsEstado != "" || animalsTamanio != "" || animalsSearch != "" {
		animals, err = client.Animals.List(ctx, adopcion.AnimalFilters{
			Especie:  adopcion.Especie(animalsEspecie),
			Estado:   adopcion.EstadoAnimal(animalsEstado),
			Tamanio:  adopcion.Tamanio(animalsTamanio),
			Busqueda: animalsSearch,
		})
	} else {
		animals, err = client.Animals.ListAvailable(ctx)
	}
	if err != nil {
		return apiError("could not list animals", err)
	}

	if jsonOut {
		return printJSON(animals)
	}
	if len(animals) == 0 {
		printer.Info("No animals found")
		return nil
	}
	t := output.NewTable([]string{"ID", "Nombre", "Especie", "Tamaño", "Sexo", "Estado", "Publicado por"})
	for _, a := range animals {
		t.AddRow([]string{
			strconv.FormatInt(a.ID, 10),
			a.Nombre,
			string(a.Especie),
			string(a.Tamanio),
			string(a.Sexo),
			string(a.Estado),
			output.Truncate(a.PublicadoPor, 30),
		})
	}
	t.Render()
	return nil
}

func runAnimalsGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	animal, err := client.Animals.Get(cmd.Context(), id)
	if err != nil {
		return apiError("could not fetch animal", err)
	}
	if jsonOut {
		return printJSON(animal)
	}
	printAnimal(animal)
	return nil
}

func printAnimal(a *adopcion.Animal) {
	t := output.NewTable(nil)
	t.AddRow([]string{"ID", strconv.FormatInt(a.ID, 10)})
	t.AddRow([]string{"Nombre", a.Nombre})
	t.AddRow([]string{"Especie", string(a.Especie)})
	t.AddRow([]string{"Tamaño", string(a.Tamanio)})
	t.AddRow([]string{"Edad", a.EdadAproximada})
	t.AddRow([]string{"Sexo", string(a.Sexo)})
	t.AddRow([]string{"Estado", string(a.Estado)})
	t.AddRow([]string{"Castrado", yesNo(a.EstadoCastracion)})
	t.AddRow([]string{"Desparasitado", yesNo(a.EstadoDesparasitacion)})
	if a.EstadoVacunacion != "" {
		t.AddRow([]string{"Vacunación", a.EstadoVacunacion})
	}
	if a.NecesidadesEspeciales != "" {
		t.AddRow([]string{"Necesidades", a.NecesidadesEspeciales})
	}
	t.AddRow([]string{"Publicado por", a.PublicadoPor})
	t.AddRow([]string{"Contacto", a.ContactoRescatista})
	t.Render()
	printer.Plain("")
	printer.Plain("%s", a.DescripcionHistoria)
}

func runAnimalsCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	input, err := readAnimalInput(animalInputFile)
	if err != nil {
		return err
	}
	animal, err := client.Animals.Create(cmd.Context(), *input)
	if err != nil {
		return apiError("could not create animal", err)
	}
	if jsonOut {
		return printJSON(animal)
	}
	printer.Success("Created %s (id %d)", animal.Nombre, animal.ID)
	return nil
}

func runAnimalsUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	input, err := readAnimalInput(animalInputFile)
	if err != nil {
		return err
	}
	animal, err := client.Animals.Update(cmd.Context(), id, *input)
	if err != nil {
		return apiError("could not update animal", err)
	}
	if jsonOut {
		return printJSON(animal)
	}
	printer.Success("Updated %s (id %d)", animal.Nombre, animal.ID)
	return nil
}

func runAnimalsSetStatus(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	animal, err := client.Animals.UpdateStatus(cmd.Context(), id, adopcion.EstadoAnimal(args[1]))
	if err != nil {
		return apiError("could not update status", err)
	}
	if jsonOut {
		return printJSON(animal)
	}
	printer.Success("%s is now %s", animal.Nombre, animal.Estado)
	return nil
}

func runAnimalsDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := client.Animals.Delete(cmd.Context(), id); err != nil {
		return apiError("could not delete animal", err)
	}
	printer.Success("Deleted animal %d", id)
	return nil
}

func runAnimalsStats(cmd *cobra.Command, args []string) error {
	if err := requireAuth(cmd); err != nil {
		return err
	}
	stats, err := client.Animals.Stats(cmd.Context())
	if err != nil {
		return apiError("could not fetch stats", err)
	}
	if jsonOut {
		return printJSON(stats)
	}
	printAnimalStats(stats)
	return nil
}

func printAnimalStats(stats *adopcion.AnimalStats) {
	t := output.NewTable(nil)
	t.AddRow([]string{"Total", strconv.Itoa(stats.Total)})
	t.AddRow([]string{"Disponibles", strconv.Itoa(stats.Disponibles)})
	t.AddRow([]string{"En proceso", strconv.Itoa(stats.EnProceso)})
	t.AddRow([]string{"Adoptados", strconv.Itoa(stats.Adoptados)})
	t.AddRow([]string{"En tránsito", strconv.Itoa(stats.EnTransito)})
	t.Render()
}

func readAnimalInput(path string) (*adopcion.AnimalInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &output.CLIError{
			Summary:  "could not read input file",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}
	var input adopcion.AnimalInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &output.CLIError{
			Summary:  "invalid JSON in input file",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}
	if err := inputValidate.Struct(&input); err != nil {
		return nil, &output.CLIError{
			Summary:    "invalid animal definition",
			Detail:     validationDetail(err),
			Suggestion: "Fix the listed fields in " + path,
			ExitCode:   output.ExitUsageError,
		}
	}
	return &input, nil
}

// validationDetail flattens validator errors into a readable line.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := ""
	for i, fe := range verrs {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s fails %q", fe.Field(), fe.Tag())
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid id %q", s),
			ExitCode: output.ExitUsageError,
		}
	}
	return id, nil
}

// apiError wraps a client error with CLI context and a matching exit
// code.
func apiError(summary string, err error) error {
	ce := &output.CLIError{
		Summary:  summary,
		Detail:   err.Error(),
		ExitCode: output.ExitAPIError,
	}
	if e, ok := adopcion.AsError(err); ok {
		switch e.Kind {
		case adopcion.KindAuthRejected:
			ce.Suggestion = "Run 'adopctl login <email>' and try again"
			ce.ExitCode = output.ExitAuthError
		case adopcion.KindForbidden:
			ce.Suggestion = "Your account does not have permission for this action"
		case adopcion.KindNotFound:
			ce.Summary = "not found"
		case adopcion.KindNetwork:
			ce.Suggestion = "Check your internet connection"
		}
	}
	return ce
}
