package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
	"github.com/facundocornejo/adopcionResposanble/wizard"
)

var adoptCmd = &cobra.Command{
	Use:   "adopt <animal-id>",
	Short: "Fill in an adoption request for an animal",
	Long: `Walk through the four-step adoption form for an animal and submit
the request.

The form asks about you, your housing situation, who you live with and
your motivation. Answers are validated step by step; you can go back to
a previous step at any prompt by entering '<'.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdopt,
}

func init() {
	rootCmd.AddCommand(adoptCmd)
}

// errStepBack is returned by prompts when the applicant asks to go back.
var errStepBack = errors.New("back")

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "<" {
		return "", errStepBack
	}
	return line, nil
}

func (p *prompter) askInt(label string) (int, error) {
	for {
		s, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Ingresá un número.")
			continue
		}
		return n, nil
	}
}

func (p *prompter) askBool(label string) (bool, error) {
	for {
		s, err := p.ask(label + " (s/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "s", "si", "sí", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Respondé s o n.")
		}
	}
}

func (p *prompter) askChoice(label string, choices []string) (string, error) {
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, c)
	}
	for {
		s, err := p.ask(label)
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		fmt.Fprintf(p.out, "Elegí un número entre 1 y %d.\n", len(choices))
	}
}

func runAdopt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	animal, err := client.Animals.Get(ctx, id)
	if err != nil {
		return apiError("could not fetch animal", err)
	}

	w, err := wizard.New(animal, client.Requests)
	if err != nil {
		return &output.CLIError{
			Summary:    fmt.Sprintf("%s is not available for adoption", animal.Nombre),
			Detail:     fmt.Sprintf("current state: %s", animal.Estado),
			Suggestion: "Browse adoptable animals with 'adopctl animals list'",
			ExitCode:   output.ExitGeneral,
		}
	}

	printer.Info("Solicitud de adopción para %s (%s, %s)", animal.Nombre, animal.Especie, animal.Tamanio)
	printer.Plain("Respondé las preguntas de cada paso. Ingresá '<' para volver al paso anterior.")
	printer.Plain("")

	p := &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}

	for w.Phase() == wizard.PhaseFilling {
		step := w.Current()
		info := wizard.Steps[step-1]
		printer.Info("Paso %d de %d: %s", step, wizard.LastStep, info.Title)

		err := promptStep(p, step, w.Draft())
		if err == errStepBack {
			w.Previous()
			continue
		}
		if err != nil {
			return err
		}

		if step == wizard.LastStep {
			req, err := submitWithRetry(ctx, w, p)
			if err != nil {
				return err
			}
			if req == nil {
				// Validation failed; the answers stay put, re-prompt the step.
				continue
			}
			printer.Success("¡Solicitud enviada! El refugio se va a contactar con vos por WhatsApp o email.")
			if jsonOut {
				return printJSON(req)
			}
			return nil
		}

		if res := w.Next(); !res.Valid {
			printStepErrors(res)
		}
	}
	return nil
}

// submitWithRetry sends the finished form and, when the backend rejects
// it, offers to resend. Every answer stays in the draft across attempts.
// A nil request with a nil error means validation failed and the caller
// should re-prompt the final step.
func submitWithRetry(ctx context.Context, w *wizard.Controller, p *prompter) (*adopcion.AdoptionRequest, error) {
	for {
		req, res, err := w.Submit(ctx)
		if !res.Valid {
			printStepErrors(res)
			return nil, nil
		}
		if err == nil {
			return req, nil
		}
		retry, perr := p.askBool("No se pudo enviar la solicitud. ¿Reintentar?")
		if perr != nil || !retry {
			return nil, apiError("could not submit the request", err)
		}
	}
}

func printStepErrors(res wizard.StepResult) {
	for field, msg := range res.FieldErrors {
		printer.Warn("%s: %s", field, msg)
	}
	printer.Plain("")
}

func promptStep(p *prompter, step wizard.Step, d *wizard.Draft) error {
	switch step {
	case wizard.StepIdentity:
		return promptIdentity(p, d)
	case wizard.StepHousing:
		return promptHousing(p, d)
	case wizard.StepCohabitation:
		return promptCohabitation(p, d)
	case wizard.StepMotivation:
		return promptMotivation(p, d)
	}
	return nil
}

func promptIdentity(p *prompter, d *wizard.Draft) error {
	var err error
	if d.NombreCompleto, err = p.ask("Nombre completo"); err != nil {
		return err
	}
	if d.Edad, err = p.askInt("Edad"); err != nil {
		return err
	}
	if d.Email, err = p.ask("Email"); err != nil {
		return err
	}
	if d.TelefonoWhatsapp, err = p.ask("Teléfono (WhatsApp)"); err != nil {
		return err
	}
	if d.CiudadZona, err = p.ask("Ciudad y zona"); err != nil {
		return err
	}
	return nil
}

func promptHousing(p *prompter, d *wizard.Draft) error {
	vivienda, err := p.askChoice("Tipo de vivienda", []string{
		string(adopcion.ViviendaCasaConPatio),
		string(adopcion.ViviendaCasaSinPatio),
		string(adopcion.ViviendaDepartamento),
		string(adopcion.ViviendaOtro),
	})
	if err != nil {
		return err
	}
	d.TipoVivienda = adopcion.TipoVivienda(vivienda)

	propia, err := p.askBool("¿La vivienda es propia?")
	if err != nil {
		return err
	}
	d.ViviendaPropia = &propia
	if d.ShowsPermiteMascotas() {
		permite, err := p.askBool("¿El propietario permite mascotas?")
		if err != nil {
			return err
		}
		d.PermiteMascotas = &permite
	} else {
		d.PermiteMascotas = nil
	}

	if d.TodosDeAcuerdo, err = p.askBool("¿Todos en el hogar están de acuerdo con la adopción?"); err != nil {
		return err
	}
	convivientes, err := p.askInt("¿Cuántas personas viven en el hogar?")
	if err != nil {
		return err
	}
	d.CantidadConvivientes = &convivientes
	return nil
}

func promptCohabitation(p *prompter, d *wizard.Draft) error {
	hayNinos, err := p.askBool("¿Hay niños en el hogar?")
	if err != nil {
		return err
	}
	d.HayNinos = &hayNinos
	if d.ShowsEdadesNinos() {
		if d.EdadesNinos, err = p.ask("Edades de los niños"); err != nil {
			return err
		}
	} else {
		d.EdadesNinos = ""
	}

	tiene, err := p.askBool("¿Tenés otros animales?")
	if err != nil {
		return err
	}
	d.TieneOtrosAnimales = &tiene
	if d.ShowsOtrosAnimales() {
		if d.DescripcionOtrosAnimales, err = p.ask("Contanos sobre ellos"); err != nil {
			return err
		}
		castrados, err := p.askBool("¿Están castrados?")
		if err != nil {
			return err
		}
		d.OtrosAnimalesCastrados = &castrados
	} else {
		d.DescripcionOtrosAnimales = ""
		d.OtrosAnimalesCastrados = nil
	}
	return nil
}

func promptMotivation(p *prompter, d *wizard.Draft) error {
	var err error
	if d.ExperienciaPrevia, err = p.ask("¿Tuviste animales antes? Contanos tu experiencia"); err != nil {
		return err
	}
	if d.Motivacion, err = p.ask("¿Por qué querés adoptar?"); err != nil {
		return err
	}
	if d.CompromisoCastracion, err = p.askBool("¿Te comprometés a castrar al animal si no lo está?"); err != nil {
		return err
	}
	if d.CompromisoSeguimiento, err = p.askBool("¿Aceptás el seguimiento post-adopción?"); err != nil {
		return err
	}
	return nil
}
