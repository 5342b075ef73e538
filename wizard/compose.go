package wizard

import (
	"fmt"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// Composer synthesizes the free-text cohabitation summary the backend
// expects from the structured household fields. The exact wording is a
// presentation choice, so it is injectable; ComposeCohabitation is the
// default.
type Composer func(d *Draft) string

// ComposeCohabitation builds the household summary: the number of
// cohabitants, the children's ages when present and the rental situation.
func ComposeCohabitation(d *Draft) string {
	n := 0
	if d.CantidadConvivientes != nil {
		n = *d.CantidadConvivientes
	}
	desc := fmt.Sprintf("%d persona(s)", n)
	if d.HayNinos != nil && *d.HayNinos && d.EdadesNinos != "" {
		desc += ", con niños de " + d.EdadesNinos
	}
	if d.ViviendaPropia != nil && !*d.ViviendaPropia {
		if d.PermiteMascotas != nil && *d.PermiteMascotas {
			desc += " (alquila, permite mascotas)"
		} else {
			desc += " (alquila)"
		}
	}
	return desc
}

// composeInput maps the full draft plus the target animal into the
// backend's request shape.
func composeInput(d *Draft, animalID int64, compose Composer) adopcion.CreateAdoptionRequestInput {
	input := adopcion.CreateAdoptionRequestInput{
		AnimalID:           animalID,
		NombreCompleto:     d.NombreCompleto,
		Edad:               d.Edad,
		Email:              d.Email,
		TelefonoWhatsapp:   d.TelefonoWhatsapp,
		CiudadZona:         d.CiudadZona,
		TipoVivienda:       d.TipoVivienda,
		ViveSoloAcompanado: compose(d),
		TodosDeAcuerdo:     d.TodosDeAcuerdo,
		ExperienciaPrevia:  d.ExperienciaPrevia,
		Motivacion:         d.Motivacion,
		// Anyone completing the form is assumed able to cover expenses
		// and reachable for follow-up.
		PuedeCubrirGastos:    true,
		AceptaContacto:       true,
		CompromisoCastracion: d.CompromisoCastracion,
	}

	if d.TieneOtrosAnimales != nil && *d.TieneOtrosAnimales {
		input.TieneOtrosAnimales = true
		castrados := "No"
		if d.OtrosAnimalesCastrados != nil && *d.OtrosAnimalesCastrados {
			castrados = "Sí"
		}
		input.OtrosAnimalesCastrados = &castrados
	}

	return input
}
