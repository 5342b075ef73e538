package wizard

import (
	"net/mail"
	"strings"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// StepResult is the outcome of validating one step: either valid, or a
// message per failing field.
type StepResult struct {
	Valid       bool
	FieldErrors map[string]string
}

func newResult() StepResult {
	return StepResult{Valid: true, FieldErrors: map[string]string{}}
}

func (r *StepResult) add(field, msg string) {
	r.Valid = false
	r.FieldErrors[field] = msg
}

// conditionalRule declares a field that is only required while its
// trigger holds. Adding a new conditional field is one entry here, not
// new branching in the validators.
type conditionalRule struct {
	step    Step
	field   string
	trigger func(*Draft) bool
	check   func(*Draft) string // returns "" when the field passes
}

var conditionalRules = []conditionalRule{
	{
		step:    StepCohabitation,
		field:   FieldEdadesNinos,
		trigger: func(d *Draft) bool { return d.HayNinos != nil && *d.HayNinos },
		check: func(d *Draft) string {
			if strings.TrimSpace(d.EdadesNinos) == "" {
				return "Indicá las edades de los niños"
			}
			return ""
		},
	},
	{
		step:    StepCohabitation,
		field:   FieldOtrosAnimalesCastrados,
		trigger: func(d *Draft) bool { return d.TieneOtrosAnimales != nil && *d.TieneOtrosAnimales },
		check: func(d *Draft) string {
			if d.OtrosAnimalesCastrados == nil {
				return "Indicá si tus animales están castrados"
			}
			return ""
		},
	},
}

// ValidateStep runs only the given step's rules against the draft.
// Conditional sub-fields are exempt unless their trigger holds.
func ValidateStep(step Step, d *Draft) StepResult {
	res := newResult()
	switch step {
	case StepIdentity:
		validateIdentity(d, &res)
	case StepHousing:
		validateHousing(d, &res)
	case StepCohabitation:
		validateCohabitation(d, &res)
	case StepMotivation:
		validateMotivation(d, &res)
	}

	for _, rule := range conditionalRules {
		if rule.step != step || !rule.trigger(d) {
			continue
		}
		if msg := rule.check(d); msg != "" {
			res.add(rule.field, msg)
		}
	}
	return res
}

func validateIdentity(d *Draft, res *StepResult) {
	name := strings.TrimSpace(d.NombreCompleto)
	switch {
	case name == "":
		res.add(FieldNombreCompleto, "El nombre es obligatorio")
	case len([]rune(name)) < 3:
		res.add(FieldNombreCompleto, "El nombre debe tener al menos 3 caracteres")
	case len([]rune(name)) > 100:
		res.add(FieldNombreCompleto, "El nombre es demasiado largo")
	}

	switch {
	case d.Edad == 0:
		res.add(FieldEdad, "La edad es obligatoria")
	case d.Edad < MinAdopterAge:
		res.add(FieldEdad, "Debés ser mayor de 18 años para adoptar")
	case d.Edad > 120:
		res.add(FieldEdad, "Ingresá una edad válida")
	}

	email := strings.TrimSpace(d.Email)
	if email == "" {
		res.add(FieldEmail, "El email es obligatorio")
	} else if _, err := mail.ParseAddress(email); err != nil {
		res.add(FieldEmail, "Ingresá un email válido")
	}

	phone := strings.TrimSpace(d.TelefonoWhatsapp)
	switch {
	case phone == "":
		res.add(FieldTelefonoWhatsapp, "El teléfono es obligatorio")
	case len(phone) < 8:
		res.add(FieldTelefonoWhatsapp, "Ingresá un teléfono válido")
	case len(phone) > 20:
		res.add(FieldTelefonoWhatsapp, "El teléfono es demasiado largo")
	}

	city := strings.TrimSpace(d.CiudadZona)
	switch {
	case city == "":
		res.add(FieldCiudadZona, "La ciudad/zona es obligatoria")
	case len([]rune(city)) < 3:
		res.add(FieldCiudadZona, "Ingresá al menos 3 caracteres")
	}
}

func validateHousing(d *Draft, res *StepResult) {
	switch d.TipoVivienda {
	case adopcion.ViviendaCasaConPatio, adopcion.ViviendaCasaSinPatio,
		adopcion.ViviendaDepartamento, adopcion.ViviendaOtro:
	default:
		res.add(FieldTipoVivienda, "Seleccioná un tipo de vivienda")
	}

	if d.ViviendaPropia == nil {
		res.add(FieldViviendaPropia, "Indicá si la vivienda es propia o alquilada")
	}
	// PermiteMascotas is revealed when renting but never required.

	if !d.TodosDeAcuerdo {
		res.add(FieldTodosDeAcuerdo, "Todos los convivientes deben estar de acuerdo")
	}

	switch {
	case d.CantidadConvivientes == nil:
		res.add(FieldCantidadConvivientes, "Indicá la cantidad de convivientes")
	case *d.CantidadConvivientes < 0:
		res.add(FieldCantidadConvivientes, "El número no puede ser negativo")
	case *d.CantidadConvivientes > 20:
		res.add(FieldCantidadConvivientes, "Ingresá un número válido")
	}
}

func validateCohabitation(d *Draft, res *StepResult) {
	if d.HayNinos == nil {
		res.add(FieldHayNinos, "Indicá si hay niños en el hogar")
	}
	if d.TieneOtrosAnimales == nil {
		res.add(FieldTieneOtrosAnimales, "Indicá si tenés otros animales")
	}
	// EdadesNinos and OtrosAnimalesCastrados are covered by the
	// conditional rule table; DescripcionOtrosAnimales is optional.
}

func validateMotivation(d *Draft, res *StepResult) {
	exp := strings.TrimSpace(d.ExperienciaPrevia)
	switch {
	case exp == "":
		res.add(FieldExperienciaPrevia, "Contanos sobre tu experiencia")
	case len([]rune(exp)) < 10:
		res.add(FieldExperienciaPrevia, "Contanos un poco más sobre tu experiencia (mínimo 10 caracteres)")
	}

	mot := strings.TrimSpace(d.Motivacion)
	switch {
	case mot == "":
		res.add(FieldMotivacion, "Contanos por qué querés adoptar")
	case len([]rune(mot)) < 20:
		res.add(FieldMotivacion, "Contanos un poco más sobre tu motivación (mínimo 20 caracteres)")
	}

	if !d.CompromisoCastracion {
		res.add(FieldCompromisoCastracion, "Debés comprometerte a castrar al animal si no lo está")
	}
	if !d.CompromisoSeguimiento {
		res.add(FieldCompromisoSeguimiento, "Debés aceptar el seguimiento post-adopción")
	}
}
