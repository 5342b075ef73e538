// Package wizard implements the multi-step adoption request form: a
// four-step state machine with per-step validation, conditional fields
// and staged submission to the backend.
package wizard

import adopcion "github.com/facundocornejo/adopcionResposanble"

// Step identifies one of the four sequential form sections.
type Step int

const (
	StepIdentity Step = iota + 1
	StepHousing
	StepCohabitation
	StepMotivation
)

// FirstStep and LastStep bound forward/backward navigation.
const (
	FirstStep = StepIdentity
	LastStep  = StepMotivation
)

// StepInfo describes a step for rendering.
type StepInfo struct {
	Step        Step
	Title       string
	Description string
}

// Steps lists the wizard sections in order.
var Steps = []StepInfo{
	{StepIdentity, "Tus datos", "Información personal y de contacto"},
	{StepHousing, "Tu vivienda", "Información sobre tu hogar"},
	{StepCohabitation, "Convivencia", "Sobre tu familia y otros animales"},
	{StepMotivation, "Motivación", "Por qué querés adoptar"},
}

// Field names used as keys in validation results. They match the
// backend's wire names so a view can bind errors to inputs directly.
const (
	FieldNombreCompleto           = "nombre_completo"
	FieldEdad                     = "edad"
	FieldEmail                    = "email"
	FieldTelefonoWhatsapp         = "telefono_whatsapp"
	FieldCiudadZona               = "ciudad_zona"
	FieldTipoVivienda             = "tipo_vivienda"
	FieldViviendaPropia           = "vivienda_propia"
	FieldPermiteMascotas          = "permite_mascotas"
	FieldTodosDeAcuerdo           = "todos_de_acuerdo"
	FieldCantidadConvivientes     = "cantidad_convivientes"
	FieldHayNinos                 = "hay_ninos"
	FieldEdadesNinos              = "edades_ninos"
	FieldTieneOtrosAnimales       = "tiene_otros_animales"
	FieldDescripcionOtrosAnimales = "descripcion_otros_animales"
	FieldOtrosAnimalesCastrados   = "otros_animales_castrados"
	FieldExperienciaPrevia        = "experiencia_previa"
	FieldMotivacion               = "motivacion"
	FieldCompromisoCastracion     = "compromiso_castracion"
	FieldCompromisoSeguimiento    = "compromiso_seguimiento"
)

// MinAdopterAge is the minimum age to adopt.
const MinAdopterAge = 18

// Draft is the in-progress, unsubmitted form state. Tri-state answers
// (yes/no/unanswered) are pointers; a nil means the question has not been
// answered yet.
type Draft struct {
	// Step 1: applicant identity
	NombreCompleto   string
	Edad             int
	Email            string
	TelefonoWhatsapp string
	CiudadZona       string

	// Step 2: housing
	TipoVivienda         adopcion.TipoVivienda
	ViviendaPropia       *bool
	PermiteMascotas      *bool // only revealed when renting
	TodosDeAcuerdo       bool
	CantidadConvivientes *int

	// Step 3: cohabitation
	HayNinos                 *bool
	EdadesNinos              string // only required when HayNinos
	TieneOtrosAnimales       *bool
	DescripcionOtrosAnimales string
	OtrosAnimalesCastrados   *bool // only required when TieneOtrosAnimales

	// Step 4: motivation
	ExperienciaPrevia     string
	Motivacion            string
	CompromisoCastracion  bool
	CompromisoSeguimiento bool
}

// ShowsPermiteMascotas reports whether the landlord-allows-pets question
// is visible: only once the applicant answered they rent.
func (d *Draft) ShowsPermiteMascotas() bool {
	return d.ViviendaPropia != nil && !*d.ViviendaPropia
}

// ShowsEdadesNinos reports whether the children-ages question is visible.
func (d *Draft) ShowsEdadesNinos() bool {
	return d.HayNinos != nil && *d.HayNinos
}

// ShowsOtrosAnimales reports whether the existing-pets follow-up
// questions are visible.
func (d *Draft) ShowsOtrosAnimales() bool {
	return d.TieneOtrosAnimales != nil && *d.TieneOtrosAnimales
}
