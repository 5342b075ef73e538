// Package adopcion provides the Go client for the Adopción Responsable API,
// the backend of a pet-adoption marketplace connecting rescue organizations
// with prospective adopters.
package adopcion

import "time"

// Especie represents an animal species.
type Especie string

const (
	EspeciePerro Especie = "Perro"
	EspecieGato  Especie = "Gato"
)

// Tamanio represents an animal size.
type Tamanio string

const (
	TamanioPequenio Tamanio = "Pequeño"
	TamanioMediano  Tamanio = "Mediano"
	TamanioGrande   Tamanio = "Grande"
)

// Sexo represents an animal sex.
type Sexo string

const (
	SexoMacho  Sexo = "Macho"
	SexoHembra Sexo = "Hembra"
)

// EstadoAnimal represents the adoption state of an animal.
type EstadoAnimal string

const (
	EstadoDisponible EstadoAnimal = "Disponible"
	EstadoEnProceso  EstadoAnimal = "En proceso"
	EstadoAdoptado   EstadoAnimal = "Adoptado"
	EstadoEnTransito EstadoAnimal = "En tránsito"
)

// Adoptable reports whether an animal in this state can receive new
// adoption requests.
func (e EstadoAnimal) Adoptable() bool {
	return e == EstadoDisponible || e == EstadoEnTransito
}

// EstadoSolicitud represents the review state of an adoption request.
type EstadoSolicitud string

const (
	SolicitudNueva        EstadoSolicitud = "Nueva"
	SolicitudRevisada     EstadoSolicitud = "Revisada"
	SolicitudEnEvaluacion EstadoSolicitud = "En evaluación"
	SolicitudAprobada     EstadoSolicitud = "Aprobada"
	SolicitudRechazada    EstadoSolicitud = "Rechazada"
)

// TipoVivienda represents a housing type on an adoption request.
type TipoVivienda string

const (
	ViviendaCasaConPatio TipoVivienda = "Casa con patio"
	ViviendaCasaSinPatio TipoVivienda = "Casa sin patio"
	ViviendaDepartamento TipoVivienda = "Departamento"
	ViviendaOtro         TipoVivienda = "Otro"
)

// MaxFotos is the maximum number of photo URLs an animal may carry.
const MaxFotos = 5

// Animal represents a published animal.
type Animal struct {
	ID                    int64        `json:"id"`
	OrganizacionID        int64        `json:"organizacion_id,omitempty"`
	Nombre                string       `json:"nombre"`
	Especie               Especie      `json:"especie"`
	Tamanio               Tamanio      `json:"tamanio"`
	EdadAproximada        string       `json:"edad_aproximada"`
	Sexo                  Sexo         `json:"sexo"`
	RazaMezcla            string       `json:"raza_mezcla,omitempty"`
	EstadoCastracion      bool         `json:"estado_castracion"`
	EstadoVacunacion      string       `json:"estado_vacunacion,omitempty"`
	EstadoDesparasitacion bool         `json:"estado_desparasitacion"`
	Estado                EstadoAnimal `json:"estado"`
	DescripcionHistoria   string       `json:"descripcion_historia"`
	NecesidadesEspeciales string       `json:"necesidades_especiales,omitempty"`
	SocializaPerros       *bool        `json:"socializa_perros,omitempty"`
	SocializaGatos        *bool        `json:"socializa_gatos,omitempty"`
	SocializaNinos        *bool        `json:"socializa_ninos,omitempty"`
	PublicadoPor          string       `json:"publicado_por"`
	ContactoRescatista    string       `json:"contacto_rescatista"`
	FotoPrincipal         string       `json:"foto_principal,omitempty"`
	Fotos                 []string     `json:"fotos,omitempty"`
	CreatedAt             time.Time    `json:"created_at,omitzero"`
	UpdatedAt             time.Time    `json:"updated_at,omitzero"`
}

// AdoptionRequest represents a submitted adoption request as stored by
// the backend.
type AdoptionRequest struct {
	ID                     int64           `json:"id"`
	AnimalID               int64           `json:"animal_id"`
	Animal                 *Animal         `json:"animal,omitempty"`
	NombreCompleto         string          `json:"nombre_completo"`
	Edad                   int             `json:"edad"`
	Email                  string          `json:"email"`
	TelefonoWhatsapp       string          `json:"telefono_whatsapp"`
	CiudadZona             string          `json:"ciudad_zona"`
	TipoVivienda           TipoVivienda    `json:"tipo_vivienda"`
	ViveSoloAcompanado     string          `json:"vive_solo_acompanado"`
	TodosDeAcuerdo         bool            `json:"todos_de_acuerdo"`
	TieneOtrosAnimales     bool            `json:"tiene_otros_animales"`
	OtrosAnimalesCastrados *string         `json:"otros_animales_castrados,omitempty"`
	ExperienciaPrevia      string          `json:"experiencia_previa"`
	PuedeCubrirGastos      bool            `json:"puede_cubrir_gastos"`
	Motivacion             string          `json:"motivacion"`
	CompromisoCastracion   bool            `json:"compromiso_castracion"`
	AceptaContacto         bool            `json:"acepta_contacto"`
	Estado                 EstadoSolicitud `json:"estado"`
	Vista                  bool            `json:"vista"`
	CreatedAt              time.Time       `json:"created_at,omitzero"`
}

// Organization represents a shelter or rescuer tenant.
type Organization struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Slug            string    `json:"slug,omitempty"`
	Email           string    `json:"email,omitempty"`
	Telefono        string    `json:"telefono,omitempty"`
	Whatsapp        string    `json:"whatsapp,omitempty"`
	Descripcion     string    `json:"descripcion,omitempty"`
	Direccion       string    `json:"direccion,omitempty"`
	Instagram       string    `json:"instagram,omitempty"`
	Facebook        string    `json:"facebook,omitempty"`
	DonacionAlias   string    `json:"donacion_alias,omitempty"`
	DonacionCBU     string    `json:"donacion_cbu,omitempty"`
	DonacionInfo    string    `json:"donacion_info,omitempty"`
	Activa          bool      `json:"activa"`
	Administradores []Admin   `json:"administradores,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// Rol represents an administrator role.
type Rol string

const (
	RolAdmin      Rol = "admin"
	RolSuperAdmin Rol = "super_admin"
)

// Admin is the profile of an authenticated administrator. It is cached
// client-side after login but is advisory only; authorization always
// derives from token validity.
type Admin struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Email          string `json:"email"`
	Rol            Rol    `json:"rol,omitempty"`
	OrganizacionID int64  `json:"organizacion_id,omitempty"`
}

// IsSuperAdmin reports whether the profile belongs to the super-admin
// layer.
func (a *Admin) IsSuperAdmin() bool {
	return a != nil && a.Rol == RolSuperAdmin
}

// EstadoContacto represents the state of an onboarding contact request.
type EstadoContacto string

const (
	ContactoPendiente  EstadoContacto = "Pendiente"
	ContactoContactado EstadoContacto = "Contactado"
	ContactoAprobado   EstadoContacto = "Aprobado"
	ContactoRechazado  EstadoContacto = "Rechazado"
)

// ContactRequest represents a shelter onboarding request submitted
// through the public site.
type ContactRequest struct {
	ID               int64          `json:"id"`
	NombreRefugio    string         `json:"nombre_refugio"`
	NombreContacto   string         `json:"nombre_contacto"`
	Email            string         `json:"email"`
	Telefono         string         `json:"telefono"`
	Ciudad           string         `json:"ciudad,omitempty"`
	CantidadAnimales string         `json:"cantidad_animales,omitempty"`
	Descripcion      string         `json:"descripcion,omitempty"`
	Instagram        string         `json:"instagram,omitempty"`
	Facebook         string         `json:"facebook,omitempty"`
	Estado           EstadoContacto `json:"estado"`
	FechaSolicitud   time.Time      `json:"fecha_solicitud,omitzero"`
}

// AnimalStats summarizes an organization's animals for the dashboard.
type AnimalStats struct {
	Total       int `json:"totalAnimales"`
	Disponibles int `json:"disponibles"`
	EnProceso   int `json:"enProceso"`
	Adoptados   int `json:"adoptados"`
	EnTransito  int `json:"enTransito"`
}

// RequestStats summarizes an organization's adoption requests.
type RequestStats struct {
	Total      int `json:"totalSolicitudes"`
	Nuevas     int `json:"nuevas"`
	Pendientes int `json:"pendientes"`
}

// Credentials holds the generated login credentials returned once when a
// super admin creates an organization.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
