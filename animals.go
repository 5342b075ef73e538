package adopcion

import (
	"context"
	"fmt"
	"net/url"
)

// AnimalsService handles animal catalog operations.
type AnimalsService struct {
	client *Client
}

// AnimalFilters narrows an animal listing. Zero-value fields are omitted
// from the query string.
type AnimalFilters struct {
	Especie  Especie
	Estado   EstadoAnimal
	Tamanio  Tamanio
	Busqueda string
}

func (f AnimalFilters) query() string {
	params := url.Values{}
	if f.Especie != "" {
		params.Set("especie", string(f.Especie))
	}
	if f.Estado != "" {
		params.Set("estado", string(f.Estado))
	}
	if f.Tamanio != "" {
		params.Set("tamanio", string(f.Tamanio))
	}
	if f.Busqueda != "" {
		params.Set("busqueda", f.Busqueda)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// AnimalInput is the flat payload for creating or updating an animal.
type AnimalInput struct {
	Nombre                string       `json:"nombre" validate:"required,min=2,max=50"`
	Especie               Especie      `json:"especie" validate:"required,oneof=Perro Gato"`
	Tamanio               Tamanio      `json:"tamanio" validate:"required,oneof=Pequeño Mediano Grande"`
	EdadAproximada        string       `json:"edad_aproximada" validate:"required"`
	Sexo                  Sexo         `json:"sexo" validate:"required,oneof=Macho Hembra"`
	RazaMezcla            string       `json:"raza_mezcla,omitempty"`
	EstadoCastracion      bool         `json:"estado_castracion"`
	EstadoVacunacion      string       `json:"estado_vacunacion,omitempty"`
	EstadoDesparasitacion bool         `json:"estado_desparasitacion"`
	Estado                EstadoAnimal `json:"estado" validate:"required,oneof=Disponible 'En proceso' Adoptado 'En tránsito'"`
	DescripcionHistoria   string       `json:"descripcion_historia" validate:"required,min=20"`
	NecesidadesEspeciales string       `json:"necesidades_especiales,omitempty"`
	SocializaPerros       *bool        `json:"socializa_perros,omitempty"`
	SocializaGatos        *bool        `json:"socializa_gatos,omitempty"`
	SocializaNinos        *bool        `json:"socializa_ninos,omitempty"`
	PublicadoPor          string       `json:"publicado_por" validate:"required"`
	ContactoRescatista    string       `json:"contacto_rescatista" validate:"required"`
	FotoPrincipal         string       `json:"foto_principal,omitempty"`
	Fotos                 []string     `json:"fotos,omitempty" validate:"max=5"`
}

// List returns animals matching the filters. Public.
func (s *AnimalsService) List(ctx context.Context, filters AnimalFilters) ([]*Animal, error) {
	var resp struct {
		Animals []*Animal `json:"animals"`
	}
	if err := s.client.get(ctx, "/api/animals"+filters.query(), &resp); err != nil {
		return nil, err
	}
	return resp.Animals, nil
}

// ListAvailable returns only animals open to new adoption requests.
func (s *AnimalsService) ListAvailable(ctx context.Context) ([]*Animal, error) {
	return s.List(ctx, AnimalFilters{Estado: EstadoDisponible})
}

// Get retrieves an animal by ID. Public.
func (s *AnimalsService) Get(ctx context.Context, id int64) (*Animal, error) {
	var resp struct {
		Animal Animal `json:"animal"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/api/animals/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Create publishes a new animal. Admin only.
func (s *AnimalsService) Create(ctx context.Context, input AnimalInput) (*Animal, error) {
	var resp struct {
		Animal Animal `json:"animal"`
	}
	if err := s.client.post(ctx, "/api/animals", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Update replaces an animal's data. Admin only.
func (s *AnimalsService) Update(ctx context.Context, id int64, input AnimalInput) (*Animal, error) {
	var resp struct {
		Animal Animal `json:"animal"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/api/animals/%d", id), input, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// UpdateStatus changes only the adoption state. Admin only.
func (s *AnimalsService) UpdateStatus(ctx context.Context, id int64, estado EstadoAnimal) (*Animal, error) {
	var resp struct {
		Animal Animal `json:"animal"`
	}
	body := map[string]EstadoAnimal{"estado": estado}
	if err := s.client.patch(ctx, fmt.Sprintf("/api/animals/%d/status", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Animal, nil
}

// Delete removes an animal. Admin only.
func (s *AnimalsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/api/animals/%d", id))
}

// Stats returns the organization's animal counters. Admin only.
func (s *AnimalsService) Stats(ctx context.Context) (*AnimalStats, error) {
	var resp struct {
		Stats AnimalStats `json:"stats"`
	}
	if err := s.client.get(ctx, "/api/animals/stats", &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
