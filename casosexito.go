package adopcion

import (
	"context"
	"time"
)

// CasoExito is a published success story: an adopted animal together with
// its adoption story and up-to-date photos.
type CasoExito struct {
	ID            int64     `json:"id"`
	AnimalID      int64     `json:"animal_id"`
	Animal        *Animal   `json:"animal,omitempty"`
	Titulo        string    `json:"titulo"`
	Historia      string    `json:"historia"`
	FechaAdopcion string    `json:"fecha_adopcion"`
	FotoActual1   string    `json:"foto_actual_1,omitempty"`
	FotoActual2   string    `json:"foto_actual_2,omitempty"`
	FotoActual3   string    `json:"foto_actual_3,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// CasosExitoGroup is one organization's block on the public success
// stories page: the organization plus its stories. The backend emits the
// story list under a camelCase key, unlike the rest of the contract.
type CasosExitoGroup struct {
	Organization
	CasosExito []*CasoExito `json:"casosExito"`
}

// CasoExitoInput is the payload for publishing a success story. The
// photos are URLs previously obtained from the upload endpoint; up to
// three, all optional.
type CasoExitoInput struct {
	AnimalID      int64  `json:"animal_id" validate:"required"`
	Titulo        string `json:"titulo" validate:"required,min=3,max=100"`
	Historia      string `json:"historia" validate:"required,min=10"`
	FechaAdopcion string `json:"fecha_adopcion" validate:"required"`
	FotoActual1   string `json:"foto_actual_1,omitempty"`
	FotoActual2   string `json:"foto_actual_2,omitempty"`
	FotoActual3   string `json:"foto_actual_3,omitempty"`
}

// CasosExitoService handles the public success stories section.
type CasosExitoService struct {
	client *Client
}

// List returns every published success story grouped per organization.
// Public.
func (s *CasosExitoService) List(ctx context.Context) ([]*CasosExitoGroup, error) {
	var resp struct {
		Organizaciones []*CasosExitoGroup `json:"organizaciones"`
	}
	if err := s.client.get(ctx, "/api/casos-exito", &resp); err != nil {
		return nil, err
	}
	return resp.Organizaciones, nil
}

// Create publishes a success story for an adopted animal. Admin only.
func (s *CasosExitoService) Create(ctx context.Context, input CasoExitoInput) (*CasoExito, error) {
	var resp struct {
		CasoExito CasoExito `json:"caso_exito"`
	}
	if err := s.client.post(ctx, "/api/casos-exito", input, &resp); err != nil {
		return nil, err
	}
	return &resp.CasoExito, nil
}
