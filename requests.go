package adopcion

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RequestsService handles adoption request operations.
type RequestsService struct {
	client *Client
}

// RequestFilters narrows an adoption request listing.
type RequestFilters struct {
	Estado   EstadoSolicitud
	AnimalID int64
	Limit    int
	Sort     string
}

func (f RequestFilters) query() string {
	params := url.Values{}
	if f.Estado != "" {
		params.Set("estado", string(f.Estado))
	}
	if f.AnimalID > 0 {
		params.Set("animal_id", strconv.FormatInt(f.AnimalID, 10))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// CreateAdoptionRequestInput is the backend's expected shape for a new
// adoption request. It is normally composed by the wizard's Submit, not
// built by hand.
type CreateAdoptionRequestInput struct {
	AnimalID               int64        `json:"animal_id"`
	NombreCompleto         string       `json:"nombre_completo"`
	Edad                   int          `json:"edad"`
	Email                  string       `json:"email"`
	TelefonoWhatsapp       string       `json:"telefono_whatsapp"`
	CiudadZona             string       `json:"ciudad_zona"`
	TipoVivienda           TipoVivienda `json:"tipo_vivienda"`
	ViveSoloAcompanado     string       `json:"vive_solo_acompanado"`
	TodosDeAcuerdo         bool         `json:"todos_de_acuerdo"`
	TieneOtrosAnimales     bool         `json:"tiene_otros_animales"`
	OtrosAnimalesCastrados *string      `json:"otros_animales_castrados"`
	ExperienciaPrevia      string       `json:"experiencia_previa"`
	PuedeCubrirGastos      bool         `json:"puede_cubrir_gastos"`
	Motivacion             string       `json:"motivacion"`
	CompromisoCastracion   bool         `json:"compromiso_castracion"`
	AceptaContacto         bool         `json:"acepta_contacto"`
}

// List returns adoption requests matching the filters. Admin only.
func (s *RequestsService) List(ctx context.Context, filters RequestFilters) ([]*AdoptionRequest, error) {
	var resp struct {
		Requests []*AdoptionRequest `json:"requests"`
	}
	if err := s.client.get(ctx, "/api/adoption-requests"+filters.query(), &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

// Recent returns the latest requests for the dashboard. Admin only.
func (s *RequestsService) Recent(ctx context.Context, limit int) ([]*AdoptionRequest, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.List(ctx, RequestFilters{Limit: limit, Sort: "recent"})
}

// Get retrieves one request by ID. Admin only.
func (s *RequestsService) Get(ctx context.Context, id int64) (*AdoptionRequest, error) {
	var resp struct {
		Request AdoptionRequest `json:"request"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/api/adoption-requests/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Request, nil
}

// Create submits a new adoption request. Public.
func (s *RequestsService) Create(ctx context.Context, input CreateAdoptionRequestInput) (*AdoptionRequest, error) {
	var resp struct {
		Request AdoptionRequest `json:"request"`
	}
	if err := s.client.post(ctx, "/api/adoption-requests", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Request, nil
}

// UpdateStatus moves a request through the review flow. Admin only.
func (s *RequestsService) UpdateStatus(ctx context.Context, id int64, estado EstadoSolicitud) (*AdoptionRequest, error) {
	var resp struct {
		Request AdoptionRequest `json:"request"`
	}
	body := map[string]EstadoSolicitud{"estado": estado}
	if err := s.client.patch(ctx, fmt.Sprintf("/api/adoption-requests/%d", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Request, nil
}

// MarkViewed flags a request as seen by the organization. Admin only.
func (s *RequestsService) MarkViewed(ctx context.Context, id int64) (*AdoptionRequest, error) {
	var resp struct {
		Request AdoptionRequest `json:"request"`
	}
	if err := s.client.patch(ctx, fmt.Sprintf("/api/adoption-requests/%d/vista", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Request, nil
}

// Delete removes a request. Admin only.
func (s *RequestsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/api/adoption-requests/%d", id))
}

// Stats returns the organization's request counters. Admin only.
func (s *RequestsService) Stats(ctx context.Context) (*RequestStats, error) {
	var resp struct {
		Stats RequestStats `json:"stats"`
	}
	if err := s.client.get(ctx, "/api/adoption-requests/stats", &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
