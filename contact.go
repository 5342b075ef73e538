package adopcion

import "context"

// ContactService handles the public shelter onboarding form.
type ContactService struct {
	client *Client
}

// ContactRequestInput is the payload for a public onboarding request.
type ContactRequestInput struct {
	NombreRefugio    string `json:"nombre_refugio"`
	NombreContacto   string `json:"nombre_contacto"`
	Email            string `json:"email"`
	Telefono         string `json:"telefono"`
	Ciudad           string `json:"ciudad,omitempty"`
	CantidadAnimales string `json:"cantidad_animales,omitempty"`
	Descripcion      string `json:"descripcion,omitempty"`
	Instagram        string `json:"instagram,omitempty"`
	Facebook         string `json:"facebook,omitempty"`
}

// Create submits an onboarding request from a shelter that wants to join
// the platform. Public.
func (s *ContactService) Create(ctx context.Context, input ContactRequestInput) (*ContactRequest, error) {
	var resp struct {
		ContactRequest ContactRequest `json:"contact_request"`
	}
	if err := s.client.post(ctx, "/api/contact-requests", input, &resp); err != nil {
		return nil, err
	}
	return &resp.ContactRequest, nil
}
