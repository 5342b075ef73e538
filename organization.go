package adopcion

import (
	"context"
	"fmt"
)

// OrganizationService handles the authenticated organization's
// self-service operations and public organization pages.
type OrganizationService struct {
	client *Client
}

// OrganizationInput is the flat payload for updating an organization.
type OrganizationInput struct {
	Nombre        string `json:"nombre,omitempty"`
	Email         string `json:"email,omitempty"`
	Telefono      string `json:"telefono,omitempty"`
	Whatsapp      string `json:"whatsapp,omitempty"`
	Descripcion   string `json:"descripcion,omitempty"`
	Direccion     string `json:"direccion,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	Facebook      string `json:"facebook,omitempty"`
	DonacionAlias string `json:"donacion_alias,omitempty"`
	DonacionCBU   string `json:"donacion_cbu,omitempty"`
	DonacionInfo  string `json:"donacion_info,omitempty"`
}

// Mine returns the authenticated admin's organization.
func (s *OrganizationService) Mine(ctx context.Context) (*Organization, error) {
	var resp struct {
		Organization Organization `json:"organization"`
	}
	if err := s.client.get(ctx, "/api/organization", &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}

// UpdateMine updates the authenticated admin's organization.
func (s *OrganizationService) UpdateMine(ctx context.Context, input OrganizationInput) (*Organization, error) {
	var resp struct {
		Organization Organization `json:"organization"`
	}
	if err := s.client.put(ctx, "/api/organization", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}

// BySlug returns an organization's public profile. Public.
func (s *OrganizationService) BySlug(ctx context.Context, slug string) (*Organization, error) {
	var resp struct {
		Organization Organization `json:"organization"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/api/organization/%s", slug), &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}
