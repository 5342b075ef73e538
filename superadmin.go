package adopcion

import (
	"context"
	"fmt"
)

// SuperAdminService handles the platform-level management layer:
// organization onboarding and contact request triage. All operations
// require a super-admin session.
type SuperAdminService struct {
	client *Client
}

// CreateOrganizationInput is the payload for onboarding a new
// organization together with its first administrator account.
type CreateOrganizationInput struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
	AdminNombre string `json:"admin_nombre"`
	AdminEmail  string `json:"admin_email"`
}

// CreatedOrganization is the response to creating an organization: the
// entity plus the generated admin credentials, returned exactly once.
type CreatedOrganization struct {
	Organizacion Organization `json:"organizacion"`
	Credenciales Credentials  `json:"credenciales"`
}

// ListOrganizations returns all organizations on the platform.
func (s *SuperAdminService) ListOrganizations(ctx context.Context) ([]*Organization, error) {
	var resp struct {
		Organizations []*Organization `json:"organizations"`
	}
	if err := s.client.get(ctx, "/api/super-admin/organizations", &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// GetOrganization retrieves one organization by ID.
func (s *SuperAdminService) GetOrganization(ctx context.Context, id int64) (*Organization, error) {
	var resp struct {
		Organization Organization `json:"organization"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/api/super-admin/organizations/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}

// CreateOrganization onboards a new organization and its admin account.
// The returned credentials cannot be retrieved again.
func (s *SuperAdminService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*CreatedOrganization, error) {
	var resp CreatedOrganization
	if err := s.client.post(ctx, "/api/super-admin/organizations", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateOrganization updates an organization's data or active flag.
func (s *SuperAdminService) UpdateOrganization(ctx context.Context, id int64, input OrganizationInput) (*Organization, error) {
	var resp struct {
		Organization Organization `json:"organization"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/api/super-admin/organizations/%d", id), input, &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}

// DeleteOrganization removes an organization and everything it owns.
func (s *SuperAdminService) DeleteOrganization(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/api/super-admin/organizations/%d", id))
}

// ListContactRequests returns onboarding requests awaiting triage.
func (s *SuperAdminService) ListContactRequests(ctx context.Context) ([]*ContactRequest, error) {
	var resp struct {
		ContactRequests []*ContactRequest `json:"contact_requests"`
	}
	if err := s.client.get(ctx, "/api/super-admin/contact-requests", &resp); err != nil {
		return nil, err
	}
	return resp.ContactRequests, nil
}

// UpdateContactRequest moves an onboarding request through triage.
func (s *SuperAdminService) UpdateContactRequest(ctx context.Context, id int64, estado EstadoContacto) (*ContactRequest, error) {
	var resp struct {
		ContactRequest ContactRequest `json:"contact_request"`
	}
	body := map[string]EstadoContacto{"estado": estado}
	if err := s.client.put(ctx, fmt.Sprintf("/api/super-admin/contact-requests/%d", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.ContactRequest, nil
}
