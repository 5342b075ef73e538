package adopcion

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestAuthService_Login(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("expected /api/auth/login, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"token": "tok-abc",
			"admin": map[string]any{"id": 7, "nombre": "Ana", "email": "ana@refugio.org", "rol": "admin"},
		})
	})

	res, err := client.Auth.Login(context.Background(), "ana@refugio.org", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token != "tok-abc" {
		t.Errorf("expected token 'tok-abc', got %q", res.Token)
	}
	if res.Admin.Nombre != "Ana" {
		t.Errorf("expected admin Ana, got %q", res.Admin.Nombre)
	}
}

func TestAuthService_Me(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("expected /api/auth/me, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"admin": map[string]any{"id": 7, "nombre": "Ana", "email": "ana@refugio.org", "rol": "super_admin"},
		})
	})

	admin, err := client.Auth.Me(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !admin.IsSuperAdmin() {
		t.Error("expected super admin profile")
	}
}

func TestAnimalsService_List_Filters(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/animals" {
			t.Errorf("expected /api/animals, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("especie") != "Perro" {
			t.Errorf("expected especie=Perro, got %q", q.Get("especie"))
		}
		if q.Get("busqueda") != "manso" {
			t.Errorf("expected busqueda=manso, got %q", q.Get("busqueda"))
		}
		writeEnvelope(t, w, map[string]any{
			"animals": []map[string]any{
				{"id": 1, "nombre": "Rocco", "especie": "Perro", "estado": "Disponible"},
			},
		})
	})

	animals, err := client.Animals.List(context.Background(), AnimalFilters{
		Especie:  EspeciePerro,
		Busqueda: "manso",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(animals) != 1 || animals[0].Nombre != "Rocco" {
		t.Errorf("unexpected animals: %+v", animals)
	}
}

func TestAnimalsService_ListAvailable(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("estado"); got != "Disponible" {
			t.Errorf("expected estado=Disponible, got %q", got)
		}
		writeEnvelope(t, w, map[string]any{"animals": []any{}})
	})

	if _, err := client.Animals.ListAvailable(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnimalsService_UpdateStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/animals/3/status" {
			t.Errorf("expected /api/animals/3/status, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"animal": map[string]any{"id": 3, "nombre": "Luna", "estado": "Adoptado"},
		})
	})

	animal, err := client.Animals.UpdateStatus(context.Background(), 3, EstadoAdoptado)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if animal.Estado != EstadoAdoptado {
		t.Errorf("expected Adoptado, got %s", animal.Estado)
	}
}

func TestAnimalsService_Stats(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/animals/stats" {
			t.Errorf("expected /api/animals/stats, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"stats": map[string]any{
				"totalAnimales": 12, "disponibles": 5, "enProceso": 2, "adoptados": 4, "enTransito": 1,
			},
		})
	})

	stats, err := client.Animals.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 12 || stats.Disponibles != 5 || stats.EnTransito != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestRequestsService_Recent(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "3" {
			t.Errorf("expected limit=3, got %q", q.Get("limit"))
		}
		if q.Get("sort") != "recent" {
			t.Errorf("expected sort=recent, got %q", q.Get("sort"))
		}
		writeEnvelope(t, w, map[string]any{"requests": []any{}})
	})

	if _, err := client.Requests.Recent(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequestsService_MarkViewed(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/adoption-requests/9/vista" {
			t.Errorf("expected /api/adoption-requests/9/vista, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"request": map[string]any{"id": 9, "vista": true},
		})
	})

	req, err := client.Requests.MarkViewed(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Vista {
		t.Error("expected request marked as viewed")
	}
}

func TestRequestsService_Create(t *testing.T) {
	castrados := "Sí"
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/adoption-requests" {
			t.Errorf("expected /api/adoption-requests, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"request": map[string]any{"id": 21, "animal_id": 3, "estado": "Nueva"},
		})
	})

	req, err := client.Requests.Create(context.Background(), CreateAdoptionRequestInput{
		AnimalID:               3,
		NombreCompleto:         "Juan Pérez",
		Edad:                   30,
		Email:                  "juan@example.com",
		TipoVivienda:           ViviendaCasaConPatio,
		ViveSoloAcompanado:     "2 persona(s)",
		TieneOtrosAnimales:     true,
		OtrosAnimalesCastrados: &castrados,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != 21 || req.Estado != SolicitudNueva {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestOrganizationService_BySlug(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/organization/patitas" {
			t.Errorf("expected /api/organization/patitas, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"organization": map[string]any{"id": 2, "nombre": "Patitas", "slug": "patitas", "activa": true},
		})
	})

	org, err := client.Organization.BySlug(context.Background(), "patitas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if org.Nombre != "Patitas" {
		t.Errorf("expected Patitas, got %q", org.Nombre)
	}
}

func TestSuperAdminService_CreateOrganization(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/super-admin/organizations" {
			t.Errorf("expected /api/super-admin/organizations, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"organizacion": map[string]any{"id": 4, "nombre": "Huellas"},
			"credenciales": map[string]any{"username": "huellas-admin", "password": "generated"},
		})
	})

	created, err := client.SuperAdmin.CreateOrganization(context.Background(), CreateOrganizationInput{
		Nombre:      "Huellas",
		AdminNombre: "Marta",
		AdminEmail:  "marta@huellas.org",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Organizacion.ID != 4 {
		t.Errorf("expected org id 4, got %d", created.Organizacion.ID)
	}
	if created.Credenciales.Username != "huellas-admin" {
		t.Errorf("expected generated credentials, got %+v", created.Credenciales)
	}
}

func TestSuperAdminService_UpdateContactRequest(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/super-admin/contact-requests/5" {
			t.Errorf("expected /api/super-admin/contact-requests/5, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"contact_request": map[string]any{"id": 5, "estado": "Contactado"},
		})
	})

	c, err := client.SuperAdmin.UpdateContactRequest(context.Background(), 5, ContactoContactado)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Estado != ContactoContactado {
		t.Errorf("expected Contactado, got %s", c.Estado)
	}
}

func TestCasosExitoService_List(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/casos-exito" {
			t.Errorf("expected /api/casos-exito, got %s", r.URL.Path)
		}
		writeEnvelope(t, w, map[string]any{
			"organizaciones": []map[string]any{
				{
					"id":     2,
					"nombre": "Patitas",
					"casosExito": []map[string]any{
						{
							"id":             11,
							"animal_id":      3,
							"titulo":         "Luna encontró su hogar",
							"historia":       "Después de meses en tránsito, Luna fue adoptada.",
							"fecha_adopcion": "2026-05-10",
							"foto_actual_1":  "https://cdn.example.com/luna-1.jpg",
							"animal":         map[string]any{"id": 3, "nombre": "Luna", "estado": "Adoptado"},
						},
					},
				},
			},
		})
	})

	groups, err := client.CasosExito.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 organization group, got %d", len(groups))
	}
	if groups[0].Nombre != "Patitas" {
		t.Errorf("expected organization Patitas, got %q", groups[0].Nombre)
	}
	if len(groups[0].CasosExito) != 1 {
		t.Fatalf("expected 1 story, got %d", len(groups[0].CasosExito))
	}
	caso := groups[0].CasosExito[0]
	if caso.Titulo != "Luna encontró su hogar" {
		t.Errorf("unexpected title %q", caso.Titulo)
	}
	if caso.Animal == nil || caso.Animal.Nombre != "Luna" {
		t.Errorf("expected embedded animal, got %+v", caso.Animal)
	}
}

func TestCasosExitoService_Create(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/casos-exito" {
			t.Errorf("expected /api/casos-exito, got %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["animal_id"] != float64(3) {
			t.Errorf("expected animal_id 3, got %v", body["animal_id"])
		}
		if body["fecha_adopcion"] != "2026-05-10" {
			t.Errorf("expected fecha_adopcion 2026-05-10, got %v", body["fecha_adopcion"])
		}
		if _, present := body["foto_actual_2"]; present {
			t.Error("expected empty photo slot to be omitted")
		}
		writeEnvelope(t, w, map[string]any{
			"caso_exito": map[string]any{"id": 11, "animal_id": 3, "titulo": "Luna encontró su hogar"},
		})
	})

	caso, err := client.CasosExito.Create(context.Background(), CasoExitoInput{
		AnimalID:      3,
		Titulo:        "Luna encontró su hogar",
		Historia:      "Después de meses en tránsito, Luna fue adoptada.",
		FechaAdopcion: "2026-05-10",
		FotoActual1:   "https://cdn.example.com/luna-1.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caso.ID != 11 {
		t.Errorf("expected id 11, got %d", caso.ID)
	}
}

func TestUploadService_Upload(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Errorf("expected /api/upload, got %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "rocco.jpg" {
			t.Errorf("expected filename rocco.jpg, got %q", header.Filename)
		}
		writeEnvelope(t, w, map[string]any{"url": "https://cdn.example.com/rocco.jpg"})
	})

	url, err := client.Upload.Upload(context.Background(), "rocco.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/rocco.jpg" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestUploadService_RejectsExtension(t *testing.T) {
	client := New()
	_, err := client.Upload.Upload(context.Background(), "notes.txt", strings.NewReader("hi"))
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestUploadService_RejectsOversize(t *testing.T) {
	client := New()
	big := strings.NewReader(strings.Repeat("a", MaxFileSize+1))
	_, err := client.Upload.Upload(context.Background(), "big.jpg", big)
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
}
