package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adopcion "github.com/facundocornejo/adopcionResposanble"
	"github.com/facundocornejo/adopcionResposanble/internal/output"
	"github.com/facundocornejo/adopcionResposanble/wizard"
)

type scriptedCreator struct {
	failures int
	calls    int
	created  *adopcion.AdoptionRequest
}

func (c *scriptedCreator) Create(ctx context.Context, input adopcion.CreateAdoptionRequestInput) (*adopcion.AdoptionRequest, error) {
	c.calls++
	if c.calls <= c.failures {
		return nil, &adopcion.Error{Kind: adopcion.KindServer, StatusCode: 500}
	}
	return c.created, nil
}

func scriptedPrompter(input string) (*prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &prompter{in: bufio.NewReader(strings.NewReader(input)), out: out}, out
}

// finishedWizard returns a wizard standing on the final step with every
// answer filled in.
func finishedWizard(t *testing.T, creator wizard.RequestCreator) *wizard.Controller {
	t.Helper()
	animal := &adopcion.Animal{ID: 3, Nombre: "Luna", Estado: adopcion.EstadoDisponible}
	w, err := wizard.New(animal, creator)
	require.NoError(t, err)

	d := w.Draft()
	d.NombreCompleto = "Juan Pérez"
	d.Edad = 30
	d.Email = "juan@example.com"
	d.TelefonoWhatsapp = "1155551234"
	d.CiudadZona = "La Plata, Tolosa"
	d.TipoVivienda = adopcion.ViviendaCasaConPatio
	propia := true
	d.ViviendaPropia = &propia
	d.TodosDeAcuerdo = true
	convivientes := 2
	d.CantidadConvivientes = &convivientes
	ninos := false
	d.HayNinos = &ninos
	otros := false
	d.TieneOtrosAnimales = &otros
	d.ExperienciaPrevia = "Tuve perros toda mi vida"
	d.Motivacion = "Quiero darle un hogar a un animal rescatado"
	d.CompromisoCastracion = true
	d.CompromisoSeguimiento = true

	for w.Current() < wizard.LastStep {
		res := w.Next()
		require.True(t, res.Valid, "step %d should validate: %v", w.Current(), res.FieldErrors)
	}
	return w
}

func TestSubmitWithRetry_RetriesAfterBackendFailure(t *testing.T) {
	creator := &scriptedCreator{
		failures: 1,
		created:  &adopcion.AdoptionRequest{ID: 42, AnimalID: 3},
	}
	w := finishedWizard(t, creator)
	p, _ := scriptedPrompter("s\n")

	req, err := submitWithRetry(context.Background(), w, p)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, int64(42), req.ID)
	assert.Equal(t, 2, creator.calls)
	assert.Equal(t, wizard.PhaseSubmitted, w.Phase())
}

func TestSubmitWithRetry_DeclinePreservesDraft(t *testing.T) {
	creator := &scriptedCreator{failures: 10}
	w := finishedWizard(t, creator)
	p, _ := scriptedPrompter("n\n")

	req, err := submitWithRetry(context.Background(), w, p)
	require.Error(t, err)
	assert.Nil(t, req)

	var ce *output.CLIError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, output.ExitAPIError, ce.ExitCode)
	assert.Equal(t, 1, creator.calls)

	// The form is still on the final step with every answer intact, so
	// the applicant can try again without retyping anything.
	assert.Equal(t, wizard.PhaseFilling, w.Phase())
	assert.Equal(t, wizard.LastStep, w.Current())
	assert.Equal(t, "Juan Pérez", w.Draft().NombreCompleto)
}

func TestSubmitWithRetry_SecondFailureAsksAgain(t *testing.T) {
	creator := &scriptedCreator{
		failures: 2,
		created:  &adopcion.AdoptionRequest{ID: 7, AnimalID: 3},
	}
	w := finishedWizard(t, creator)
	p, _ := scriptedPrompter("s\ns\n")

	req, err := submitWithRetry(context.Background(), w, p)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, 3, creator.calls)
}
