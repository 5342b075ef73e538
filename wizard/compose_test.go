package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeCohabitation(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  string
	}{
		{
			name:  "owner without children",
			draft: Draft{CantidadConvivientes: intPtr(2), ViviendaPropia: boolPtr(true)},
			want:  "2 persona(s)",
		},
		{
			name: "owner with children",
			draft: Draft{
				CantidadConvivientes: intPtr(4),
				ViviendaPropia:       boolPtr(true),
				HayNinos:             boolPtr(true),
				EdadesNinos:          "5 y 8",
			},
			want: "4 persona(s), con niños de 5 y 8",
		},
		{
			name: "renter without landlord permission",
			draft: Draft{
				CantidadConvivientes: intPtr(1),
				ViviendaPropia:       boolPtr(false),
			},
			want: "1 persona(s) (alquila)",
		},
		{
			name: "renter with landlord permission",
			draft: Draft{
				CantidadConvivientes: intPtr(1),
				ViviendaPropia:       boolPtr(false),
				PermiteMascotas:      boolPtr(true),
			},
			want: "1 persona(s) (alquila, permite mascotas)",
		},
		{
			name: "everything at once",
			draft: Draft{
				CantidadConvivientes: intPtr(3),
				ViviendaPropia:       boolPtr(false),
				PermiteMascotas:      boolPtr(true),
				HayNinos:             boolPtr(true),
				EdadesNinos:          "10",
			},
			want: "3 persona(s), con niños de 10 (alquila, permite mascotas)",
		},
		{
			name:  "unanswered counts as zero",
			draft: Draft{},
			want:  "0 persona(s)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComposeCohabitation(&tc.draft))
		})
	}
}

func TestComposeInput_NoOtherAnimals(t *testing.T) {
	d := &Draft{}
	fillValid(d)

	input := composeInput(d, 9, ComposeCohabitation)

	assert.Equal(t, int64(9), input.AnimalID)
	assert.False(t, input.TieneOtrosAnimales)
	assert.Nil(t, input.OtrosAnimalesCastrados, "absent answer stays absent on the wire")
}

func TestComposeInput_CustomComposer(t *testing.T) {
	d := &Draft{}
	fillValid(d)

	input := composeInput(d, 9, func(*Draft) string { return "custom summary" })

	assert.Equal(t, "custom summary", input.ViveSoloAcompanado)
}
