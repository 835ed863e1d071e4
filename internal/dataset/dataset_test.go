package dataset

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvinciasGroups(t *testing.T) {
	input := `localidad,calle,provincia
Yerba Buena, Av. Aconquija ,Tucumán
Yerba Buena,Av. Perón,Tucumán
Córdoba,Av. Colón,Córdoba
Tafí Viejo,Av. Alem,Tucumán
incompleta,Tucumán
`
	got, err := ParseProvincias(strings.NewReader(input))
	require.NoError(t, err)

	want := []Provincia{
		{Nombre: "Tucumán", Localidades: []Localidad{
			{Nombre: "Yerba Buena", Calles: []string{"Av. Aconquija", "Av. Perón"}},
			{Nombre: "Tafí Viejo", Calles: []string{"Av. Alem"}},
		}},
		{Nombre: "Córdoba", Localidades: []Localidad{
			{Nombre: "Córdoba", Calles: []string{"Av. Colón"}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseProvincias() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListFlattensAndTrims(t *testing.T) {
	got, err := ParseList(strings.NewReader("Español; Inglés ;\nFrancés\n\nInglés;Guaraní\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Español", "Inglés", "Francés", "Guaraní"}, got)
}

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Provincias)
	assert.Contains(t, ds.Idiomas, "Español")
	assert.Contains(t, ds.Universidades, "Universidad Tecnológica Nacional")
	for _, p := range ds.Provincias {
		require.NotEmpty(t, p.Localidades, p.Nombre)
		for _, l := range p.Localidades {
			require.NotEmpty(t, l.Calles, l.Nombre)
		}
	}
}

func TestLoadFSRejectsEmptyDataset(t *testing.T) {
	fsys := fstest.MapFS{
		ProvinciasFile:    {Data: []byte("localidad,calle,provincia\nSalta,Caseros,Salta\n")},
		UniversidadesFile: {Data: []byte(";;\n")},
		IdiomasFile:       {Data: []byte("Español\n")},
	}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), UniversidadesFile)
}

func TestLoadFSMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProvinciasFile)
}
