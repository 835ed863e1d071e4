package seeder

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/carga/internal/dataset"
)

func testDatasets(t *testing.T) *dataset.Datasets {
	t.Helper()
	data, err := dataset.Load("")
	require.NoError(t, err)
	return data
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	data := testDatasets(t)
	build := func() []any {
		g := NewDataGenerator(NewRandomSource(42))
		dir := g.Direccion(data.Provincias)
		emp := g.Empleador(dir)
		p := g.Profesor(emp)
		return []any{dir, emp, p, g.Contacto(p), g.Familiar(p, dir), g.Titulo(), g.Publicacion()}
	}

	if diff := cmp.Diff(build(), build()); diff != "" {
		t.Errorf("same seed produced different records (-first +second):\n%s", diff)
	}
}

func TestDNIAndCUIL(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(7))
	for i := 0; i < 200; i++ {
		dni := g.DNI()
		require.Len(t, dni, 8)
		assert.Regexp(t, `^\d{8}$`, dni)
		assert.Equal(t, "20"+dni+"8", CUIL(dni))
	}
}

func TestIDFitsSignedInt32(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(7))
	for i := 0; i < 1000; i++ {
		id := g.ID()
		assert.GreaterOrEqual(t, id, 1)
		assert.Less(t, id, 1<<31-1)
	}
}

func TestContactoCorrelation(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(3))
	p := Profesor{DNI: "30123456", Nombre: "María", Apellido: "Núñez"}

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		c := g.Contacto(p)
		seen[c.Medio] = true
		assert.Equal(t, p.DNI, c.DNIProfesor)

		switch c.Medio {
		case MedioEmail:
			require.NotNil(t, c.Direccion)
			assert.Nil(t, c.Numero)
			assert.Contains(t, *c.Direccion, "@")
			assert.Contains(t, *c.Direccion, "maria.nunez")
		case MedioTelefono, MedioCelular:
			require.NotNil(t, c.Numero)
			assert.Nil(t, c.Direccion)
		default:
			t.Fatalf("unexpected medium %q", c.Medio)
		}
	}
	assert.Len(t, seen, 3)
}

func TestDateOrdering(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(11))
	p := Profesor{DNI: "30123456"}
	curso := CursoConferencia{NombreCurso: "Redes", Tipo: TipoCurso}
	conf := CursoConferencia{NombreCurso: "Datos", Tipo: TipoConferencia}

	for i := 0; i < 100; i++ {
		a := g.AtendioA(curso, p)
		assert.Equal(t, a.Desde.AddDate(0, 0, 30), a.Hasta)

		c := g.AtendioA(conf, p)
		assert.Equal(t, c.Desde.AddDate(0, 0, 1), c.Hasta)

		pt := g.PoseeTitulo(p, BootstrapTitulo)
		assert.True(t, pt.Hasta.After(pt.Desde))

		ap := g.AntecedenteProfesional(p, DeclaracionDeCargo{IDDeclaracion: 1})
		assert.True(t, ap.Hasta.After(ap.Desde))

		ad := g.AntecedenteDocente(p, Institucion{Nombre: "UTN"}, DeclaracionDeCargo{IDDeclaracion: 1})
		if ad.Hasta != nil {
			assert.True(t, ad.Hasta.After(ad.Desde))
		}

		ra := g.RealizoAct(ActividadExtension{IDActividad: 1}, p)
		assert.False(t, ra.Hasta.Before(ra.Desde))
	}
}

func TestFechaIsDateOnly(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(5))
	for i := 0; i < 100; i++ {
		d := g.Fecha(2000, 2001)
		assert.Equal(t, time.UTC, d.Location())
		assert.Equal(t, d, d.Truncate(24*time.Hour))
		assert.GreaterOrEqual(t, d.Year(), 2000)
		assert.LessOrEqual(t, d.Year(), 2001)
	}
}

func TestPisoIsAllOrNothing(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(9))
	for i := 0; i < 200; i++ {
		piso, depto := g.Piso()
		assert.Equal(t, piso == nil, depto == nil)
	}
}

func TestConoceIdiomaNativo(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(1))
	p := Profesor{DNI: "30123456"}

	c := g.ConoceIdioma(p, Idioma{Nombre: IdiomaNativo})
	assert.Equal(t, "Nativo", c.Nivel)
	assert.Equal(t, "Sin certificación", c.Certificacion)
}

func TestDeclaracionDeCargoFollowsDependencia(t *testing.T) {
	g := NewDataGenerator(NewRandomSource(1))
	dep := DependenciaEmpresa{
		DNIProfesor:  "30123456",
		Nombre:       "Paz Software S.A.",
		DireccionRef: DireccionRef{CodigoPostal: 4000, Calle: "San Martín", Numero: 120},
	}

	decl := g.DeclaracionDeCargo(dep)
	assert.Equal(t, dep.DNIProfesor, decl.DNIProfesor)
	assert.Equal(t, dep.Nombre, decl.NombreDependencia)
	assert.Equal(t, dep.DireccionRef, decl.DireccionRef)
}

func TestPickDistinct(t *testing.T) {
	r := NewRandomSource(13)
	items := []string{"a", "b", "c", "d"}

	for k := 0; k <= 6; k++ {
		got := pickDistinct(r, items, k)
		assert.Len(t, got, min(k, len(items)))

		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate %s", s)
			seen[s] = true
		}
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	r := NewRandomSource(17)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := between(r, 1, 4)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 3, between(r, 3, 3))
}
