package seeder

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nombres = []string{
		"Juan", "María", "Lautaro", "Lucía", "Santiago", "Valentina", "Mateo", "Camila",
		"Martín", "Sofía", "Joaquín", "Florencia", "Tomás", "Agustina", "Facundo", "Julieta",
		"Nicolás", "Micaela", "Gonzalo", "Carolina", "Federico", "Paula", "Ignacio", "Romina",
		"Diego", "Natalia", "Ezequiel", "Belén", "Matías", "Gabriela",
	}
	apellidos = []string{
		"González", "Rodríguez", "Gómez", "Fernández", "López", "Díaz", "Martínez", "Pérez",
		"García", "Sánchez", "Romero", "Sosa", "Álvarez", "Torres", "Ruiz", "Ramírez",
		"Flores", "Acosta", "Benítez", "Medina", "Herrera", "Suárez", "Aguirre", "Giménez",
		"Gutiérrez", "Pereyra", "Rojas", "Molina", "Castro", "Ortiz", "Quintana", "Paz",
	}
	nacionalidades = []string{
		"Argentina", "Uruguaya", "Chilena", "Paraguaya", "Boliviana", "Peruana", "Brasileña",
		"Colombiana", "Venezolana", "Española", "Italiana", "Mexicana",
	}
	ciudades = []string{
		"San Miguel de Tucumán", "Córdoba", "Rosario", "Mendoza", "La Plata", "Mar del Plata",
		"Salta", "Santa Fe", "San Juan", "Resistencia", "Neuquén", "Posadas", "Corrientes",
		"Paraná", "Bahía Blanca", "Santiago del Estero",
	}
	rubros = []string{
		"Servicios", "Tecnología", "Construcciones", "Consultora", "Logística", "Agropecuaria",
		"Alimentos", "Sistemas", "Ingeniería", "Transporte", "Comercial", "Software",
	}
	sociedades = []string{"S.A.", "S.R.L.", "S.A.S.", "y Asociados", "Hnos."}
	palabras   = []string{
		"gestión", "calidad", "docencia", "investigación", "extensión", "posgrado", "innovación",
		"redes", "datos", "algoritmos", "sistemas", "energía", "ambiente", "salud", "educación",
		"robótica", "seguridad", "software", "matemática", "física", "química", "economía",
	}
	disciplinas = []string{
		"Sistemas de Información", "Ingeniería Civil", "Ingeniería Eléctrica", "Ingeniería Mecánica",
		"Ingeniería Química", "Ingeniería Industrial", "Matemática", "Física", "Química",
		"Ciencias de la Computación", "Administración", "Economía", "Derecho", "Medicina",
		"Arquitectura", "Letras", "Historia", "Educación", "Biotecnología", "Electrónica",
	}
	prefijosTitulo = map[string][]string{
		NivelSecundario: {"Bachiller con orientación en", "Técnico en"},
		NivelTerciario:  {"Técnico Superior en", "Profesor de"},
		NivelGrado:      {"Licenciado en", "Ingeniero en", "Analista en"},
		NivelPosgrado:   {"Especialista en", "Magíster en"},
		NivelDoctorado:  {"Doctor en"},
	}
	dominios = []string{"gmail.com", "hotmail.com", "yahoo.com.ar", "outlook.com", "frt.utn.edu.ar"}
)

// DataGenerator builds field values and records from an injected RandomSource.
// It holds no other state, so two generators over equally seeded sources
// produce identical output.
type DataGenerator struct {
	r RandomSource
}

func NewDataGenerator(r RandomSource) *DataGenerator {
	return &DataGenerator{r: r}
}

// CUIL derives the tax identifier used for both CUIL and CUIT from a DNI.
func CUIL(dni string) string {
	return "20" + dni + "8"
}

func (g *DataGenerator) DNI() string {
	return fmt.Sprintf("%08d", g.r.Intn(100_000_000))
}

// ID returns a positive identifier that fits a signed 32-bit column.
func (g *DataGenerator) ID() int {
	return 1 + int(g.r.Int63n(1<<31-2))
}

func (g *DataGenerator) Nombre() string {
	return pick(g.r, nombres)
}

func (g *DataGenerator) Apellido() string {
	return pick(g.r, apellidos)
}

func (g *DataGenerator) Ciudad() string {
	return pick(g.r, ciudades)
}

func (g *DataGenerator) Palabra() string {
	return pick(g.r, palabras)
}

func (g *DataGenerator) Frase(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = g.Palabra()
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *DataGenerator) Empresa() string {
	return fmt.Sprintf("%s %s %s", g.Apellido(), pick(g.r, rubros), pick(g.r, sociedades))
}

func (g *DataGenerator) Disciplina() string {
	return pick(g.r, disciplinas)
}

func (g *DataGenerator) Email(nombre, apellido string) string {
	local := fmt.Sprintf("%s.%s%d", ascii(nombre), ascii(apellido), g.r.Intn(1000))
	return strings.ToLower(local) + "@" + pick(g.r, dominios)
}

func (g *DataGenerator) Telefono() string {
	return fmt.Sprintf("0381 4%02d-%04d", g.r.Intn(100), g.r.Intn(10_000))
}

func (g *DataGenerator) Celular() string {
	return fmt.Sprintf("+54 9 381 %03d-%04d", g.r.Intn(1000), g.r.Intn(10_000))
}

// Fecha returns a UTC date-only value in [fromYear-01-01, toYear-12-31].
func (g *DataGenerator) Fecha(fromYear, toYear int) time.Time {
	from := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(toYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	return from.AddDate(0, 0, g.r.Intn(days))
}

// Piso returns a floor and apartment letter, both set or both nil.
func (g *DataGenerator) Piso() (*int, *string) {
	if !chance(g.r, 50) {
		return nil, nil
	}
	piso := between(g.r, 1, 999)
	depto := string(rune('A' + g.r.Intn(26)))
	return &piso, &depto
}

func ascii(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ptr[T any](v T) *T {
	return &v
}
