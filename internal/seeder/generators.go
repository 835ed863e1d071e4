package seeder

import (
	"fmt"
	"strings"

	"github.com/Rana718/carga/internal/dataset"
)

const (
	NivelSecundario = "Secundario"
	NivelTerciario  = "Terciario"
	NivelGrado      = "Grado"
	NivelPosgrado   = "Posgrado"
	NivelDoctorado  = "Doctorado"

	MedioCelular  = "Celular"
	MedioTelefono = "Telefono"
	MedioEmail    = "Email"

	TipoCurso       = "Curso"
	TipoConferencia = "Conferencia"

	IdiomaNativo = "Español"
)

var (
	niveles            = []string{NivelSecundario, NivelTerciario, NivelGrado, NivelPosgrado, NivelDoctorado}
	estadosCiviles     = []string{"Soltero/a", "Casado/a", "Divorciado/a", "Viudo/a", "Conviviente"}
	sexos              = []string{"M", "F"}
	medios             = []string{MedioCelular, MedioTelefono, MedioEmail}
	tiposContacto      = []string{"Personal", "Empresarial", "Otro"}
	tiposCurso         = []string{TipoCurso, TipoConferencia}
	tiposActividad     = []string{"Autonomo", "Dependencia"}
	naturalezas        = []string{"Privado", "Publico"}
	parentescos        = []string{"Cónyuge", "Hijo", "Padre", "Pareja", "Hermano"}
	tiposDocumento     = []string{"DNI", "LC", "LE", "Pasaporte"}
	tiposPersonal      = []string{"No Docente", "Docente", "Contratado", "Becario"}
	tiposCaracter      = []string{"Titular", "Suplente", "Graduado", "Estudiante", "Interino"}
	dias               = []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes"}
	estadosPercepcion  = []string{"Suspendido", "Percibiendo"}
	participaciones    = []string{"Expositor", "Asistente", "Organizador", "Moderador"}
	nivelesIdioma      = []string{"Básico", "Intermedio", "Avanzado", "Nativo"}
	certificaciones    = []string{"First Certificate", "TOEFL", "DELF", "CELPE-Bras", "Goethe-Zertifikat", "Sin certificación"}
	cargos             = []string{"Profesor Titular", "Profesor Adjunto", "Jefe de Trabajos Prácticos", "Ayudante", "Director", "Coordinador", "Investigador"}
	categorias         = []string{"I", "II", "III", "IV", "V"}
	unidadesAcademicas = []string{"Facultad Regional Tucumán", "Facultad de Ingeniería", "Facultad de Ciencias Exactas", "Facultad de Filosofía y Letras", "Facultad de Ciencias Económicas"}
	tiposPercepcion    = []string{"Jubilación", "Pensión", "Retiro", "Subsidio"}
	regimenes          = []string{"General", "Docente", "Especial", "Provincial"}
	cajas              = []string{"ANSES", "Caja Popular de Ahorros", "Caja de Previsión Social", "IPSST", "Caja Notarial"}
	aseguradoras       = []string{"La Segunda", "Sancor Seguros", "Federación Patronal", "Mapfre", "Zurich", "La Caja", "Allianz"}
)

// BootstrapTitulo guarantees at least one tertiary title exists for PoseeTitulo.
var BootstrapTitulo = Titulo{Nivel: NivelTerciario, Titulo: "Técnico Superior en Programación"}

func (g *DataGenerator) Direccion(provincias []dataset.Provincia) Direccion {
	prov := pick(g.r, provincias)
	loc := pick(g.r, prov.Localidades)
	return Direccion{
		DireccionRef: DireccionRef{
			CodigoPostal: between(g.r, 1000, 9999),
			Calle:        pick(g.r, loc.Calles),
			Numero:       between(g.r, 1, 9999),
		},
		Localidad: loc.Nombre,
		Provincia: prov.Nombre,
	}
}

func (g *DataGenerator) Titulo() Titulo {
	nivel := pick(g.r, niveles)
	return Titulo{
		Nivel:  nivel,
		Titulo: fmt.Sprintf("%s %s (Plan %d)", pick(g.r, prefijosTitulo[nivel]), g.Disciplina(), between(g.r, 1960, 2024)),
	}
}

func (g *DataGenerator) Publicacion() Publicacion {
	autores := make([]string, between(g.r, 1, 3))
	for i := range autores {
		autores[i] = g.Apellido() + ", " + g.Nombre()
	}
	return Publicacion{
		IDPublicacion: g.ID(),
		Autores:       strings.Join(autores, "; "),
		Anio:          between(g.r, 1901, 2155),
		Titulo:        g.Frase(between(g.r, 3, 6)),
	}
}

func (g *DataGenerator) ReunionCientifica() ReunionCientifica {
	return ReunionCientifica{
		Titulo: fmt.Sprintf("Jornadas de %s %d", g.Disciplina(), g.r.Intn(100)),
		Fecha:  g.Fecha(1980, 2024),
	}
}

func (g *DataGenerator) Percepcion() Percepcion {
	return Percepcion{
		InstitucionCaja: pick(g.r, cajas) + " " + g.Ciudad(),
		Tipo:            fmt.Sprintf("%s %d", pick(g.r, tiposPercepcion), g.r.Intn(1000)),
		Regimen:         pick(g.r, regimenes),
		Causa:           g.Frase(3),
	}
}

func (g *DataGenerator) Seguro() Seguro {
	return Seguro{
		CodigoCompania:      g.ID(),
		CompaniaAseguradora: pick(g.r, aseguradoras),
		LugarEmision:        g.Ciudad(),
		FechaEmision:        g.Fecha(1990, 2024),
	}
}

func (g *DataGenerator) ObraSocial() ObraSocial {
	return ObraSocial{
		IDObraSocial: g.ID(),
		Nombre:       "O.S. " + pick(g.r, rubros) + " " + g.Apellido(),
	}
}

// Dasuten is the university staff health insurer every load includes.
func (g *DataGenerator) Dasuten() ObraSocial {
	return ObraSocial{IDObraSocial: g.ID(), Nombre: "D.A.S.U.Te.N"}
}

func (g *DataGenerator) Empleador(dir Direccion) Empleador {
	piso, depto := g.Piso()
	return Empleador{
		CUIT:         CUIL(g.DNI()),
		RazonSocial:  g.Empresa(),
		Piso:         piso,
		Departamento: depto,
		DireccionRef: dir.DireccionRef,
	}
}

func (g *DataGenerator) Institucion(nombre string, dir Direccion) Institucion {
	return Institucion{Nombre: nombre, DireccionRef: dir.DireccionRef}
}

func (g *DataGenerator) CursoConferencia(inst Institucion) CursoConferencia {
	c := CursoConferencia{
		NombreCurso: fmt.Sprintf("%s: %s %d", g.Disciplina(), g.Frase(2), g.r.Intn(10_000)),
		NombreInst:  inst.Nombre,
		Tipo:        pick(g.r, tiposCurso),
	}
	if chance(g.r, 50) {
		c.Descripcion = ptr(g.Frase(6))
	}
	return c
}

func (g *DataGenerator) ActividadExtension(inst Institucion) ActividadExtension {
	return ActividadExtension{
		IDActividad: g.ID(),
		NombreInst:  inst.Nombre,
		Cargo:       pick(g.r, cargos),
		Categoria:   pick(g.r, categorias),
	}
}

func (g *DataGenerator) ActividadInvestigacion(inst Institucion) ActividadInvestigacion {
	return ActividadInvestigacion{
		IDInvestigacion: g.ID(),
		NombreInst:      inst.Nombre,
		Categoria:       pick(g.r, categorias),
		AreaPpal:        g.Disciplina(),
	}
}

func (g *DataGenerator) Profesor(emp Empleador) Profesor {
	dni := g.DNI()
	p := Profesor{
		DNI:             dni,
		Nombre:          g.Nombre(),
		Apellido:        g.Apellido(),
		FechaNacimiento: g.Fecha(1950, 1995),
		Nacionalidad:    pick(g.r, nacionalidades),
		EstadoCivil:     pick(g.r, estadosCiviles),
		Sexo:            pick(g.r, sexos),
		CUIL:            CUIL(dni),
		CUITEmpleador:   emp.CUIT,
	}
	if chance(g.r, 50) {
		p.CUIT = ptr(CUIL(dni))
	}
	return p
}

func (g *DataGenerator) Contacto(p Profesor) Contacto {
	c := Contacto{
		DNIProfesor: p.DNI,
		Medio:       pick(g.r, medios),
		Tipo:        pick(g.r, tiposContacto),
	}
	switch c.Medio {
	case MedioEmail:
		c.Direccion = ptr(g.Email(p.Nombre, p.Apellido))
	case MedioTelefono:
		c.Numero = ptr(g.Telefono())
	default:
		c.Numero = ptr(g.Celular())
	}
	return c
}

func (g *DataGenerator) DependenciaEmpresa(p Profesor, dir Direccion, obra ObraSocial) DependenciaEmpresa {
	d := DependenciaEmpresa{
		DNIProfesor:        p.DNI,
		Nombre:             g.Empresa(),
		FechaIngreso:       g.Fecha(1980, 2024),
		Cargo:              pick(g.r, cargos),
		TipoActividad:      pick(g.r, tiposActividad),
		IDObraSocial:       obra.IDObraSocial,
		Observacion:        g.Frase(4),
		NaturalezaJuridica: pick(g.r, naturalezas),
		DireccionRef:       dir.DireccionRef,
	}
	if chance(g.r, 50) {
		d.Lugar = ptr(g.Ciudad())
	}
	return d
}

func (g *DataGenerator) Familiar(p Profesor, dir Direccion) Familiar {
	piso, depto := g.Piso()
	return Familiar{
		DNIProfesor:     p.DNI,
		DNIFamiliar:     g.DNI(),
		Nombre:          g.Nombre(),
		Apellido:        p.Apellido,
		Parentesco:      pick(g.r, parentescos),
		FechaNacimiento: g.Fecha(1940, 2020),
		TipoDocumento:   pick(g.r, tiposDocumento),
		Porcentaje:      float64(between(g.r, 1, 100)) / 100,
		Piso:            piso,
		Departamento:    depto,
		DireccionRef:    dir.DireccionRef,
	}
}

func (g *DataGenerator) DocObraSocial(p Profesor, obra ObraSocial) DocObraSocial {
	return DocObraSocial{
		IDObraSocial:    obra.IDObraSocial,
		DNIProfesor:     p.DNI,
		TipoPersonal:    pick(g.r, tiposPersonal),
		TipoCaracter:    pick(g.r, tiposCaracter),
		PrestaServicios: chance(g.r, 50),
		Dependencia:     pick(g.r, unidadesAcademicas),
	}
}

func (g *DataGenerator) DeclaracionJurada(p Profesor) DeclaracionJurada {
	return DeclaracionJurada{
		IDDeclaracion: g.ID(),
		DNIProfesor:   p.DNI,
		Fecha:         g.Fecha(2000, 2024),
		Lugar:         g.Ciudad(),
	}
}

// DeclaracionDeCargo declares the position held at dep, at dep's address.
func (g *DataGenerator) DeclaracionDeCargo(dep DependenciaEmpresa) DeclaracionDeCargo {
	return DeclaracionDeCargo{
		IDDeclaracion:     g.ID(),
		CumpleHorario:     fmt.Sprintf("%d horas semanales", between(g.r, 4, 40)),
		Reparticion:       pick(g.r, unidadesAcademicas),
		DNIProfesor:       dep.DNIProfesor,
		NombreDependencia: dep.Nombre,
		DireccionRef:      dep.DireccionRef,
	}
}

func (g *DataGenerator) AntecedenteProfesional(p Profesor, decl DeclaracionDeCargo) AntecedenteProfesional {
	desde := g.Fecha(1980, 2020)
	return AntecedenteProfesional{
		DNIProfesor:   p.DNI,
		Cargo:         pick(g.r, cargos),
		Empresa:       g.Empresa(),
		TipoActividad: pick(g.r, rubros),
		Desde:         desde,
		Hasta:         desde.AddDate(0, 0, 365*between(g.r, 1, 4)),
		IDDeclaracion: decl.IDDeclaracion,
	}
}

func (g *DataGenerator) AntecedenteDocente(p Profesor, inst Institucion, decl DeclaracionDeCargo) AntecedenteDocente {
	desde := g.Fecha(1980, 2020)
	a := AntecedenteDocente{
		NombreInst:      inst.Nombre,
		UnidadAcademica: pick(g.r, unidadesAcademicas),
		Cargo:           pick(g.r, cargos),
		Desde:           desde,
		Dedicacion:      between(g.r, 1, 8),
		DNIProfesor:     p.DNI,
		IDDeclaracion:   decl.IDDeclaracion,
	}
	if chance(g.r, 50) {
		a.Hasta = ptr(desde.AddDate(0, 0, 365))
	}
	return a
}

func (g *DataGenerator) Horario(decl DeclaracionDeCargo) Horario {
	inicio := between(g.r, 7, 20)
	fin := inicio + between(g.r, 1, 3)
	minutos := pick(g.r, []int{0, 30})
	return Horario{
		IDDeclaracion: decl.IDDeclaracion,
		Dia:           pick(g.r, dias),
		RangoHorario:  fmt.Sprintf("%02d:%02d:00 - %02d:%02d:00", inicio, minutos, fin, minutos),
		NombreCatedra: g.Disciplina(),
	}
}

// AtendioA lasts a month for courses and a day for conferences.
func (g *DataGenerator) AtendioA(curso CursoConferencia, p Profesor) AtendioA {
	desde := g.Fecha(1990, 2024)
	days := 1
	if curso.Tipo == TipoCurso {
		days = 30
	}
	return AtendioA{
		NombreCurso: curso.NombreCurso,
		DNIProfesor: p.DNI,
		Desde:       desde,
		Hasta:       desde.AddDate(0, 0, days),
	}
}

func (g *DataGenerator) SeDaIdioma(idioma Idioma, inst Institucion) SeDaIdioma {
	return SeDaIdioma{NombreIdioma: idioma.Nombre, NombreInst: inst.Nombre}
}

func (g *DataGenerator) ConoceIdioma(p Profesor, idioma Idioma) ConoceIdioma {
	c := ConoceIdioma{
		DNIProfesor:   p.DNI,
		NombreIdioma:  idioma.Nombre,
		Certificacion: pick(g.r, certificaciones),
		Nivel:         pick(g.r, nivelesIdioma),
	}
	if idioma.Nombre == IdiomaNativo {
		c.Certificacion = "Sin certificación"
		c.Nivel = "Nativo"
	}
	return c
}

func (g *DataGenerator) Beneficia(f Familiar, obra ObraSocial) Beneficia {
	return Beneficia{DNIProfesor: f.DNIProfesor, DNIFamiliar: f.DNIFamiliar, IDObraSocial: obra.IDObraSocial}
}

func (g *DataGenerator) PoseeTitulo(p Profesor, t Titulo) PoseeTitulo {
	desde := g.Fecha(1970, 2020)
	return PoseeTitulo{
		DNI:    p.DNI,
		Nivel:  t.Nivel,
		Titulo: t.Titulo,
		Desde:  desde,
		Hasta:  desde.AddDate(5, 0, 0),
	}
}

func (g *DataGenerator) SeDaTitulo(t Titulo, inst Institucion) SeDaTitulo {
	return SeDaTitulo{Nivel: t.Nivel, Titulo: t.Titulo, NombreInst: inst.Nombre}
}

func (g *DataGenerator) RealizaInves(act ActividadInvestigacion, p Profesor) RealizaInves {
	desde := g.Fecha(1990, 2024)
	r := RealizaInves{
		IDInvestigacion: act.IDInvestigacion,
		DNIProfesor:     p.DNI,
		Desde:           desde,
		Dedicacion:      between(g.r, 1, 8),
	}
	if chance(g.r, 50) {
		r.Hasta = ptr(desde.AddDate(0, 0, 365))
	}
	return r
}

func (g *DataGenerator) RealizoAct(act ActividadExtension, p Profesor) RealizoAct {
	desde := g.Fecha(1990, 2024)
	return RealizoAct{
		IDActividad: act.IDActividad,
		DNIProfesor: p.DNI,
		Acciones:    g.Frase(5),
		Dedicacion:  between(g.r, 1, 8),
		Desde:       desde,
		Hasta:       desde.AddDate(0, 0, 365),
	}
}

func (g *DataGenerator) ReferenciaBibliografica(fuente, citador Publicacion) ReferenciaBibliografica {
	return ReferenciaBibliografica{IDFuente: fuente.IDPublicacion, IDCitador: citador.IDPublicacion}
}

func (g *DataGenerator) Publico(pub Publicacion, p Profesor) Publico {
	return Publico{IDPublicacion: pub.IDPublicacion, DNIProfesor: p.DNI}
}

func (g *DataGenerator) ParticipoEnReunion(reunion ReunionCientifica, p Profesor) ParticipoEnReunion {
	return ParticipoEnReunion{
		DNIProfesor:   p.DNI,
		Titulo:        reunion.Titulo,
		Fecha:         reunion.Fecha,
		Participacion: pick(g.r, participaciones),
	}
}

func (g *DataGenerator) PercibeEn(perc Percepcion, p Profesor) PercibeEn {
	return PercibeEn{
		DNI:              p.DNI,
		InstitucionCaja:  perc.InstitucionCaja,
		Tipo:             perc.Tipo,
		EstadoPercepcion: pick(g.r, estadosPercepcion),
		Desde:            g.Fecha(1990, 2024),
	}
}

func (g *DataGenerator) ResideEn(p Profesor, dir Direccion) ResideEn {
	piso, depto := g.Piso()
	return ResideEn{
		DNIProfesor:  p.DNI,
		DireccionRef: dir.DireccionRef,
		Piso:         piso,
		Departamento: depto,
	}
}

func (g *DataGenerator) AseguraA(seguro Seguro, f Familiar) AseguraA {
	return AseguraA{
		DNIProfesor:      f.DNIProfesor,
		DNIFamiliar:      f.DNIFamiliar,
		CodigoCompania:   seguro.CodigoCompania,
		CapitalAsegurado: float64(between(g.r, 10_000_000, 100_000_000)) / 100,
		FechaIngreso:     g.Fecha(1990, 2024),
	}
}
