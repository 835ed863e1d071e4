package seeder

import "time"

// Persistable is implemented by every record type the loader can store.
type Persistable interface {
	TableName() string
}

// DireccionRef is the natural key of an address, embedded wherever a table
// references Direcciones.
type DireccionRef struct {
	CodigoPostal int    `db:"CodigoPostal"`
	Calle        string `db:"Calle"`
	Numero       int    `db:"Numero"`
}

type Direccion struct {
	DireccionRef
	Localidad string `db:"Localidad"`
	Provincia string `db:"Provincia"`
}

func (Direccion) TableName() string { return "Direcciones" }

type Titulo struct {
	Nivel  string `db:"Nivel"`
	Titulo string `db:"Titulo"`
}

func (Titulo) TableName() string { return "Titulos" }

type Publicacion struct {
	IDPublicacion int    `db:"IDPublicacion"`
	Autores       string `db:"Autores"`
	Anio          int    `db:"Anio"`
	Titulo        string `db:"Titulo"`
}

func (Publicacion) TableName() string { return "Publicaciones" }

type ReunionCientifica struct {
	Titulo string    `db:"Titulo"`
	Fecha  time.Time `db:"Fecha"`
}

func (ReunionCientifica) TableName() string { return "ReunionesCientificas" }

type Percepcion struct {
	InstitucionCaja string `db:"InstitucionCaja"`
	Tipo            string `db:"Tipo"`
	Regimen         string `db:"Regimen"`
	Causa           string `db:"Causa"`
}

func (Percepcion) TableName() string { return "Percepciones" }

type Seguro struct {
	CodigoCompania      int       `db:"CodigoCompania"`
	CompaniaAseguradora string    `db:"CompaniaAseguradora"`
	LugarEmision        string    `db:"LugarEmision"`
	FechaEmision        time.Time `db:"FechaEmision"`
}

func (Seguro) TableName() string { return "Seguros" }

type ObraSocial struct {
	IDObraSocial int    `db:"IDObraSocial"`
	Nombre       string `db:"Nombre"`
}

func (ObraSocial) TableName() string { return "ObrasSociales" }

type Idioma struct {
	Nombre string `db:"Nombre"`
}

func (Idioma) TableName() string { return "Idiomas" }

type Empleador struct {
	CUIT         string  `db:"CUIT"`
	RazonSocial  string  `db:"RazonSocial"`
	Piso         *int    `db:"Piso"`
	Departamento *string `db:"Departamento"`
	DireccionRef
}

func (Empleador) TableName() string { return "Empleadores" }

type Institucion struct {
	Nombre string `db:"Nombre"`
	DireccionRef
}

func (Institucion) TableName() string { return "Instituciones" }

type CursoConferencia struct {
	NombreCurso string  `db:"NombreCurso"`
	NombreInst  string  `db:"NombreInst"`
	Descripcion *string `db:"Descripcion"`
	Tipo        string  `db:"Tipo"`
}

func (CursoConferencia) TableName() string { return "CursosConferencias" }

type ActividadExtension struct {
	IDActividad int    `db:"IDActividad"`
	NombreInst  string `db:"NombreInst"`
	Cargo       string `db:"Cargo"`
	Categoria   string `db:"Categoria"`
}

func (ActividadExtension) TableName() string { return "ActividadesExtensionUniversitaria" }

type ActividadInvestigacion struct {
	IDInvestigacion int    `db:"IDInvestigacion"`
	NombreInst      string `db:"NombreInst"`
	Categoria       string `db:"Categoria"`
	AreaPpal        string `db:"AreaPpal"`
}

func (ActividadInvestigacion) TableName() string { return "ActividadesInvestigacion" }

type Profesor struct {
	DNI             string    `db:"DNI"`
	Nombre          string    `db:"Nombre"`
	Apellido        string    `db:"Apellido"`
	FechaNacimiento time.Time `db:"FechaNacimiento"`
	Nacionalidad    string    `db:"Nacionalidad"`
	EstadoCivil     string    `db:"EstadoCivil"`
	Sexo            string    `db:"Sexo"`
	CUIT            *string   `db:"CUIT"`
	CUIL            string    `db:"CUIL"`
	CUITEmpleador   string    `db:"CUITEmpleador"`
}

func (Profesor) TableName() string { return "Profesores" }

// Contacto is a single contact channel. Email contacts carry Direccion,
// phone contacts carry Numero; never both.
type Contacto struct {
	DNIProfesor string  `db:"DNIProfesor"`
	Medio       string  `db:"Medio"`
	Tipo        string  `db:"Tipo"`
	Direccion   *string `db:"Direccion"`
	Numero      *string `db:"Numero"`
}

func (Contacto) TableName() string { return "Contactos" }

type DependenciaEmpresa struct {
	DNIProfesor        string    `db:"DNIProfesor"`
	Nombre             string    `db:"Nombre"`
	FechaIngreso       time.Time `db:"FechaIngreso"`
	Cargo              string    `db:"Cargo"`
	Lugar              *string   `db:"Lugar"`
	TipoActividad      string    `db:"TipoActividad"`
	IDObraSocial       int       `db:"IDObraSocial"`
	Observacion        string    `db:"Observacion"`
	NaturalezaJuridica string    `db:"NaturalezaJuridica"`
	DireccionRef
}

func (DependenciaEmpresa) TableName() string { return "DependenciasEmpresas" }

type Familiar struct {
	DNIProfesor     string    `db:"DNIProfesor"`
	DNIFamiliar     string    `db:"DNIFamiliar"`
	Nombre          string    `db:"Nombre"`
	Apellido        string    `db:"Apellido"`
	Parentesco      string    `db:"Parentesco"`
	FechaNacimiento time.Time `db:"FechaNacimiento"`
	TipoDocumento   string    `db:"TipoDocumento"`
	Porcentaje      float64   `db:"Porcentaje"`
	Piso            *int      `db:"Piso"`
	Departamento    *string   `db:"Departamento"`
	DireccionRef
}

func (Familiar) TableName() string { return "Familiares" }

type DocObraSocial struct {
	IDObraSocial    int    `db:"IDObraSocial"`
	DNIProfesor     string `db:"DNIProfesor"`
	TipoPersonal    string `db:"TipoPersonal"`
	TipoCaracter    string `db:"TipoCaracter"`
	PrestaServicios bool   `db:"PrestaServicios"`
	Dependencia     string `db:"Dependencia"`
}

func (DocObraSocial) TableName() string { return "DocObraSocial" }

type DeclaracionJurada struct {
	IDDeclaracion int       `db:"IDDeclaracion"`
	DNIProfesor   string    `db:"DNIProfesor"`
	Fecha         time.Time `db:"Fecha"`
	Lugar         string    `db:"Lugar"`
}

func (DeclaracionJurada) TableName() string { return "DeclaracionesJuradas" }

type DeclaracionDeCargo struct {
	IDDeclaracion     int    `db:"IDDeclaracion"`
	CumpleHorario     string `db:"CumpleHorario"`
	Reparticion       string `db:"Reparticion"`
	DNIProfesor       string `db:"DNIProfesor"`
	NombreDependencia string `db:"NombreDependencia"`
	DireccionRef
}

func (DeclaracionDeCargo) TableName() string { return "DeclaracionesDeCargo" }

type AntecedenteProfesional struct {
	DNIProfesor   string    `db:"DNIProfesor"`
	Cargo         string    `db:"Cargo"`
	Empresa       string    `db:"Empresa"`
	TipoActividad string    `db:"TipoActividad"`
	Desde         time.Time `db:"Desde"`
	Hasta         time.Time `db:"Hasta"`
	IDDeclaracion int       `db:"IDDeclaracion"`
}

func (AntecedenteProfesional) TableName() string { return "AntecedentesProfesionales" }

type AntecedenteDocente struct {
	NombreInst      string     `db:"NombreInst"`
	UnidadAcademica string     `db:"UnidadAcademica"`
	Cargo           string     `db:"Cargo"`
	Desde           time.Time  `db:"Desde"`
	Hasta           *time.Time `db:"Hasta"`
	Dedicacion      int        `db:"Dedicacion"`
	DNIProfesor     string     `db:"DNIProfesor"`
	IDDeclaracion   int        `db:"IDDeclaracion"`
}

func (AntecedenteDocente) TableName() string { return "AntecedentesDocentes" }

type Horario struct {
	IDDeclaracion int    `db:"IDDeclaracion"`
	Dia           string `db:"Dia"`
	RangoHorario  string `db:"RangoHorario"`
	NombreCatedra string `db:"NombreCatedra"`
}

func (Horario) TableName() string { return "Horarios" }

type AtendioA struct {
	NombreCurso string    `db:"NombreCurso"`
	DNIProfesor string    `db:"DNIProfesor"`
	Desde       time.Time `db:"Desde"`
	Hasta       time.Time `db:"Hasta"`
}

func (AtendioA) TableName() string { return "AtendioA" }

type SeDaIdioma struct {
	NombreIdioma string `db:"NombreIdioma"`
	NombreInst   string `db:"NombreInst"`
}

func (SeDaIdioma) TableName() string { return "SeDaIdioma" }

type ConoceIdioma struct {
	DNIProfesor   string `db:"DNIProfesor"`
	NombreIdioma  string `db:"NombreIdioma"`
	Certificacion string `db:"Certificacion"`
	Nivel         string `db:"Nivel"`
}

func (ConoceIdioma) TableName() string { return "ConoceIdioma" }

type Beneficia struct {
	DNIProfesor  string `db:"DNIProfesor"`
	DNIFamiliar  string `db:"DNIFamiliar"`
	IDObraSocial int    `db:"IDObraSocial"`
}

func (Beneficia) TableName() string { return "Beneficia" }

type PoseeTitulo struct {
	DNI    string    `db:"DNI"`
	Nivel  string    `db:"Nivel"`
	Titulo string    `db:"Titulo"`
	Desde  time.Time `db:"Desde"`
	Hasta  time.Time `db:"Hasta"`
}

func (PoseeTitulo) TableName() string { return "PoseeTitulo" }

type SeDaTitulo struct {
	Nivel      string `db:"Nivel"`
	Titulo     string `db:"Titulo"`
	NombreInst string `db:"NombreInst"`
}

func (SeDaTitulo) TableName() string { return "SeDaTitulo" }

type RealizaInves struct {
	IDInvestigacion int        `db:"IDInvestigacion"`
	DNIProfesor     string     `db:"DNIProfesor"`
	Desde           time.Time  `db:"Desde"`
	Hasta           *time.Time `db:"Hasta"`
	Dedicacion      int        `db:"Dedicacion"`
}

func (RealizaInves) TableName() string { return "RealizaInves" }

type RealizoAct struct {
	IDActividad int       `db:"IDActividad"`
	DNIProfesor string    `db:"DNIProfesor"`
	Acciones    string    `db:"Acciones"`
	Dedicacion  int       `db:"Dedicacion"`
	Desde       time.Time `db:"Desde"`
	Hasta       time.Time `db:"Hasta"`
}

func (RealizoAct) TableName() string { return "RealizoAct" }

type ReferenciaBibliografica struct {
	IDFuente  int `db:"IDFuente"`
	IDCitador int `db:"IDCitador"`
}

func (ReferenciaBibliografica) TableName() string { return "ReferenciaBibliografica" }

type Publico struct {
	IDPublicacion int    `db:"IDPublicacion"`
	DNIProfesor   string `db:"DNIProfesor"`
}

func (Publico) TableName() string { return "Publico" }

type ParticipoEnReunion struct {
	DNIProfesor   string    `db:"DNIProfesor"`
	Titulo        string    `db:"Titulo"`
	Fecha         time.Time `db:"Fecha"`
	Participacion string    `db:"Participacion"`
}

func (ParticipoEnReunion) TableName() string { return "ParticipoEnReunion" }

type PercibeEn struct {
	DNI              string    `db:"DNI"`
	InstitucionCaja  string    `db:"InstitucionCaja"`
	Tipo             string    `db:"Tipo"`
	EstadoPercepcion string    `db:"EstadoPercepcion"`
	Desde            time.Time `db:"Desde"`
}

func (PercibeEn) TableName() string { return "PercibeEn" }

type ResideEn struct {
	DNIProfesor string `db:"DNIProfesor"`
	DireccionRef
	Piso         *int    `db:"Piso"`
	Departamento *string `db:"Departamento"`
}

func (ResideEn) TableName() string { return "ResideEn" }

type AseguraA struct {
	DNIProfesor      string    `db:"DNIProfesor"`
	DNIFamiliar      string    `db:"DNIFamiliar"`
	CodigoCompania   int       `db:"CodigoCompania"`
	CapitalAsegurado float64   `db:"CapitalAsegurado"`
	FechaIngreso     time.Time `db:"FechaIngreso"`
}

func (AseguraA) TableName() string { return "AseguraA" }
