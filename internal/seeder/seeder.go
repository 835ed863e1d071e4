package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rana718/carga/internal/dataset"
	"github.com/Rana718/carga/internal/log"
	"github.com/Rana718/carga/internal/metrics"
)

type pools struct {
	direcciones   *Pool[Direccion]
	titulos       *Pool[Titulo]
	publicaciones *Pool[Publicacion]
	reuniones     *Pool[ReunionCientifica]
	percepciones  *Pool[Percepcion]
	seguros       *Pool[Seguro]
	obrasSociales *Pool[ObraSocial]
	idiomas       *Pool[Idioma]
	empleadores   *Pool[Empleador]
	instituciones *Pool[Institucion]
	cursos        *Pool[CursoConferencia]
	extension     *Pool[ActividadExtension]
	investigacion *Pool[ActividadInvestigacion]
	profesores    *Pool[Profesor]
	contactos     *Pool[Contacto]
	dependencias  *Pool[DependenciaEmpresa]
	familiares    *Pool[Familiar]
	docObraSocial *Pool[DocObraSocial]
	declJuradas   *Pool[DeclaracionJurada]
	declCargo     *Pool[DeclaracionDeCargo]
	antProf       *Pool[AntecedenteProfesional]
	antDoc        *Pool[AntecedenteDocente]
	horarios      *Pool[Horario]
	atendioA      *Pool[AtendioA]
	seDaIdioma    *Pool[SeDaIdioma]
	conoceIdioma  *Pool[ConoceIdioma]
	beneficia     *Pool[Beneficia]
	poseeTitulo   *Pool[PoseeTitulo]
	seDaTitulo    *Pool[SeDaTitulo]
	realizaInves  *Pool[RealizaInves]
	realizoAct    *Pool[RealizoAct]
	referencias   *Pool[ReferenciaBibliografica]
	publico       *Pool[Publico]
	participo     *Pool[ParticipoEnReunion]
	percibeEn     *Pool[PercibeEn]
	resideEn      *Pool[ResideEn]
	aseguraA      *Pool[AseguraA]
}

type sizedPool interface {
	Name() string
	Len() int
}

func (p *pools) all() []sizedPool {
	return []sizedPool{
		p.direcciones,
		p.titulos,
		p.publicaciones,
		p.reuniones,
		p.percepciones,
		p.seguros,
		p.obrasSociales,
		p.idiomas,
		p.empleadores,
		p.instituciones,
		p.cursos,
		p.extension,
		p.investigacion,
		p.profesores,
		p.contactos,
		p.dependencias,
		p.familiares,
		p.docObraSocial,
		p.declJuradas,
		p.declCargo,
		p.antProf,
		p.antDoc,
		p.horarios,
		p.atendioA,
		p.seDaIdioma,
		p.conoceIdioma,
		p.beneficia,
		p.poseeTitulo,
		p.seDaTitulo,
		p.realizaInves,
		p.realizoAct,
		p.referencias,
		p.publico,
		p.participo,
		p.percibeEn,
		p.resideEn,
		p.aseguraA,
	}
}

func tableOf[T Persistable]() string {
	var zero T
	return zero.TableName()
}

func newPool[T Persistable]() *Pool[T] {
	return NewPool[T](tableOf[T]())
}

func newPools() pools {
	return pools{
		direcciones:   newPool[Direccion](),
		titulos:       newPool[Titulo](),
		publicaciones: newPool[Publicacion](),
		reuniones:     newPool[ReunionCientifica](),
		percepciones:  newPool[Percepcion](),
		seguros:       newPool[Seguro](),
		obrasSociales: newPool[ObraSocial](),
		idiomas:       newPool[Idioma](),
		empleadores:   newPool[Empleador](),
		instituciones: newPool[Institucion](),
		cursos:        newPool[CursoConferencia](),
		extension:     newPool[ActividadExtension](),
		investigacion: newPool[ActividadInvestigacion](),
		profesores:    newPool[Profesor](),
		contactos:     newPool[Contacto](),
		dependencias:  newPool[DependenciaEmpresa](),
		familiares:    newPool[Familiar](),
		docObraSocial: newPool[DocObraSocial](),
		declJuradas:   newPool[DeclaracionJurada](),
		declCargo:     newPool[DeclaracionDeCargo](),
		antProf:       newPool[AntecedenteProfesional](),
		antDoc:        newPool[AntecedenteDocente](),
		horarios:      newPool[Horario](),
		atendioA:      newPool[AtendioA](),
		seDaIdioma:    newPool[SeDaIdioma](),
		conoceIdioma:  newPool[ConoceIdioma](),
		beneficia:     newPool[Beneficia](),
		poseeTitulo:   newPool[PoseeTitulo](),
		seDaTitulo:    newPool[SeDaTitulo](),
		realizaInves:  newPool[RealizaInves](),
		realizoAct:    newPool[RealizoAct](),
		referencias:   newPool[ReferenciaBibliografica](),
		publico:       newPool[Publico](),
		participo:     newPool[ParticipoEnReunion](),
		percibeEn:     newPool[PercibeEn](),
		resideEn:      newPool[ResideEn](),
		aseguraA:      newPool[AseguraA](),
	}
}

// Seeder walks the dependency plan and loads every stage into the store.
type Seeder struct {
	cfg      SeedConfig
	store    Store
	loader   *Loader
	rng      RandomSource
	gen      *DataGenerator
	data     *dataset.Datasets
	plan     Plan
	tally    *Tally
	pools    pools
	reporter *Reporter
	runID    string
}

type Option func(*Seeder)

// WithMetrics records insert outcomes and latency in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Seeder) { s.loader.metrics = m }
}

// WithReporter prints a status line per stage and the final summary.
func WithReporter(r *Reporter) Option {
	return func(s *Seeder) { s.reporter = r }
}

// WithRandomSource replaces the seeded source built from SeedConfig.Seed.
func WithRandomSource(r RandomSource) Option {
	return func(s *Seeder) {
		s.rng = r
		s.gen = NewDataGenerator(r)
	}
}

// WithPlan replaces the default dependency plan.
func WithPlan(p Plan) Option {
	return func(s *Seeder) { s.plan = p }
}

func NewSeeder(store Store, data *dataset.Datasets, cfg SeedConfig, opts ...Option) (*Seeder, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("reference datasets are required")
	}

	rng := NewRandomSource(cfg.Seed)
	s := &Seeder{
		cfg:    cfg,
		store:  store,
		loader: NewLoader(store, nil),
		rng:    rng,
		gen:    NewDataGenerator(rng),
		data:   data,
		plan:   DefaultPlan(),
		tally:  NewTally(),
		pools:  newPools(),
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.plan.Validate(); err != nil {
		return nil, err
	}
	s.tally.Register(s.plan.Names()...)
	return s, nil
}

func (s *Seeder) RunID() string { return s.runID }

// Seed runs every stage in plan order. Rejections are tallied and never stop
// the run; the first fatal error does, and the summary so far is returned with it.
func (s *Seeder) Seed(ctx context.Context) (Summary, error) {
	start := time.Now()
	logger := log.Log.WithField(log.RunField, s.runID)
	logger.WithField("stages", len(s.plan.Stages)).WithField("count", s.cfg.Count).Info("starting load")

	for _, st := range s.plan.Stages {
		if st.Run == nil {
			return s.summarize(start), fmt.Errorf("%w: stage %s has nothing to run", ErrInvalidPlan, st.Name)
		}
		stageStart := time.Now()
		if err := st.Run(ctx, s); err != nil {
			summary := s.summarize(start)
			return summary, fmt.Errorf("failed to load %s: %w", st.Name, err)
		}
		if s.reporter != nil {
			s.reporter.StageDone(s.tally.Stage(st.Name), time.Since(stageStart))
		}
	}

	for _, p := range s.pools.all() {
		logger.WithField(log.TableField, p.Name()).WithField("pooled", p.Len()).Debug("pool size")
	}

	summary := s.summarize(start)
	logger.WithField("total", summary.Total).WithField("rejected", summary.Rejected).Info("load finished")
	if s.reporter != nil {
		s.reporter.Summary(summary)
	}
	return summary, nil
}

func (s *Seeder) summarize(start time.Time) Summary {
	summary := s.tally.Summarize()
	summary.RunID = s.runID
	summary.Elapsed = time.Since(start)
	return summary
}
