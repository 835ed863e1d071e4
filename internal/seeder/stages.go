package seeder

import (
	"context"
	"fmt"
)

const (
	refProvincias    = "provincias"
	refIdiomas       = "idiomas"
	refUniversidades = "universidades"
)

// DefaultPlan is the fixed load order of the professors schema. Every stage
// samples only from pools filled by earlier stages.
func DefaultPlan() Plan {
	return Plan{Stages: []Stage{
		{Name: tableOf[Direccion](), References: []string{refProvincias}, Count: "N", Run: loadDirecciones},
		{Name: tableOf[Titulo](), Count: "N + 1 bootstrap tertiary title", Run: loadTitulos},
		{Name: tableOf[Publicacion](), Count: "N", Run: loadPublicaciones},
		{Name: tableOf[ReunionCientifica](), Count: "N", Run: loadReuniones},
		{Name: tableOf[Percepcion](), Count: "N", Run: loadPercepciones},
		{Name: tableOf[Seguro](), Count: "N", Run: loadSeguros},
		{Name: tableOf[ObraSocial](), Count: "N + D.A.S.U.Te.N", Run: loadObrasSociales},
		{Name: tableOf[Idioma](), References: []string{refIdiomas}, Count: "every language when the table is empty", Run: loadIdiomas},
		{Name: tableOf[Empleador](), DependsOn: []string{"Direcciones"}, Count: "N", Run: loadEmpleadores},
		{Name: tableOf[Institucion](), DependsOn: []string{"Direcciones"}, References: []string{refUniversidades}, Count: "min(N, universities)", Run: loadInstituciones},
		{Name: tableOf[CursoConferencia](), DependsOn: []string{"Instituciones"}, Count: "N", Run: loadCursos},
		{Name: tableOf[ActividadExtension](), DependsOn: []string{"Instituciones"}, Count: "N", Run: loadActividadesExtension},
		{Name: tableOf[ActividadInvestigacion](), DependsOn: []string{"Instituciones"}, Count: "N", Run: loadActividadesInvestigacion},
		{Name: tableOf[Profesor](), DependsOn: []string{"Empleadores"}, Count: "N", Run: loadProfesores},
		{Name: tableOf[Contacto](), DependsOn: []string{"Profesores"}, Count: "1 per professor", Run: loadContactos},
		{Name: tableOf[DependenciaEmpresa](), DependsOn: []string{"Profesores", "Direcciones", "ObrasSociales"}, Count: "N", Run: loadDependencias},
		{Name: tableOf[Familiar](), DependsOn: []string{"Profesores", "Direcciones"}, Count: "N", Run: loadFamiliares},
		{Name: tableOf[DocObraSocial](), DependsOn: []string{"Profesores", "ObrasSociales"}, Count: "N", Run: loadDocObraSocial},
		{Name: tableOf[DeclaracionJurada](), DependsOn: []string{"Profesores"}, Count: "N", Run: loadDeclaracionesJuradas},
		{Name: tableOf[DeclaracionDeCargo](), DependsOn: []string{"DependenciasEmpresas"}, Count: "N", Run: loadDeclaracionesDeCargo},
		{Name: tableOf[AntecedenteProfesional](), DependsOn: []string{"Profesores", "DeclaracionesDeCargo"}, Count: "N", Run: loadAntecedentesProfesionales},
		{Name: tableOf[AntecedenteDocente](), DependsOn: []string{"Profesores", "Instituciones", "DeclaracionesDeCargo"}, Count: "N", Run: loadAntecedentesDocentes},
		{Name: tableOf[Horario](), DependsOn: []string{"DeclaracionesDeCargo"}, Count: "N", Run: loadHorarios},
		{Name: tableOf[AtendioA](), DependsOn: []string{"CursosConferencias", "Profesores"}, Count: "1 per professor", Run: loadAtendioA},
		{Name: tableOf[SeDaIdioma](), DependsOn: []string{"Idiomas", "Instituciones"}, Count: "1-2 per institution", Run: loadSeDaIdioma},
		{Name: tableOf[ConoceIdioma](), DependsOn: []string{"Idiomas", "Profesores"}, Count: "native + 1-2 per professor", Run: loadConoceIdioma},
		{Name: tableOf[Beneficia](), DependsOn: []string{"Familiares", "ObrasSociales"}, Count: "uniform in [0, N)", Run: loadBeneficia},
		{Name: tableOf[PoseeTitulo](), DependsOn: []string{"Titulos", "Profesores"}, Count: "1 tertiary per professor + uniform in [0, N)", Run: loadPoseeTitulo},
		{Name: tableOf[SeDaTitulo](), DependsOn: []string{"Titulos", "Instituciones"}, Count: "1-4 per institution", Run: loadSeDaTitulo},
		{Name: tableOf[RealizaInves](), DependsOn: []string{"ActividadesInvestigacion", "Profesores"}, Count: "uniform in [N/2, N]", Run: loadRealizaInves},
		{Name: tableOf[RealizoAct](), DependsOn: []string{"ActividadesExtensionUniversitaria", "Profesores"}, Count: "uniform in [N/2, N]", Run: loadRealizoAct},
		{Name: tableOf[ReferenciaBibliografica](), DependsOn: []string{"Publicaciones"}, Count: "uniform in [1, publications)", Run: loadReferencias},
		{Name: tableOf[Publico](), DependsOn: []string{"Publicaciones", "Profesores"}, Count: "1 per publication", Run: loadPublico},
		{Name: tableOf[ParticipoEnReunion](), DependsOn: []string{"ReunionesCientificas", "Profesores"}, Count: "1 per meeting", Run: loadParticipoEnReunion},
		{Name: tableOf[PercibeEn](), DependsOn: []string{"Percepciones", "Profesores"}, Count: "1 per perception", Run: loadPercibeEn},
		{Name: tableOf[ResideEn](), DependsOn: []string{"Profesores", "Direcciones"}, Count: "1 per professor", Run: loadResideEn},
		{Name: tableOf[AseguraA](), DependsOn: []string{"Seguros", "Familiares"}, Count: "1 per policy", Run: loadAseguraA},
	}}
}

func loadDirecciones(ctx context.Context, s *Seeder) error {
	if len(s.data.Provincias) == 0 {
		return fmt.Errorf("%w: no provinces in the reference dataset", ErrEmptyPool)
	}
	return runStage(ctx, s, s.pools.direcciones, times(s.cfg.Count, func() (Direccion, error) {
		return s.gen.Direccion(s.data.Provincias), nil
	}), poolStored)
}

func loadTitulos(ctx context.Context, s *Seeder) error {
	if err := runStage(ctx, s, s.pools.titulos, one(BootstrapTitulo), poolStoredOrExisting); err != nil {
		return err
	}
	return runStage(ctx, s, s.pools.titulos, times(s.cfg.Count, func() (Titulo, error) {
		return s.gen.Titulo(), nil
	}), poolStored)
}

func loadPublicaciones(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.publicaciones, times(s.cfg.Count, func() (Publicacion, error) {
		return s.gen.Publicacion(), nil
	}), poolStored)
}

func loadReuniones(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.reuniones, times(s.cfg.Count, func() (ReunionCientifica, error) {
		return s.gen.ReunionCientifica(), nil
	}), poolStored)
}

func loadPercepciones(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.percepciones, times(s.cfg.Count, func() (Percepcion, error) {
		return s.gen.Percepcion(), nil
	}), poolStored)
}

func loadSeguros(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.seguros, times(s.cfg.Count, func() (Seguro, error) {
		return s.gen.Seguro(), nil
	}), poolStored)
}

func loadObrasSociales(ctx context.Context, s *Seeder) error {
	if err := runStage(ctx, s, s.pools.obrasSociales, one(s.gen.Dasuten()), poolStoredOrExisting); err != nil {
		return err
	}
	return runStage(ctx, s, s.pools.obrasSociales, times(s.cfg.Count, func() (ObraSocial, error) {
		return s.gen.ObraSocial(), nil
	}), poolStored)
}

// loadIdiomas inserts the language list only into an empty table. Either way
// the whole list is pooled, since a populated table is assumed to hold it.
func loadIdiomas(ctx context.Context, s *Seeder) error {
	table := tableOf[Idioma]()
	existing, err := s.store.Count(ctx, table)
	if err != nil {
		return err
	}

	if existing > 0 {
		for _, nombre := range s.data.Idiomas {
			s.pools.idiomas.Add(Idioma{Nombre: nombre})
		}
		return nil
	}

	return runStage(ctx, s, s.pools.idiomas, each(s.data.Idiomas, func(nombre string) (Idioma, error) {
		return Idioma{Nombre: nombre}, nil
	}), poolStoredOrExisting)
}

func loadEmpleadores(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.empleadores, times(s.cfg.Count, func() (Empleador, error) {
		dir, err := s.pools.direcciones.Pick(s.rng)
		if err != nil {
			return Empleador{}, err
		}
		return s.gen.Empleador(dir), nil
	}), poolStored)
}

// loadInstituciones takes the first N university names from the dataset.
func loadInstituciones(ctx context.Context, s *Seeder) error {
	nombres := s.data.Universidades[:min(s.cfg.Count, len(s.data.Universidades))]
	return runStage(ctx, s, s.pools.instituciones, each(nombres, func(nombre string) (Institucion, error) {
		dir, err := s.pools.direcciones.Pick(s.rng)
		if err != nil {
			return Institucion{}, err
		}
		return s.gen.Institucion(nombre, dir), nil
	}), poolStoredOrExisting)
}

func loadCursos(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.cursos, times(s.cfg.Count, func() (CursoConferencia, error) {
		inst, err := s.pools.instituciones.Pick(s.rng)
		if err != nil {
			return CursoConferencia{}, err
		}
		return s.gen.CursoConferencia(inst), nil
	}), poolStored)
}

func loadActividadesExtension(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.extension, times(s.cfg.Count, func() (ActividadExtension, error) {
		inst, err := s.pools.instituciones.Pick(s.rng)
		if err != nil {
			return ActividadExtension{}, err
		}
		return s.gen.ActividadExtension(inst), nil
	}), poolStored)
}

func loadActividadesInvestigacion(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.investigacion, times(s.cfg.Count, func() (ActividadInvestigacion, error) {
		inst, err := s.pools.instituciones.Pick(s.rng)
		if err != nil {
			return ActividadInvestigacion{}, err
		}
		return s.gen.ActividadInvestigacion(inst), nil
	}), poolStored)
}

func loadProfesores(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.profesores, times(s.cfg.Count, func() (Profesor, error) {
		emp, err := s.pools.empleadores.Pick(s.rng)
		if err != nil {
			return Profesor{}, err
		}
		return s.gen.Profesor(emp), nil
	}), poolStored)
}

func loadContactos(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.contactos, each(s.pools.profesores.Items(), func(p Profesor) (Contacto, error) {
		return s.gen.Contacto(p), nil
	}), poolStored)
}

func loadDependencias(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.dependencias, times(s.cfg.Count, func() (DependenciaEmpresa, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return DependenciaEmpresa{}, err
		}
		dir, err := s.pools.direcciones.Pick(s.rng)
		if err != nil {
			return DependenciaEmpresa{}, err
		}
		obra, err := s.pools.obrasSociales.Pick(s.rng)
		if err != nil {
			return DependenciaEmpresa{}, err
		}
		return s.gen.DependenciaEmpresa(p, dir, obra), nil
	}), poolStored)
}

func loadFamiliares(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.familiares, times(s.cfg.Count, func() (Familiar, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return Familiar{}, err
		}
		dir, err := s.pools.direcciones.Pick(s.rng)
		if err != nil {
			return Familiar{}, err
		}
		return s.gen.Familiar(p, dir), nil
	}), poolStored)
}

func loadDocObraSocial(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.docObraSocial, times(s.cfg.Count, func() (DocObraSocial, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return DocObraSocial{}, err
		}
		obra, err := s.pools.obrasSociales.Pick(s.rng)
		if err != nil {
			return DocObraSocial{}, err
		}
		return s.gen.DocObraSocial(p, obra), nil
	}), poolStored)
}

func loadDeclaracionesJuradas(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.declJuradas, times(s.cfg.Count, func() (DeclaracionJurada, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return DeclaracionJurada{}, err
		}
		return s.gen.DeclaracionJurada(p), nil
	}), poolStored)
}

func loadDeclaracionesDeCargo(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.declCargo, times(s.cfg.Count, func() (DeclaracionDeCargo, error) {
		dep, err := s.pools.dependencias.Pick(s.rng)
		if err != nil {
			return DeclaracionDeCargo{}, err
		}
		return s.gen.DeclaracionDeCargo(dep), nil
	}), poolStored)
}

func loadAntecedentesProfesionales(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.antProf, times(s.cfg.Count, func() (AntecedenteProfesional, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return AntecedenteProfesional{}, err
		}
		decl, err := s.pools.declCargo.Pick(s.rng)
		if err != nil {
			return AntecedenteProfesional{}, err
		}
		return s.gen.AntecedenteProfesional(p, decl), nil
	}), poolStored)
}

func loadAntecedentesDocentes(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.antDoc, times(s.cfg.Count, func() (AntecedenteDocente, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return AntecedenteDocente{}, err
		}
		inst, err := s.pools.instituciones.Pick(s.rng)
		if err != nil {
			return AntecedenteDocente{}, err
		}
		decl, err := s.pools.declCargo.Pick(s.rng)
		if err != nil {
			return AntecedenteDocente{}, err
		}
		return s.gen.AntecedenteDocente(p, inst, decl), nil
	}), poolStored)
}

func loadHorarios(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.horarios, times(s.cfg.Count, func() (Horario, error) {
		decl, err := s.pools.declCargo.Pick(s.rng)
		if err != nil {
			return Horario{}, err
		}
		return s.gen.Horario(decl), nil
	}), poolStored)
}

func loadAtendioA(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.atendioA, each(s.pools.profesores.Items(), func(p Profesor) (AtendioA, error) {
		curso, err := s.pools.cursos.Pick(s.rng)
		if err != nil {
			return AtendioA{}, err
		}
		return s.gen.AtendioA(curso, p), nil
	}), poolStored)
}

func loadSeDaIdioma(ctx context.Context, s *Seeder) error {
	idiomas := s.pools.idiomas.Items()
	return runStage(ctx, s, s.pools.seDaIdioma, eachMany(s.pools.instituciones.Items(), func(inst Institucion) ([]SeDaIdioma, error) {
		if len(idiomas) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, s.pools.idiomas.Name())
		}
		var out []SeDaIdioma
		for _, idioma := range pickDistinct(s.rng, idiomas, between(s.rng, 1, 2)) {
			out = append(out, s.gen.SeDaIdioma(idioma, inst))
		}
		return out, nil
	}), poolStored)
}

// loadConoceIdioma gives every professor the native language, when it is
// pooled, plus one or two others.
func loadConoceIdioma(ctx context.Context, s *Seeder) error {
	var nativo *Idioma
	var otros []Idioma
	for _, idioma := range s.pools.idiomas.Items() {
		if idioma.Nombre == IdiomaNativo {
			nativo = &idioma
			continue
		}
		otros = append(otros, idioma)
	}

	return runStage(ctx, s, s.pools.conoceIdioma, eachMany(s.pools.profesores.Items(), func(p Profesor) ([]ConoceIdioma, error) {
		if nativo == nil && len(otros) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, s.pools.idiomas.Name())
		}
		var out []ConoceIdioma
		if nativo != nil {
			out = append(out, s.gen.ConoceIdioma(p, *nativo))
		}
		for _, idioma := range pickDistinct(s.rng, otros, between(s.rng, 1, 2)) {
			out = append(out, s.gen.ConoceIdioma(p, idioma))
		}
		return out, nil
	}), poolStored)
}

func loadBeneficia(ctx context.Context, s *Seeder) error {
	n := s.rng.Intn(s.cfg.Count)
	return runStage(ctx, s, s.pools.beneficia, times(n, func() (Beneficia, error) {
		f, err := s.pools.familiares.Pick(s.rng)
		if err != nil {
			return Beneficia{}, err
		}
		obra, err := s.pools.obrasSociales.Pick(s.rng)
		if err != nil {
			return Beneficia{}, err
		}
		return s.gen.Beneficia(f, obra), nil
	}), poolStored)
}

// loadPoseeTitulo gives every professor a tertiary title, then spreads a
// random number of other titles. A missing tertiary title is fatal.
func loadPoseeTitulo(ctx context.Context, s *Seeder) error {
	terciarios := NewPool[Titulo]("Titulos (Terciario)")
	otros := NewPool[Titulo]("Titulos")
	for _, t := range s.pools.titulos.Items() {
		if t.Nivel == NivelTerciario {
			terciarios.Add(t)
		} else {
			otros.Add(t)
		}
	}

	profesores := s.pools.profesores.Items()
	if len(profesores) > 0 && terciarios.Len() == 0 {
		return fmt.Errorf("%w: no tertiary title to assign", ErrEmptyPool)
	}

	err := runStage(ctx, s, s.pools.poseeTitulo, each(profesores, func(p Profesor) (PoseeTitulo, error) {
		t, err := terciarios.Pick(s.rng)
		if err != nil {
			return PoseeTitulo{}, err
		}
		return s.gen.PoseeTitulo(p, t), nil
	}), poolStored)
	if err != nil {
		return err
	}

	if otros.Len() == 0 {
		return nil
	}
	n := s.rng.Intn(s.cfg.Count)
	return runStage(ctx, s, s.pools.poseeTitulo, times(n, func() (PoseeTitulo, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return PoseeTitulo{}, err
		}
		t, err := otros.Pick(s.rng)
		if err != nil {
			return PoseeTitulo{}, err
		}
		return s.gen.PoseeTitulo(p, t), nil
	}), poolStored)
}

func loadSeDaTitulo(ctx context.Context, s *Seeder) error {
	titulos := s.pools.titulos.Items()
	return runStage(ctx, s, s.pools.seDaTitulo, eachMany(s.pools.instituciones.Items(), func(inst Institucion) ([]SeDaTitulo, error) {
		if len(titulos) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, s.pools.titulos.Name())
		}
		var out []SeDaTitulo
		for _, t := range pickDistinct(s.rng, titulos, between(s.rng, 1, 4)) {
			out = append(out, s.gen.SeDaTitulo(t, inst))
		}
		return out, nil
	}), poolStored)
}

func loadRealizaInves(ctx context.Context, s *Seeder) error {
	n := between(s.rng, s.cfg.Count/2, s.cfg.Count)
	return runStage(ctx, s, s.pools.realizaInves, times(n, func() (RealizaInves, error) {
		act, err := s.pools.investigacion.Pick(s.rng)
		if err != nil {
			return RealizaInves{}, err
		}
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return RealizaInves{}, err
		}
		return s.gen.RealizaInves(act, p), nil
	}), poolStored)
}

func loadRealizoAct(ctx context.Context, s *Seeder) error {
	n := between(s.rng, s.cfg.Count/2, s.cfg.Count)
	return runStage(ctx, s, s.pools.realizoAct, times(n, func() (RealizoAct, error) {
		act, err := s.pools.extension.Pick(s.rng)
		if err != nil {
			return RealizoAct{}, err
		}
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return RealizoAct{}, err
		}
		return s.gen.RealizoAct(act, p), nil
	}), poolStored)
}

// loadReferencias draws distinct citation pairs between different publications.
func loadReferencias(ctx context.Context, s *Seeder) error {
	pubs := s.pools.publicaciones.Items()
	if len(pubs) < 2 {
		return nil
	}

	n := between(s.rng, 1, len(pubs)-1)
	seen := make(map[[2]int]bool, n)
	return runStage(ctx, s, s.pools.referencias, times(n, func() (ReferenciaBibliografica, error) {
		for {
			i, j := s.rng.Intn(len(pubs)), s.rng.Intn(len(pubs))
			key := [2]int{i, j}
			if i == j || seen[key] {
				continue
			}
			seen[key] = true
			return s.gen.ReferenciaBibliografica(pubs[i], pubs[j]), nil
		}
	}), poolStored)
}

func loadPublico(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.publico, each(s.pools.publicaciones.Items(), func(pub Publicacion) (Publico, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return Publico{}, err
		}
		return s.gen.Publico(pub, p), nil
	}), poolStored)
}

func loadParticipoEnReunion(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.participo, each(s.pools.reuniones.Items(), func(r ReunionCientifica) (ParticipoEnReunion, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return ParticipoEnReunion{}, err
		}
		return s.gen.ParticipoEnReunion(r, p), nil
	}), poolStored)
}

func loadPercibeEn(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.percibeEn, each(s.pools.percepciones.Items(), func(perc Percepcion) (PercibeEn, error) {
		p, err := s.pools.profesores.Pick(s.rng)
		if err != nil {
			return PercibeEn{}, err
		}
		return s.gen.PercibeEn(perc, p), nil
	}), poolStored)
}

func loadResideEn(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.resideEn, each(s.pools.profesores.Items(), func(p Profesor) (ResideEn, error) {
		dir, err := s.pools.direcciones.Pick(s.rng)
		if err != nil {
			return ResideEn{}, err
		}
		return s.gen.ResideEn(p, dir), nil
	}), poolStored)
}

func loadAseguraA(ctx context.Context, s *Seeder) error {
	return runStage(ctx, s, s.pools.aseguraA, each(s.pools.seguros.Items(), func(seg Seguro) (AseguraA, error) {
		f, err := s.pools.familiares.Pick(s.rng)
		if err != nil {
			return AseguraA{}, err
		}
		return s.gen.AseguraA(seg, f), nil
	}), poolStored)
}
