package dataset

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Rana718/carga/internal/log"
)

//go:embed data/*.csv
var embedded embed.FS

const (
	ProvinciasFile    = "provincias.csv"
	UniversidadesFile = "universidades.csv"
	IdiomasFile       = "idiomas.csv"
)

// Localidad is a locality and the streets that belong to it.
type Localidad struct {
	Nombre string
	Calles []string
}

// Provincia is a province and its localities, in first-seen order.
type Provincia struct {
	Nombre      string
	Localidades []Localidad
}

// Datasets holds the static reference data every load draws from.
type Datasets struct {
	Provincias    []Provincia
	Universidades []string
	Idiomas       []string
}

// Load reads the reference data from dir, or from the embedded copy when dir is empty.
func Load(dir string) (*Datasets, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded datasets: %w", err)
		}
		return LoadFS(sub)
	}

	log.Log.WithField("dir", dir).Debug("loading datasets from directory")
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (*Datasets, error) {
	var ds Datasets
	var err error

	if ds.Provincias, err = parseFile(fsys, ProvinciasFile, ParseProvincias); err != nil {
		return nil, err
	}
	if ds.Universidades, err = parseFile(fsys, UniversidadesFile, ParseList); err != nil {
		return nil, err
	}
	if ds.Idiomas, err = parseFile(fsys, IdiomasFile, ParseList); err != nil {
		return nil, err
	}

	return &ds, nil
}

func parseFile[T any](fsys fs.FS, name string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", name, err)
	}
	defer f.Close()

	items, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", name, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", name)
	}
	return items, nil
}

// ParseProvincias reads `localidad,calle,provincia` rows after a header line and
// groups streets by province and locality. Rows without exactly three
// non-empty fields are skipped.
func ParseProvincias(r io.Reader) ([]Provincia, error) {
	reader := newReader(r, ',')

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var provincias []Provincia
	provIndex := map[string]int{}
	locIndex := map[[2]string]int{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		fields := trimAll(record)
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
			continue
		}
		localidad, calle, provincia := fields[0], fields[1], fields[2]

		pi, ok := provIndex[provincia]
		if !ok {
			pi = len(provincias)
			provIndex[provincia] = pi
			provincias = append(provincias, Provincia{Nombre: provincia})
		}

		key := [2]string{provincia, localidad}
		li, ok := locIndex[key]
		if !ok {
			li = len(provincias[pi].Localidades)
			locIndex[key] = li
			provincias[pi].Localidades = append(provincias[pi].Localidades, Localidad{Nombre: localidad})
		}

		loc := &provincias[pi].Localidades[li]
		loc.Calles = append(loc.Calles, calle)
	}

	return provincias, nil
}

// ParseList reads a headerless `;`-separated file and flattens every non-empty
// field into a list, dropping repeats.
func ParseList(r io.Reader) ([]string, error) {
	reader := newReader(r, ';')

	var out []string
	seen := map[string]bool{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		for _, v := range trimAll(record) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}

	return out, nil
}

func newReader(r io.Reader, comma rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	return reader
}

func trimAll(record []string) []string {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record
}
