package seeder

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/Rana718/carga/internal/database/common"
)

// Row is a record flattened into the positional shape of a single INSERT.
type Row struct {
	Table   string
	Columns []string
	Values  []any
}

type descriptor struct {
	table   string
	columns []string
	fields  [][]int
}

var descriptors sync.Map

// RowOf maps a record onto its table's columns in struct field order. Nil
// optionals become NULL.
func RowOf(rec Persistable) (Row, error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Row{}, fmt.Errorf("cannot persist nil %T", rec)
		}
		v = v.Elem()
	}

	d, err := describe(v.Type(), rec.TableName())
	if err != nil {
		return Row{}, err
	}

	values := make([]any, len(d.fields))
	for i, index := range d.fields {
		values[i] = columnValue(v.FieldByIndex(index))
	}

	return Row{Table: d.table, Columns: d.columns, Values: values}, nil
}

func describe(t reflect.Type, table string) (*descriptor, error) {
	if cached, ok := descriptors.Load(t); ok {
		return cached.(*descriptor), nil
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record type %s is not a struct", t)
	}
	if !common.ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid table name: %s", table)
	}

	d := &descriptor{table: table}
	if err := collectColumns(t, nil, d); err != nil {
		return nil, fmt.Errorf("describe %s: %w", t, err)
	}
	if len(d.columns) == 0 {
		return nil, fmt.Errorf("record type %s has no db columns", t)
	}

	actual, _ := descriptors.LoadOrStore(t, d)
	return actual.(*descriptor), nil
}

// collectColumns walks exported fields, flattening untagged embedded structs
// such as DireccionRef.
func collectColumns(t reflect.Type, parent []int, d *descriptor) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		index := append(append([]int(nil), parent...), i)
		tag, tagged := f.Tag.Lookup("db")
		if tag == "-" {
			continue
		}

		if f.Anonymous && !tagged && f.Type.Kind() == reflect.Struct {
			if err := collectColumns(f.Type, index, d); err != nil {
				return err
			}
			continue
		}

		name := tag
		if name == "" {
			name = f.Name
		}
		if !common.ValidIdentifier(name) {
			return fmt.Errorf("invalid column name: %s", name)
		}
		for _, existing := range d.columns {
			if existing == name {
				return fmt.Errorf("duplicate column %s", name)
			}
		}

		d.columns = append(d.columns, name)
		d.fields = append(d.fields, index)
	}
	return nil
}

func columnValue(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		return v.Elem().Interface()
	}
	return v.Interface()
}
