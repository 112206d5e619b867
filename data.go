package plotgrid

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DataFrame is a table of named columns of equal length N. The order of
// Fields is the left-to-right column order of the data.
type DataFrame struct {
	Name   string
	N      int
	Fields []Field
	Pool   *StringPool
}

// Field is one column of a data frame.
type Field struct {
	// Name of the field or method.
	Name string

	// Type of the field or return type of method.
	Type FieldType

	// Data holds one value per row: numbers as they are, strings as index
	// into Pool, times as seconds since the Unix epoch and bools as 0 or 1.
	// Missing values are NaN.
	Data []float64

	Pool *StringPool
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
	Time
	Bool
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Time:
		return "time"
	case Bool:
		return "bool"
	}
	return "FieldType(" + strconv.Itoa(int(t)) + ")"
}

// Numeric reports whether t holds integer or floating point values.
func (t FieldType) Numeric() bool {
	return t == Int || t == Float
}

// NewDataFrame returns an empty data frame. A nil pool allocates a fresh one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{Name: name, Pool: pool}
}

// NewField allocates a field of n missing values.
func NewField(name string, n int, t FieldType, pool *StringPool) Field {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.NaN()
	}
	return Field{Name: name, Type: t, Data: data, Pool: pool}
}

// Add appends f as the rightmost column. The first field added to an empty
// data frame determines N.
func (df *DataFrame) Add(f Field) error {
	if df.Has(f.Name) {
		return fmt.Errorf("%w %q in %s", ErrDuplicateField, f.Name, df.Name)
	}
	if len(df.Fields) == 0 {
		df.N = len(f.Data)
	} else if len(f.Data) != df.N {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLength, f.Name, len(f.Data), df.N)
	}
	if f.Type == String {
		f.Pool = df.Pool
	}
	df.Fields = append(df.Fields, f)
	return nil
}

// AddFloats adds a Float column.
func (df *DataFrame) AddFloats(name string, values []float64) error {
	data := make([]float64, len(values))
	copy(data, values)
	return df.Add(Field{Name: name, Type: Float, Data: data})
}

// AddInts adds an Int column.
func (df *DataFrame) AddInts(name string, values []int64) error {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return df.Add(Field{Name: name, Type: Int, Data: data})
}

// AddStrings adds a String column, interning the values in the pool of df.
func (df *DataFrame) AddStrings(name string, values []string) error {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(df.Pool.Add(v))
	}
	return df.Add(Field{Name: name, Type: String, Data: data})
}

// AddTimes adds a Time column. Zero times are stored as missing.
func (df *DataFrame) AddTimes(name string, values []time.Time) error {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = timeValue(v)
	}
	return df.Add(Field{Name: name, Type: Time, Data: data})
}

// AddBools adds a Bool column.
func (df *DataFrame) AddBools(name string, values []bool) error {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = boolValue(v)
	}
	return df.Add(Field{Name: name, Type: Bool, Data: data})
}

// Has reports whether df contains a field name.
func (df *DataFrame) Has(name string) bool {
	return df.index(name) != -1
}

func (df *DataFrame) index(name string) int {
	for i, f := range df.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Field returns the column called name.
func (df *DataFrame) Field(name string) (Field, error) {
	i := df.index(name)
	if i == -1 {
		return Field{}, fmt.Errorf("%w %q in %s", ErrNoSuchField, name, df.Name)
	}
	return df.Fields[i], nil
}

// FieldNames returns all column names in column order.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, len(df.Fields))
	for i, f := range df.Fields {
		names[i] = f.Name
	}
	return names
}

// NumericFields returns the names of all Int and Float columns in column order.
func (df *DataFrame) NumericFields() []string {
	var names []string
	for _, f := range df.Fields {
		if f.Type.Numeric() {
			names = append(names, f.Name)
		}
	}
	return names
}

// Select returns a new data frame with only the named columns, in the
// order of df. Column data is shared with df.
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	want := NewStringSetFrom(names)
	for _, n := range names {
		if !df.Has(n) {
			return nil, fmt.Errorf("%w %q in %s", ErrNoSuchField, n, df.Name)
		}
	}
	return df.filterFields(func(f Field) bool { return want.Contains(f.Name) }), nil
}

// Drop returns a new data frame without the named columns. Unknown names
// are ignored.
func (df *DataFrame) Drop(names ...string) *DataFrame {
	drop := NewStringSetFrom(names)
	return df.filterFields(func(f Field) bool { return !drop.Contains(f.Name) })
}

func (df *DataFrame) filterFields(keep func(Field) bool) *DataFrame {
	result := &DataFrame{Name: df.Name, N: df.N, Pool: df.Pool}
	for _, f := range df.Fields {
		if keep(f) {
			result.Fields = append(result.Fields, f)
		}
	}
	return result
}

// Copy returns a deep copy of df sharing only the string pool.
func (df *DataFrame) Copy() *DataFrame {
	result := &DataFrame{Name: df.Name, N: df.N, Pool: df.Pool}
	result.Fields = make([]Field, len(df.Fields))
	for i, f := range df.Fields {
		result.Fields[i] = f.Copy()
	}
	return result
}

// Head returns a data frame with the first n rows of df, or all rows if
// df has fewer. Column data is shared with df.
func (df *DataFrame) Head(n int) *DataFrame {
	n = max(0, min(n, df.N))
	result := df.filterFields(func(Field) bool { return true })
	result.N = n
	for i := range result.Fields {
		result.Fields[i].Data = result.Fields[i].Data[:n]
	}
	return result
}

// Print writes df as a table to w.
func (df *DataFrame) Print(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle(fmt.Sprintf("%s (%d rows)", df.Name, df.N))

	header := make(table.Row, len(df.Fields))
	for i, f := range df.Fields {
		header[i] = fmt.Sprintf("%s <%s>", f.Name, f.Type)
	}
	t.AppendHeader(header)
	for r := 0; r < df.N; r++ {
		row := make(table.Row, len(df.Fields))
		for i, f := range df.Fields {
			row[i] = f.String(r)
		}
		t.AppendRow(row)
	}
	t.Render()
}

// Copy returns a copy of f with its own Data.
func (f Field) Copy() Field {
	data := make([]float64, len(f.Data))
	copy(data, f.Data)
	f.Data = data
	return f
}

// Values returns the non-missing values of f.
func (f Field) Values() []float64 {
	values := make([]float64, 0, len(f.Data))
	for _, v := range f.Data {
		if math.IsNaN(v) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Levels returns the distinct non-missing values of f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, v := range f.Data {
		if !math.IsNaN(v) {
			levels.Add(v)
		}
	}
	return levels
}

// String formats the i'th value of f.
func (f Field) String(i int) string {
	v := f.Data[i]
	if math.IsNaN(v) {
		return "NA"
	}
	switch f.Type {
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case String:
		return f.Pool.Get(int(v))
	case Time:
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC().Format(time.RFC3339)
	case Bool:
		return strconv.FormatBool(v != 0)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SetString stores s as the i'th value of the String field f.
func (f Field) SetString(i int, s string) {
	f.Data[i] = float64(f.Pool.Add(s))
}

// SetTime stores t as the i'th value of the Time field f.
func (f Field) SetTime(i int, t time.Time) {
	f.Data[i] = timeValue(t)
}

// SetBool stores b as the i'th value of the Bool field f.
func (f Field) SetBool(i int, b bool) {
	f.Data[i] = boolValue(b)
}

func timeValue(t time.Time) float64 {
	if t.IsZero() {
		return math.NaN()
	}
	return float64(t.UnixNano()) / 1e9
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// -------------------------------------------------------------------------
// Reflection based construction

var timeType = reflect.TypeOf(time.Time{})

// NewDataFrameFrom constructs a data frame from data which must be either
// a slice of structs ("slice of measurements") or a struct of equally long
// slices ("collection of slices"). Exported fields of kind int, uint, float,
// string, bool and time.Time become columns, other fields are skipped.
// Methods without parameters (slice of measurements) or with one int index
// parameter (collection of slices) returning one of these types become
// calculated columns after the fields.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	if data == nil {
		return nil, fmt.Errorf("plotgrid: cannot convert nil to data frame")
	}
	v := reflect.ValueOf(data)
	t := v.Type()
	switch {
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Struct:
		return newSOMDataFrame(v)
	case t.Kind() == reflect.Struct:
		return newCOSDataFrame(v)
	}
	return nil, fmt.Errorf("plotgrid: cannot convert %s to data frame", t.String())
}

// fieldType maps a Go type to the FieldType used to store it.
func fieldType(t reflect.Type) (FieldType, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	case reflect.String:
		return String, true
	case reflect.Bool:
		return Bool, true
	case reflect.Struct:
		if t == timeType {
			return Time, true
		}
	}
	return 0, false
}

// reflectValue converts v, which must have a type accepted by fieldType,
// to its float64 storage representation.
func reflectValue(v reflect.Value, ft FieldType, pool *StringPool) float64 {
	switch ft {
	case Int:
		if v.CanInt() {
			return float64(v.Int())
		}
		return float64(v.Uint())
	case Float:
		return v.Float()
	case String:
		return float64(pool.Add(v.String()))
	case Bool:
		return boolValue(v.Bool())
	case Time:
		return timeValue(v.Interface().(time.Time))
	}
	return math.NaN()
}

func newSOMDataFrame(v reflect.Value) (*DataFrame, error) {
	t := v.Type().Elem()
	n := v.Len()
	df := NewDataFrame(t.Name(), nil)

	// Fields first.
	for j := 0; j < t.NumField(); j++ {
		sf := t.Field(j)
		if !sf.IsExported() {
			continue
		}
		ft, ok := fieldType(sf.Type)
		if !ok {
			continue
		}
		field := NewField(sf.Name, n, ft, df.Pool)
		for i := 0; i < n; i++ {
			field.Data[i] = reflectValue(v.Index(i).Field(j), ft, df.Pool)
		}
		if err := df.Add(field); err != nil {
			return nil, err
		}
	}

	// The same for methods: "func(elemtype) [int,float,string,bool,time]".
	for j := 0; j < t.NumMethod(); j++ {
		m := t.Method(j)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		ft, ok := fieldType(mt.Out(0))
		if !ok {
			continue
		}
		field := NewField(m.Name, n, ft, df.Pool)
		for i := 0; i < n; i++ {
			out := m.Func.Call([]reflect.Value{v.Index(i)})[0]
			field.Data[i] = reflectValue(out, ft, df.Pool)
		}
		if err := df.Add(field); err != nil {
			return nil, err
		}
	}

	return df, nil
}

func newCOSDataFrame(v reflect.Value) (*DataFrame, error) {
	t := v.Type()
	df := NewDataFrame(t.Name(), nil)

	n := -1
	for j := 0; j < t.NumField(); j++ {
		sf := t.Field(j)
		if !sf.IsExported() || sf.Type.Kind() != reflect.Slice {
			continue
		}
		ft, ok := fieldType(sf.Type.Elem())
		if !ok {
			continue
		}
		col := v.Field(j)
		if n == -1 {
			n = col.Len()
		}
		field := NewField(sf.Name, col.Len(), ft, df.Pool)
		for i := range field.Data {
			field.Data[i] = reflectValue(col.Index(i), ft, df.Pool)
		}
		if err := df.Add(field); err != nil {
			return nil, err
		}
	}
	if n == -1 {
		n = 0
	}

	// Methods take the index: "func(coltype, int) [int,float,string,bool,time]".
	for j := 0; j < t.NumMethod(); j++ {
		m := t.Method(j)
		mt := m.Type
		if mt.NumIn() != 2 || mt.NumOut() != 1 || mt.In(1).Kind() != reflect.Int {
			continue
		}
		ft, ok := fieldType(mt.Out(0))
		if !ok {
			continue
		}
		field := NewField(m.Name, n, ft, df.Pool)
		for i := 0; i < n; i++ {
			out := m.Func.Call([]reflect.Value{v, reflect.ValueOf(i)})[0]
			field.Data[i] = reflectValue(out, ft, df.Pool)
		}
		if err := df.Add(field); err != nil {
			return nil, err
		}
	}

	return df, nil
}
