package source

import (
	"database/sql"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/vdobler/plotgrid"
)

// FromRows reads all of rows into a data frame. Column types follow the
// declared database type where it is known and the scanned Go values
// otherwise. NULLs become missing values.
func FromRows(name string, rows *sql.Rows) (*plotgrid.DataFrame, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	cols := make([][]interface{}, len(types))
	dest := make([]interface{}, len(types))
	for rows.Next() {
		vals := make([]interface{}, len(types))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			cols[i] = append(cols[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	df := plotgrid.NewDataFrame(name, nil)
	for i, ct := range types {
		values := cols[i]
		ft, ok := declaredType(ct.DatabaseTypeName())
		if !ok {
			ft = inferredType(values)
		}
		field := plotgrid.NewField(ct.Name(), len(values), ft, df.Pool)
		for j, v := range values {
			setValue(field, j, v)
		}
		if err := df.Add(field); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// declaredType classifies a database column type name as reported by
// DuckDB or SQLite.
func declaredType(name string) (plotgrid.FieldType, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "TINYINT", "SMALLINT", "INTEGER", "INT", "BIGINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT", "UHUGEINT",
		"INT2", "INT4", "INT8", "MEDIUMINT":
		return plotgrid.Int, true
	case "FLOAT", "DOUBLE", "REAL", "DECIMAL", "NUMERIC", "DOUBLE PRECISION":
		return plotgrid.Float, true
	case "BOOLEAN", "BOOL":
		return plotgrid.Bool, true
	case "DATE", "TIMESTAMP", "DATETIME", "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE",
		"TIMESTAMP_S", "TIMESTAMP_MS", "TIMESTAMP_NS":
		return plotgrid.Time, true
	case "VARCHAR", "TEXT", "CHAR", "STRING", "UUID", "ENUM":
		return plotgrid.String, true
	}
	return 0, false
}

// inferredType classifies a column without declared type by the values
// it holds. A column of only NULLs is a Float column.
func inferredType(values []interface{}) plotgrid.FieldType {
	ft, seen := plotgrid.Int, false
	for _, v := range values {
		var t plotgrid.FieldType
		switch v.(type) {
		case nil:
			continue
		case int64, int32, int16, int8, int, uint64, uint32, uint16, uint8, uint, *big.Int:
			t = plotgrid.Int
		case float64, float32, interface{ Float64() float64 }:
			t = plotgrid.Float
		case bool:
			t = plotgrid.Bool
		case time.Time:
			t = plotgrid.Time
		default:
			return plotgrid.String
		}
		switch {
		case !seen:
			ft, seen = t, true
		case ft == t:
		case ft.Numeric() && t.Numeric():
			ft = plotgrid.Float
		default:
			return plotgrid.String
		}
	}
	if !seen {
		return plotgrid.Float
	}
	return ft
}

// setValue stores v as the i'th value of f, converting it to the type of f.
// Values which do not convert are left missing.
func setValue(f plotgrid.Field, i int, v interface{}) {
	if v == nil {
		return
	}
	switch f.Type {
	case plotgrid.String:
		f.SetString(i, stringValue(v))
	case plotgrid.Time:
		if t, ok := v.(time.Time); ok {
			f.SetTime(i, t)
		} else if t, err := time.Parse(time.RFC3339, stringValue(v)); err == nil {
			f.SetTime(i, t)
		}
	case plotgrid.Bool:
		switch b := v.(type) {
		case bool:
			f.SetBool(i, b)
		default:
			if x := numberValue(v); !math.IsNaN(x) {
				f.SetBool(i, x != 0)
			}
		}
	default:
		f.Data[i] = numberValue(v)
	}
}

func numberValue(v interface{}) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case int16:
		return float64(x)
	case int8:
		return float64(x)
	case int:
		return float64(x)
	case uint64:
		return float64(x)
	case uint32:
		return float64(x)
	case uint16:
		return float64(x)
	case uint8:
		return float64(x)
	case uint:
		return float64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f
	case interface{ Float64() float64 }:
		return x.Float64()
	case []byte:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return x
}

func stringValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
