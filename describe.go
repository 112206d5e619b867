package plotgrid

import "github.com/vdobler/plotgrid/stat"

// ColumnSummary are the summary statistics of one numeric column.
type ColumnSummary struct {
	Name     string
	Type     FieldType
	Distinct int
	stat.Summary
}

// Describe summarizes every numeric column of df in column order.
// Missing values are not counted.
func Describe(df *DataFrame) []ColumnSummary {
	var sums []ColumnSummary
	for _, f := range df.Fields {
		if !f.Type.Numeric() {
			continue
		}
		sums = append(sums, ColumnSummary{
			Name:     f.Name,
			Type:     f.Type,
			Distinct: len(f.Levels()),
			Summary:  stat.Describe(f.Values()),
		})
	}
	return sums
}
