// Package plotgrid draws grids of per column charts for all numeric
// columns of a data frame: boxplots and histograms with density curves,
// two charts per row.
//
// # Data Representation: Data Frames
//
// Data can be represented in two different ways: Either as "slice of
// measurements" or as "collection of slices".
//
// "Slice of measurements" are of the following style
//
//	var DataSOM []Measurement
//	type Measurement struct {
//	    Height float64
//	    Weight float64
//	    Age    int
//	}
//
// "Collection of slices" are structured like this:
//
//	var DataCOS Measurements
//	type Measurements struct {
//	    Height []float64
//	    Weight []float64
//	    Age    []int
//	}
//
// Both are turned into a *DataFrame by NewDataFrameFrom. Data frames can
// also be assembled column by column with AddFloats, AddInts, AddStrings
// and friends.
//
// # Types of Data Elements
//
// Every column is stored as float64:
//
//	Float   continuous data
//	Int     discrete numbers
//	String  interned in a StringPool, the value is the pool index
//	Time    seconds since the Unix epoch
//	Bool    0 or 1
//
// Only Int and Float columns are plotted. Missing values are NaN and are
// skipped when computing statistics.
//
// # Calculated Values
//
// Your data frame need not contain all data you want to plot as a field.
// By providing appropriate methods on your data frame you can have values
// computed. For slice of measurements style data frames just provide
// a method without parameters; in the collection of slices style the
// method takes the index as parameter:
//
//	func(m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//	func(m Measurements) BMI(i int) float64 { return m.Weight[i] / (m.Height[i] * m.Height[i]) }
//
// # Grids
//
// Boxplots and Distributions lay out one chart per numeric column on a
// grid with two columns and as many rows as needed. Charts are placed row
// by row in column order; if the number of charts is odd the last cell
// stays empty. The finished Figure is handed to the Renderer's Display.
package plotgrid
