// Command gridplot draws boxplots and distributions of all numeric
// columns of a data file.
package main

import (
	"os"

	"github.com/vdobler/plotgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
