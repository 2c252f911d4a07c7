// Command stackarr runs the stack array fixture: it writes the cells through a
// pointer array, checks the sum, and prints the cells and the sum.
//
// It takes no arguments. A failed check exits with status 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/goose-lang/stackarr"
	"github.com/goose-lang/stackarr/fixture"
)

func run(stdout, stderr io.Writer, f func() (stackarr.Cells, int32)) int {
	red := color.New(color.FgRed).SprintFunc()
	config := fixture.Load()
	cells, sum := f()
	if err := config.Check(cells, sum); err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintln(stderr, red("fixture failed"))
		return 1
	}
	if err := config.Report(stdout, cells, sum); err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintln(stderr, red("could not write output"))
		return 1
	}
	return 0
}

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: stackarr")
		os.Exit(2)
	}
	os.Exit(run(os.Stdout, os.Stderr, stackarr.Function))
}
