package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/tools/go/packages"

	"github.com/goose-lang/stackarr/shape"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: shapecheck [options] <package patterns>")

		flag.PrintDefaults()
	}

	var modDir string
	flag.StringVar(&modDir, "dir", ".",
		"directory containing necessary go.mod")

	var funcName string
	flag.StringVar(&funcName, "func", "Coerce",
		"function that must take a *[2]*int32")

	flag.Parse()
	pkgPatterns := flag.Args()
	if len(pkgPatterns) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	pkgs, err := packages.Load(shape.NewPackageConfig(modDir), pkgPatterns...)
	if err != nil {
		panic(err)
	} else if len(pkgs) == 0 {
		panic("patterns matched no packages")
	}

	blue := color.New(color.FgBlue).SprintfFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := false
	for _, pkg := range pkgs {
		errs := shape.Check([]*packages.Package{pkg}, funcName)
		if len(errs) == 0 {
			fmt.Printf("%s: ok\n", blue(pkg.PkgPath))
			continue
		}
		failed = true
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		fmt.Fprintln(os.Stderr, red(pkg.PkgPath+": wrong shape"))
	}
	if failed {
		os.Exit(1)
	}
}
