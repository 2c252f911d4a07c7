// Package shape checks that a Go function has the stack-array-of-pointers
// shape: a single parameter of type *[2]*int32 and no results.
package shape

import (
	"go/token"
	"go/types"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

var (
	ErrNotFound = errors.New("function not found")
	ErrShape    = errors.New("wrong shape")
)

// Arity is the required length of the pointer array.
const Arity = 2

func NewPackageConfig(modDir string) *packages.Config {
	mode := packages.NeedName | packages.NeedCompiledGoFiles
	mode |= packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo
	return &packages.Config{
		Dir:  modDir,
		Env:  os.Environ(),
		Mode: mode,
		Fset: token.NewFileSet(),
	}
}

// pointerArray reports whether t is a pointer to an array of Arity pointers to
// int32.
func pointerArray(t types.Type) bool {
	ptr, ok := t.Underlying().(*types.Pointer)
	if !ok {
		return false
	}
	arr, ok := ptr.Elem().Underlying().(*types.Array)
	if !ok || arr.Len() != Arity {
		return false
	}
	elt, ok := arr.Elem().Underlying().(*types.Pointer)
	if !ok {
		return false
	}
	basic, ok := elt.Elem().Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Int32
}

// CheckFunc checks the package-level function name in pkg.
func CheckFunc(pkg *packages.Package, name string) error {
	if pkg.Types == nil {
		return errors.Errorf("%s: no type information", pkg.PkgPath)
	}
	obj, ok := pkg.Types.Scope().Lookup(name).(*types.Func)
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s.%s", pkg.PkgPath, name)
	}
	sig := obj.Type().(*types.Signature)
	if sig.Recv() != nil || sig.TypeParams().Len() > 0 {
		return errors.Wrapf(ErrShape, "%s: must be a plain function", obj.FullName())
	}
	if sig.Params().Len() != 1 {
		return errors.Wrapf(ErrShape, "%s: takes %d parameters, want 1",
			obj.FullName(), sig.Params().Len())
	}
	if param := sig.Params().At(0).Type(); !pointerArray(param) {
		return errors.Wrapf(ErrShape, "%s: parameter has type %s, want *[%d]*int32",
			obj.FullName(), param, Arity)
	}
	if sig.Results().Len() != 0 {
		return errors.Wrapf(ErrShape, "%s: returns %s, want nothing",
			obj.FullName(), sig.Results())
	}
	return nil
}

// Check runs CheckFunc on every package, first reporting any errors from
// loading it.
func Check(pkgs []*packages.Package, name string) []error {
	var errs []error
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, e := range pkg.Errors {
				errs = append(errs, errors.Errorf("%s: %v", pkg.PkgPath, e))
			}
			continue
		}
		if err := CheckFunc(pkg, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
