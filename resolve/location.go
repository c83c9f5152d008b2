package resolve

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// ErrNotAFunction is returned by LocationOf for values that are not functions.
var ErrNotAFunction = errors.New("not a function")

// Location is the declared location of a function: the namespace it lives in
// and its qualified local name, both dot-separated.
type Location struct {
	Module   string
	QualName string
}

// NewLocation returns a Location for the given dot-separated module and qualified name.
func NewLocation(module, qualname string) Location {
	return Location{Module: module, QualName: qualname}
}

// Namespace returns the module segments.
func (l Location) Namespace() []string {
	return splitDots(l.Module)
}

// Name returns the qualified name segments.
func (l Location) Name() []string {
	return splitDots(l.QualName)
}

func (l Location) String() string {
	switch {
	case l.QualName == "":
		return l.Module
	case l.Module == "":
		return l.QualName
	default:
		return l.Module + "." + l.QualName
	}
}

func splitDots(s string) []string {
	var parts []string

	for part := range strings.SplitSeq(s, ".") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

//nolint:gochecknoglobals // read once per process.
var mainModule = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	return info.Main.Path
})

// LocationOf derives the Location of a Go function from its runtime symbol.
//
// The namespace is the package import path rewritten as dot-separated
// segments. Packages inside the main module start with the module's last
// path element, the way a project name leads a module path:
//
//	github.com/acme/myproject/data/loaders.Build -> myproject.data.loaders + Build
//	github.com/acme/myproject/db.(*Client).Open  -> myproject.db + Client.Open
//
// Packages outside the main module drop a leading host and owner element
// when the first element looks like a host name.
func LocationOf(fn any) (Location, error) {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func || value.IsNil() {
		return Location{}, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}

	info := runtime.FuncForPC(value.Pointer())
	if info == nil {
		return Location{}, fmt.Errorf("%w: no symbol for %T", ErrNotAFunction, fn)
	}

	return parseSymbol(info.Name(), mainModule()), nil
}

func parseSymbol(symbol, module string) Location {
	dir, base := "", symbol
	if idx := strings.LastIndex(symbol, "/"); idx >= 0 {
		dir, base = symbol[:idx+1], symbol[idx+1:]
	}

	pkgName, qualname, _ := strings.Cut(base, ".")

	return Location{
		Module:   strings.Join(namespaceOf(dir+pkgName, module), "."),
		QualName: cleanQualName(qualname),
	}
}

func namespaceOf(pkgPath, module string) []string {
	if module != "" && (pkgPath == module || strings.HasPrefix(pkgPath, module+"/")) {
		rest := strings.TrimPrefix(strings.TrimPrefix(pkgPath, module), "/")
		parts := []string{path.Base(module)}

		if rest != "" {
			parts = append(parts, strings.Split(rest, "/")...)
		}

		return parts
	}

	parts := strings.Split(pkgPath, "/")
	if len(parts) > 2 && strings.Contains(parts[0], ".") {
		parts = parts[2:]
	}

	return parts
}

// cleanQualName turns "(*Client).Open-fm" into "Client.Open" and drops
// generic instantiation brackets.
func cleanQualName(qualname string) string {
	qualname = strings.TrimSuffix(qualname, "-fm")

	var builder strings.Builder

	depth := 0

	for _, r := range qualname {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth > 0, r == '(', r == ')', r == '*':
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
