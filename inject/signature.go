package inject

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidSignature is returned for malformed parameter declarations.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrMissingArgument is returned when a required parameter has no value after injection.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrTooManyArguments is returned when positional arguments exceed the declared parameters.
	ErrTooManyArguments = errors.New("too many positional arguments")
	// ErrDuplicateArgument is returned when a parameter is given both positionally and by keyword.
	ErrDuplicateArgument = errors.New("multiple values for argument")
	// ErrUnexpectedArgument is returned for a keyword that names no parameter and no collector exists.
	ErrUnexpectedArgument = errors.New("unexpected keyword argument")
)

// Kind classifies a declared parameter.
type Kind int

const (
	// KindRequired parameters have no default value.
	KindRequired Kind = iota
	// KindOptional parameters fall back to their Default.
	KindOptional
	// KindVariadic collects positional arguments beyond the named parameters.
	KindVariadic
	// KindCollector collects keyword arguments that match no named parameter.
	KindCollector
)

// Param describes one parameter of a wrapped function.
type Param struct {
	Name    string
	Kind    Kind
	Default any
}

// Required declares a parameter without a default.
func Required(name string) Param {
	return Param{Name: name, Kind: KindRequired}
}

// Optional declares a parameter that takes def when neither the caller nor the configuration supplies it.
func Optional(name string, def any) Param {
	return Param{Name: name, Kind: KindOptional, Default: def}
}

// Variadic declares a parameter receiving surplus positional arguments as []any.
func Variadic(name string) Param {
	return Param{Name: name, Kind: KindVariadic}
}

// Collector declares a parameter receiving unmatched keyword arguments and
// unmatched configuration keys as Args.
func Collector(name string) Param {
	return Param{Name: name, Kind: KindCollector}
}

// Signature is the parameter list of a wrapped function, captured once at wrap time.
type Signature struct {
	params    []Param
	named     map[string]int
	variadic  string
	collector string
}

// NewSignature validates params and builds a Signature.
// Names must be unique and non-empty; at most one Variadic and one Collector are allowed.
func NewSignature(params ...Param) (Signature, error) {
	sig := Signature{
		params: slices.Clone(params),
		named:  make(map[string]int, len(params)),
	}

	seen := make(map[string]bool, len(params))

	for i, param := range params {
		if param.Name == "" {
			return Signature{}, fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}

		if seen[param.Name] {
			return Signature{}, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSignature, param.Name)
		}

		seen[param.Name] = true

		switch param.Kind {
		case KindRequired, KindOptional:
			sig.named[param.Name] = i
		case KindVariadic:
			if sig.variadic != "" {
				return Signature{}, fmt.Errorf("%w: second variadic parameter %q", ErrInvalidSignature, param.Name)
			}

			sig.variadic = param.Name
		case KindCollector:
			if sig.collector != "" {
				return Signature{}, fmt.Errorf("%w: second collector parameter %q", ErrInvalidSignature, param.Name)
			}

			sig.collector = param.Name
		default:
			return Signature{}, fmt.Errorf("%w: parameter %q has unknown kind %d", ErrInvalidSignature, param.Name, param.Kind)
		}
	}

	return sig, nil
}

// MustSignature is like NewSignature but panics on error.
func MustSignature(params ...Param) Signature {
	sig, err := NewSignature(params...)
	if err != nil {
		panic(err)
	}

	return sig
}

// Params returns a copy of the declared parameters.
func (s Signature) Params() []Param {
	return slices.Clone(s.params)
}

// Required returns the names of required parameters in declaration order.
func (s Signature) Required() []string {
	var names []string

	for _, param := range s.params {
		if param.Kind == KindRequired {
			names = append(names, param.Name)
		}
	}

	return names
}

// HasCollector reports whether a collector parameter is declared.
func (s Signature) HasCollector() bool {
	return s.collector != ""
}

func (s Signature) isNamed(name string) bool {
	_, ok := s.named[name]

	return ok
}

// binding is the result of matching call arguments against a Signature.
type binding struct {
	supplied Args
	extra    []any
	rest     Args
}

func (s Signature) bind(positional []any, kw Args) (*binding, error) {
	bound := &binding{
		supplied: make(Args, len(s.named)),
		rest:     Args{},
	}

	// Positionals fill named parameters in order until the variadic
	// parameter, which takes the remainder. Later parameters are keyword-only.
	remaining := positional

	for _, param := range s.params {
		if len(remaining) == 0 {
			break
		}

		switch param.Kind {
		case KindRequired, KindOptional:
			bound.supplied[param.Name] = remaining[0]
			remaining = remaining[1:]
		case KindVariadic:
			bound.extra = append(bound.extra, remaining...)
			remaining = nil
		case KindCollector:
		}
	}

	if len(remaining) > 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyArguments, len(positional))
	}

	for name, value := range kw {
		switch {
		case s.isNamed(name):
			if _, ok := bound.supplied[name]; ok {
				return nil, fmt.Errorf("%w %q", ErrDuplicateArgument, name)
			}

			bound.supplied[name] = value
		case s.collector != "":
			bound.rest[name] = value
		default:
			return nil, fmt.Errorf("%w %q", ErrUnexpectedArgument, name)
		}
	}

	return bound, nil
}

// missing returns the required parameters that supplied does not cover.
func (s Signature) missing(supplied Args) []string {
	var names []string

	for _, param := range s.params {
		if param.Kind != KindRequired {
			continue
		}

		if _, ok := supplied[param.Name]; !ok {
			names = append(names, param.Name)
		}
	}

	return names
}

// arguments fills defaults, variadic and collector values and checks that
// every required parameter is present.
func (s Signature) arguments(bound *binding) (Args, error) {
	if missing := s.missing(bound.supplied); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
	}

	args := make(Args, len(s.params))

	for _, param := range s.params {
		switch param.Kind {
		case KindRequired:
			args[param.Name] = bound.supplied[param.Name]
		case KindOptional:
			if value, ok := bound.supplied[param.Name]; ok {
				args[param.Name] = value
			} else {
				args[param.Name] = param.Default
			}
		case KindVariadic:
			args[param.Name] = append([]any{}, bound.extra...)
		case KindCollector:
			args[param.Name] = bound.rest
		}
	}

	return args, nil
}
