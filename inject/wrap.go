package inject

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xalexb/hydr8/resolve"
)

var (
	// ErrNilFunc is returned by Wrap for a nil function.
	ErrNilFunc = errors.New("nil function")
	// ErrUnknownParameter is returned by Wrap when AsDict names no parameter and no collector is declared.
	ErrUnknownParameter = errors.New("unknown parameter")
)

// Func is a function that receives its arguments by name.
type Func[R any] func(args Args) (R, error)

// WrapOption configures a Wrapped function.
type WrapOption func(*wrapOptions)

type wrapOptions struct {
	name     string
	doc      string
	location *resolve.Location
}

// WithName overrides the name reported by Wrapped.Name.
func WithName(name string) WrapOption {
	return func(o *wrapOptions) {
		o.name = name
	}
}

// WithDoc attaches documentation reported by Wrapped.Doc.
func WithDoc(doc string) WrapOption {
	return func(o *wrapOptions) {
		o.doc = doc
	}
}

// WithLocation sets the location used for path derivation instead of the
// one computed from the function's symbol.
func WithLocation(loc resolve.Location) WrapOption {
	return func(o *wrapOptions) {
		o.location = &loc
	}
}

// Wrapped is a function whose missing arguments are supplied from configuration.
type Wrapped[R any] struct {
	proxy    *Proxy
	sig      Signature
	fn       Func[R]
	location resolve.Location
	name     string
	doc      string
}

// Wrap binds fn to proxy. The signature is fixed here; the location used for
// automatic path derivation is computed once from fn unless WithLocation is given.
func Wrap[R any](proxy *Proxy, sig Signature, fn Func[R], opts ...WrapOption) (*Wrapped[R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	var options wrapOptions

	for _, apply := range opts {
		apply(&options)
	}

	if proxy.asDict != "" && !sig.isNamed(proxy.asDict) && !sig.HasCollector() {
		return nil, fmt.Errorf("%w: AsDict target %q", ErrUnknownParameter, proxy.asDict)
	}

	var location resolve.Location

	if options.location != nil {
		location = *options.location
	} else {
		derived, err := resolve.LocationOf(fn)
		if err != nil {
			return nil, err
		}

		location = derived
	}

	name := options.name
	if name == "" {
		if parts := location.Name(); len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return &Wrapped[R]{
		proxy:    proxy,
		sig:      sig,
		fn:       fn,
		location: location,
		name:     name,
		doc:      options.doc,
	}, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap[R any](proxy *Proxy, sig Signature, fn Func[R], opts ...WrapOption) *Wrapped[R] {
	wrapped, err := Wrap(proxy, sig, fn, opts...)
	if err != nil {
		panic(err)
	}

	return wrapped
}

// Name returns the wrapped function's name.
func (w *Wrapped[R]) Name() string { return w.name }

// Doc returns the documentation given with WithDoc.
func (w *Wrapped[R]) Doc() string { return w.doc }

// Location returns the location used for automatic path derivation.
func (w *Wrapped[R]) Location() resolve.Location { return w.location }

// Signature returns the declared signature.
func (w *Wrapped[R]) Signature() Signature { return w.sig }

// Unwrap returns the original function.
func (w *Wrapped[R]) Unwrap() Func[R] { return w.fn }

// Call invokes the function with keyword arguments only.
func (w *Wrapped[R]) Call(kw Args) (R, error) {
	return w.Invoke(context.Background(), nil, kw)
}

// Invoke binds positional and keyword arguments, supplies missing ones from
// configuration and calls the function.
//
// When every required parameter is already supplied, the store is not read
// at all. Otherwise the current tree (ctx overrides first) is resolved and
// merged: caller values always win, and configuration keys that match no
// parameter go to the collector or are dropped.
func (w *Wrapped[R]) Invoke(ctx context.Context, positional []any, kw Args) (R, error) {
	var zero R

	bound, err := w.sig.bind(positional, kw)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", w.name, err)
	}

	if len(w.sig.missing(bound.supplied)) > 0 {
		resolved, err := w.proxy.resolveFor(ctx, w.location)
		if err != nil {
			return zero, err
		}

		w.merge(bound, resolved)
	}

	args, err := w.sig.arguments(bound)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", w.name, err)
	}

	return w.fn(args)
}

func (w *Wrapped[R]) merge(bound *binding, resolved map[string]any) {
	if target := w.proxy.asDict; target != "" {
		if w.sig.isNamed(target) {
			if _, ok := bound.supplied[target]; !ok {
				bound.supplied[target] = resolved
			}

			return
		}

		if _, ok := bound.rest[target]; !ok {
			bound.rest[target] = resolved
		}

		return
	}

	for key, value := range resolved {
		switch {
		case w.sig.isNamed(key):
			if _, ok := bound.supplied[key]; !ok {
				bound.supplied[key] = value
			}
		case w.sig.HasCollector():
			if _, ok := bound.rest[key]; !ok {
				bound.rest[key] = value
			}
		}
	}
}
