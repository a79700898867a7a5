// Package options implements functional options shared by the codecs and the facade.
package options

// OptionConstructor returns the default value of an options bundle.
type OptionConstructor[T any] func() T

// OptionCallback mutates an options bundle.
type OptionCallback[T any] func(*T)

// ApplyOptions builds a bundle from constructor defaults and applies callbacks
// in order. Nil callbacks are skipped.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb == nil {
			continue
		}

		cb(&opts)
	}

	return opts
}

// Chain folds several callbacks into one, so a pre-built set of options can be
// passed where a single option is expected.
func Chain[T any](cbs ...OptionCallback[T]) OptionCallback[T] {
	return func(opts *T) {
		for _, cb := range cbs {
			if cb != nil {
				cb(opts)
			}
		}
	}
}
