package gui

// Option configures a widget call.
type Option func(*options)

type options struct {
	id string
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithID sets an explicit disambiguator (use in loops or for repeated labels).
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}
