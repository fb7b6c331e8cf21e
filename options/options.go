// Package options holds the generic functional-option plumbing shared by ftpsession types.
package options

// NewConnectorOption interface contains function that should be implemented by any custom option to qualify as
// a connector option.
// Example:
// ```
//
//	type loggerOpt struct{ logger logr.Logger }
//	func (o *loggerOpt) Apply(c *Connector) { c.logger = o.logger }
//	func (o *loggerOpt) NewConnectorOptionName() string { return "logger" }
//
// ```
type NewConnectorOption[T any] interface {
	Apply(*T)
	NewConnectorOptionName() string
}

// ApplyOptions applies each option to t in order. Nil options are skipped.
func ApplyOptions[T any](t *T, opts ...NewConnectorOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(t)
	}
}

// OptionNames returns the names of the given options, in order.
func OptionNames[T any](opts ...NewConnectorOption[T]) []string {
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		names = append(names, o.NewConnectorOptionName())
	}
	return names
}
