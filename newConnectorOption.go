package ftpsession

import (
	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/c2fo/ftpsession/options"
	"github.com/c2fo/ftpsession/types"
)

const (
	optionNameDialer  = "dialer"
	optionNameScheme  = "scheme"
	optionNameLogger  = "logger"
	optionNameOptions = "options"
	optionNameFs      = "fs"
)

// WithDialer returns a NewConnectorOption that sets the dialer used to open transports.
func WithDialer(d types.Dialer) options.NewConnectorOption[Connector] {
	return &dialerOpt{dialer: d}
}

type dialerOpt struct {
	dialer types.Dialer
}

func (o *dialerOpt) Apply(c *Connector) {
	c.dialer = o.dialer
}

func (o *dialerOpt) NewConnectorOptionName() string {
	return optionNameDialer
}

// WithScheme returns a NewConnectorOption that selects the registered backend, ie: "ftp" or "mem".
func WithScheme(scheme string) options.NewConnectorOption[Connector] {
	return &schemeOpt{scheme: scheme}
}

type schemeOpt struct {
	scheme string
}

func (o *schemeOpt) Apply(c *Connector) {
	c.scheme = o.scheme
}

func (o *schemeOpt) NewConnectorOptionName() string {
	return optionNameScheme
}

// WithLogger returns a NewConnectorOption that sets the logger handed to every Connection.
func WithLogger(l logr.Logger) options.NewConnectorOption[Connector] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger logr.Logger
}

func (o *loggerOpt) Apply(c *Connector) {
	c.logger = o.logger
}

func (o *loggerOpt) NewConnectorOptionName() string {
	return optionNameLogger
}

// WithOptions returns a NewConnectorOption that sets the connector Options.
func WithOptions(opts Options) options.NewConnectorOption[Connector] {
	return &optionsOpt{options: opts}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(c *Connector) {
	c.options = o.options
}

func (o *optionsOpt) NewConnectorOptionName() string {
	return optionNameOptions
}

// WithFs returns a NewConnectorOption that sets the filesystem used for staging files and local paths.
func WithFs(fs afero.Fs) options.NewConnectorOption[Connector] {
	return &fsOpt{fs: fs}
}

type fsOpt struct {
	fs afero.Fs
}

func (o *fsOpt) Apply(c *Connector) {
	if o.fs != nil {
		c.fs = o.fs
	}
}

func (o *fsOpt) NewConnectorOptionName() string {
	return optionNameFs
}
