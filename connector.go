package ftpsession

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/options"
	"github.com/c2fo/ftpsession/types"
)

// Connector opens Connections. It checks at construction that a transport is available.
type Connector struct {
	dialer  types.Dialer
	scheme  string
	logger  logr.Logger
	fs      afero.Fs
	options Options
}

// NewConnector returns a Connector. Without WithDialer, the dialer registered for the connector scheme ("ftp" by
// default) is used; if none is registered construction fails with ErrNoTransport.
func NewConnector(opts ...options.NewConnectorOption[Connector]) (*Connector, error) {
	c := &Connector{
		scheme: defaultScheme,
		logger: logr.Discard(),
		fs:     afero.NewOsFs(),
	}
	options.ApplyOptions(c, opts...)

	if err := validate.Struct(c.options); err != nil {
		return nil, &PreconditionError{Op: "connector", Err: err}
	}

	if c.dialer == nil {
		c.dialer = backend.Backend(c.scheme)
	}
	if c.dialer == nil {
		return nil, &PreconditionError{Op: "connector", Err: fmt.Errorf("%w: %q", ErrNoTransport, c.scheme)}
	}

	return c, nil
}

// Options returns the connector options.
func (c *Connector) Options() Options {
	return c.options
}

// Connect dials host and returns an unauthenticated Connection. A zero port means DefaultPort and a zero timeout
// means DefaultTimeout. passive is applied on Login.
func (c *Connector) Connect(ctx context.Context, host string, port int, isSSL bool, timeout time.Duration,
	passive bool) (*Connection, error) {
	if port == 0 {
		port = DefaultPort
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	p := types.Params{
		Host:    host,
		Port:    port,
		SSL:     isSSL,
		Timeout: timeout,
	}
	if err := validate.StructCtx(ctx, p); err != nil {
		return nil, &PreconditionError{Op: "connect", Err: err}
	}

	handle, err := c.dial(ctx, p)
	if err != nil {
		return nil, &ConnectionError{Params: p, Err: err}
	}

	conn, err := NewConnection(p, handle, passive)
	if err != nil {
		return nil, err
	}
	conn.SetLogger(c.logger)
	conn.SetDialer(c.dialer)
	conn.SetFs(c.fs)
	conn.stagingDir = c.options.StagingDir
	conn.logger.V(1).Info("connected", "port", port, "ssl", isSSL)

	return conn, nil
}

func (c *Connector) dial(ctx context.Context, p types.Params) (types.Transport, error) {
	var handle types.Transport
	err := retry.Do(
		func() error {
			var err error
			handle, err = c.dialer.Dial(ctx, p)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.options.MaxRetries)+1),
		retry.Delay(c.options.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Info("dial failed, retrying", "host", p.Host, "attempt", n+1, "error", err.Error())
		}),
	)
	if err != nil {
		return nil, err
	}
	return handle, nil
}
