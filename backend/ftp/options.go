package ftp

import (
	"context"
	"crypto/tls"
	"io"
	"os"
	"strings"
	"time"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpsession/types"
)

const (
	envProtocol    = "FTPSESSION_PROTOCOL"
	envDisableEPSV = "FTPSESSION_DISABLE_EPSV"

	protocolFTP   = "FTP"
	protocolFTPS  = "FTPS"
	protocolFTPES = "FTPES"
)

// Options holds ftp transport settings.
type Options struct {
	// Protocol is one of FTP, FTPS (implicit TLS) or FTPES (explicit TLS). env var FTPSESSION_PROTOCOL.
	// A connection opened with isSSL set upgrades FTP to FTPES.
	Protocol string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	// DisableEPSV falls back to PASV. env var FTPSESSION_DISABLE_EPSV.
	DisableEPSV *bool `json:"disableEPSV,omitempty" yaml:"disableEPSV,omitempty"`
	// DialTimeout overrides the connection timeout for the dial only.
	DialTimeout time.Duration `json:"dialTimeout,omitempty" yaml:"dialTimeout,omitempty"`
	// BandwidthLimit caps transfers in bytes per second. Zero means unlimited.
	BandwidthLimit float64 `json:"bandwidthLimit,omitempty" yaml:"bandwidthLimit,omitempty"`

	IncludeInsecureCiphers bool        `json:"includeInsecureCiphers,omitempty" yaml:"includeInsecureCiphers,omitempty"`
	TLSConfig              *tls.Config `json:"-" yaml:"-"`
	DebugWriter            io.Writer   `json:"-" yaml:"-"`
}

func fetchProtocol(opts Options) string {
	// set to default
	protocol := protocolFTP

	// if env var exists, use it
	if p, ok := os.LookupEnv(envProtocol); ok {
		protocol = strings.ToUpper(p)
	}

	// if Options exists, use it
	if opts.Protocol != "" {
		protocol = strings.ToUpper(opts.Protocol)
	}

	return protocol
}

func isDisableOption(opts Options) bool {
	disable := false
	if val, ok := os.LookupEnv(envDisableEPSV); ok {
		if strings.EqualFold(val, "true") || val == "1" {
			disable = true
		}
	}
	if opts.DisableEPSV != nil {
		disable = *opts.DisableEPSV
	}
	return disable
}

func fetchTLSConfig(host string, opts Options) *tls.Config {
	if opts.TLSConfig != nil {
		return opts.TLSConfig
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true, //nolint:gosec
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         host,
	}
	if opts.IncludeInsecureCiphers {
		for _, suite := range tls.CipherSuites() {
			cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
		}
		for _, suite := range tls.InsecureCipherSuites() {
			cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
		}
	}
	return cfg
}

func fetchDialOptions(ctx context.Context, p types.Params, opts Options) []_ftp.DialOption {
	// always use context, disable EPSV if opt is true
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithContext(ctx),
		_ftp.DialWithDisabledEPSV(isDisableOption(opts)),
	}

	protocol := fetchProtocol(opts)
	if p.SSL && protocol == protocolFTP {
		protocol = protocolFTPES
	}
	switch protocol {
	case protocolFTPS:
		dialOptions = append(dialOptions, _ftp.DialWithTLS(fetchTLSConfig(p.Host, opts)))
	case protocolFTPES:
		dialOptions = append(dialOptions, _ftp.DialWithExplicitTLS(fetchTLSConfig(p.Host, opts)))
	}

	timeout := opts.DialTimeout
	if timeout == 0 {
		timeout = p.Timeout
	}
	if timeout > 0 {
		dialOptions = append(dialOptions, _ftp.DialWithTimeout(timeout))
	}

	if opts.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(opts.DebugWriter))
	}

	return dialOptions
}
