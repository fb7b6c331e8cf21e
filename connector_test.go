package ftpsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/mocks"
	"github.com/c2fo/ftpsession/types"
)

type connectorTestSuite struct {
	suite.Suite
	dialer    *mocks.Dialer
	transport *mocks.Transport
}

func (s *connectorTestSuite) SetupTest() {
	s.dialer = mocks.NewDialer(s.T())
	s.transport = mocks.NewTransport(s.T())
}

func (s *connectorTestSuite) TestNewConnectorNoTransport() {
	_, err := NewConnector(WithScheme("nope"))
	s.ErrorIs(err, ErrNoTransport)
	s.Contains(err.Error(), `"nope"`)
}

func (s *connectorTestSuite) TestNewConnectorRegisteredScheme() {
	backend.Register("test-scheme", s.dialer)
	defer backend.Unregister("test-scheme")

	c, err := NewConnector(WithScheme("test-scheme"))
	s.Require().NoError(err)
	s.Same(s.dialer, c.dialer)
}

func (s *connectorTestSuite) TestNewConnectorInvalidOptions() {
	_, err := NewConnector(WithDialer(s.dialer), WithOptions(Options{MaxRetries: -1}))
	var preErr *PreconditionError
	s.ErrorAs(err, &preErr)

	_, err = NewConnector(WithDialer(s.dialer), WithOptions(Options{RetryDelay: -time.Second}))
	s.ErrorAs(err, &preErr)
}

func (s *connectorTestSuite) TestConnectDefaults() {
	expected := types.Params{Host: "ftp.example.com", Port: DefaultPort, Timeout: DefaultTimeout}
	s.dialer.On("Dial", mock.Anything, expected).Return(s.transport, nil).Once()

	fs := afero.NewMemMapFs()
	c, err := NewConnector(WithDialer(s.dialer), WithFs(fs), WithOptions(Options{StagingDir: "/stage"}))
	s.Require().NoError(err)

	conn, err := c.Connect(context.Background(), "ftp.example.com", 0, false, 0, true)
	s.Require().NoError(err)
	s.Equal(21, conn.Port())
	s.Equal(90*time.Second, conn.Timeout())
	s.True(conn.IsPassive())
	s.Nil(conn.Authentication(), "connections start unauthenticated")
	s.Same(fs, conn.fs)
	s.Equal("/stage", conn.stagingDir)
}

func (s *connectorTestSuite) TestConnectExplicit() {
	expected := types.Params{Host: "10.0.0.7", Port: 990, SSL: true, Timeout: 5 * time.Second}
	s.dialer.On("Dial", mock.Anything, expected).Return(s.transport, nil).Once()

	c, err := NewConnector(WithDialer(s.dialer))
	s.Require().NoError(err)

	conn, err := c.Connect(context.Background(), "10.0.0.7", 990, true, 5*time.Second, false)
	s.Require().NoError(err)
	s.True(conn.IsSSL())
	s.Equal("ftps://10.0.0.7:990", conn.String())
}

func (s *connectorTestSuite) TestConnectInvalidParams() {
	c, err := NewConnector(WithDialer(s.dialer))
	s.Require().NoError(err)

	for _, host := range []string{"", "not a host!", "-bad-.com"} {
		_, err = c.Connect(context.Background(), host, 21, false, 0, false)
		var preErr *PreconditionError
		s.ErrorAs(err, &preErr, host)
	}

	_, err = c.Connect(context.Background(), "ftp.example.com", 70000, false, 0, false)
	var preErr *PreconditionError
	s.ErrorAs(err, &preErr)
}

func (s *connectorTestSuite) TestConnectFailure() {
	s.dialer.On("Dial", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	c, err := NewConnector(WithDialer(s.dialer))
	s.Require().NoError(err)

	conn, err := c.Connect(context.Background(), "ftp.example.com", 2121, false, time.Second, false)
	s.Nil(conn)
	var connErr *ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.Equal("ftp.example.com", connErr.Params.Host)
	s.Equal(2121, connErr.Params.Port)
	s.Contains(err.Error(), "connection refused")
}

func (s *connectorTestSuite) TestConnectRetries() {
	s.dialer.On("Dial", mock.Anything, mock.Anything).Return(nil, errors.New("421 too many users")).Twice()
	s.dialer.On("Dial", mock.Anything, mock.Anything).Return(s.transport, nil).Once()

	c, err := NewConnector(WithDialer(s.dialer), WithOptions(Options{MaxRetries: 2, RetryDelay: time.Millisecond}))
	s.Require().NoError(err)

	conn, err := c.Connect(context.Background(), "ftp.example.com", 21, false, 0, false)
	s.NoError(err)
	s.NotNil(conn)
}

func (s *connectorTestSuite) TestConnectRetriesExhausted() {
	s.dialer.On("Dial", mock.Anything, mock.Anything).Return(nil, errors.New("421 too many users")).Times(3)

	c, err := NewConnector(WithDialer(s.dialer), WithOptions(Options{MaxRetries: 2, RetryDelay: time.Millisecond}))
	s.Require().NoError(err)

	_, err = c.Connect(context.Background(), "ftp.example.com", 21, false, 0, false)
	var connErr *ConnectionError
	s.Require().ErrorAs(err, &connErr)
	s.EqualError(connErr.Err, "421 too many users")
}

func (s *connectorTestSuite) TestLoggingNeverLeaksPassword() {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	s.dialer.On("Dial", mock.Anything, mock.Anything).Return(s.transport, nil).Once()
	s.transport.On("Login", "bob", "s3cr3t-pw").Return(nil).Once()
	s.transport.On("CurrentDir").Return("/", nil).Once()

	c, err := NewConnector(WithDialer(s.dialer), WithLogger(logger))
	s.Require().NoError(err)
	conn, err := c.Connect(context.Background(), "ftp.example.com", 21, false, 0, false)
	s.Require().NoError(err)
	s.Require().NoError(conn.Login(NewAuthentication("bob", "s3cr3t-pw")))
	_, err = conn.Pwd()
	s.Require().NoError(err)

	s.NotEmpty(lines)
	for _, line := range lines {
		s.NotContains(line, "s3cr3t-pw")
		s.Contains(line, "ftpsession")
	}
}

func (s *connectorTestSuite) TestOptionNames() {
	s.Equal("dialer", WithDialer(s.dialer).NewConnectorOptionName())
	s.Equal("scheme", WithScheme("ftp").NewConnectorOptionName())
	s.Equal("options", WithOptions(Options{}).NewConnectorOptionName())
	s.Equal("fs", WithFs(afero.NewMemMapFs()).NewConnectorOptionName())
}

func TestConnector(t *testing.T) {
	suite.Run(t, new(connectorTestSuite))
}
