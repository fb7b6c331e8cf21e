//go:build ftpsessionintegration

// This file provides a manual integration test runner. It uses ftpsimple, which registers all transports via
// backend/all.

package testsuite

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpsession"
	"github.com/c2fo/ftpsession/ftpsimple"
	"github.com/c2fo/ftpsession/utils"
)

type sessionTestSuite struct {
	suite.Suite
	conns map[string]*ftpsession.Connection
	dirs  map[string]string
}

func (s *sessionTestSuite) SetupSuite() {
	s.conns = make(map[string]*ftpsession.Connection)
	s.dirs = make(map[string]string)
	for _, uri := range strings.Split(os.Getenv("FTPSESSION_INTEGRATION_URLS"), ";") {
		if uri == "" {
			continue
		}
		conn, err := ftpsimple.Connect(context.Background(), uri)
		s.Require().NoError(err)

		auth, err := utils.NewAuthority(uri)
		s.Require().NoError(err)
		dir := auth.Path()
		if dir == "" {
			dir = "/"
		}
		s.Require().NoError(conn.Mkdir(dir, true))

		s.conns[uri] = conn
		s.dirs[uri] = dir
	}
}

func (s *sessionTestSuite) TearDownSuite() {
	for _, conn := range s.conns {
		s.NoError(conn.Close())
	}
}

// TestURLs runs conformance tests for each configured server
func (s *sessionTestSuite) TestURLs() {
	for uri, conn := range s.conns {
		fmt.Printf("************** TESTING: %s **************\n", conn)

		opts := ConformanceOptions{
			SkipRawCommands: strings.HasPrefix(uri, "ftp"),
			SkipChmod:       strings.HasPrefix(uri, "ftp"),
		}

		s.Run(conn.String(), func() {
			RunConformanceTests(s.T(), conn, s.dirs[uri], opts)
		})
	}
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}
