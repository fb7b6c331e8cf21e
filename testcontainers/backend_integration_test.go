package testcontainers

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpsession"
	"github.com/c2fo/ftpsession/backend/testsuite"
	"github.com/c2fo/ftpsession/ftpsimple"
	"github.com/c2fo/ftpsession/utils"
)

const baseDir = "/conformance"

type server struct {
	conn *ftpsession.Connection
	opts testsuite.ConformanceOptions
}

type sessionTestSuite struct {
	suite.Suite
	servers map[string]server
}

func (s *sessionTestSuite) SetupSuite() {
	starters := []func(*testing.T) string{
		startMem,
		startVSFTPD,
	}
	uris := make([]string, len(starters))
	var wg sync.WaitGroup
	for i := range starters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uris[i] = starters[i](s.T())
		}()
	}
	wg.Wait()

	s.servers = make(map[string]server)
	for _, uri := range uris {
		auth, err := utils.NewAuthority(uri)
		s.Require().NoError(err)

		conn, err := ftpsimple.Connect(context.Background(), uri)
		s.Require().NoError(err)
		s.Require().NoError(conn.Mkdir(baseDir, true))

		// jlaffaye/ftp sends neither raw verbs nor SITE CHMOD
		ftpBacked := auth.Scheme() != "mem"
		s.servers[auth.Scheme()] = server{
			conn: conn,
			opts: testsuite.ConformanceOptions{
				SkipRawCommands: ftpBacked,
				SkipChmod:       ftpBacked,
			},
		}
	}
}

func (s *sessionTestSuite) TearDownSuite() {
	for _, srv := range s.servers {
		s.NoError(srv.conn.Close())
	}
}

func startMem(*testing.T) string {
	return "mem://localhost/"
}

// TestScheme runs conformance tests for each started server
func (s *sessionTestSuite) TestScheme() {
	for scheme, srv := range s.servers {
		fmt.Printf("************** TESTING scheme: %s **************\n", scheme)

		s.Run(scheme, func() {
			testsuite.RunConformanceTests(s.T(), srv.conn, baseDir, srv.opts)
		})
	}
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}
