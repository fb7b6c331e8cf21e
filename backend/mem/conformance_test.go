package mem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2fo/ftpsession"
	"github.com/c2fo/ftpsession/backend/mem"
	"github.com/c2fo/ftpsession/backend/testsuite"
)

func TestConformance(t *testing.T) {
	srv := mem.NewServer()
	srv.AddUser("bob", "secret")
	srv.MkdirAll("/home/bob")

	connector, err := ftpsession.NewConnector(ftpsession.WithDialer(srv))
	require.NoError(t, err)

	conn, err := connector.Connect(context.Background(), "localhost", 0, false, 0, true)
	require.NoError(t, err)
	defer func() { require.NoError(t, conn.Close()) }()

	require.NoError(t, conn.Login(ftpsession.NewAuthentication("bob", "secret")))
	require.NoError(t, conn.Chdir("/home/bob"))

	testsuite.RunConformanceTests(t, conn, "/home/bob", testsuite.ConformanceOptions{})
}
