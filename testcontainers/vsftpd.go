package testcontainers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUser     = "admin"
	vsftpdPassword = "dummy"
)

// startVSFTPD starts a vsftpd container and returns a connection URL for it. Passive data ports are published
// one-to-one so the addresses vsftpd advertises are reachable from the host.
func startVSFTPD(t *testing.T) string {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "ftpsession-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env: map[string]string{
				"FTP_USER":     vsftpdUser,
				"FTP_PASS":     vsftpdPassword,
				"PASV_ADDRESS": "127.0.0.1",
			},
			WaitingFor: wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)

	return fmt.Sprintf("ftp://%s:%s@%s:%s/", vsftpdUser, vsftpdPassword, host, port.Port())
}
