/*
Package testcontainers runs the backend conformance suite against real servers. It uses the local Docker daemon to
start vsftpd and checks that a Connection over the ftp backend behaves like one over the in-memory backend.

It is a separate module so the root module does not depend on Docker tooling.

	cd testcontainers && go test ./...
*/
package testcontainers
