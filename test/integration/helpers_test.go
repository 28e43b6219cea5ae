// Package integration holds container-backed tests for the postgres version
// store and the redis cache and locker.  The suite needs a local Docker
// daemon; set GREENLIGHT_INTEGRATION=1 to run it.
package integration

import (
	"context"
	"os"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("GREENLIGHT_INTEGRATION") != "1" {
		t.Skip("set GREENLIGHT_INTEGRATION=1 to run container-backed tests")
	}
}

// startContainer launches an image, registers cleanup, and returns the mapped
// host and port for the given container port.
func startContainer(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, int) {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start %s: %v", req.Image, err)
	}
	t.Cleanup(func() {
		_ = ctr.Terminate(context.Background())
	})

	host, err := ctr.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	mapped, err := ctr.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("mapped port %s: %v", port, err)
	}
	return host, mapped.Int()
}
