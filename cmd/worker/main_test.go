package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"filesmanager/internal/config"
)

func TestRun_ReturnsInitError(t *testing.T) {
	err := run(context.Background(), &config.Config{DBDriver: "postgres"})
	assert.ErrorContains(t, err, "initialize app")
}
