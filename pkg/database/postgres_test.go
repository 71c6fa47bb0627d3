package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/loan-reschedule-api/pkg/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: 5432, User: "mifos", Password: "secret", Name: "fineract_default"}
	assert.Equal(t, "host=db port=5432 user=mifos password=secret dbname=fineract_default sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}
