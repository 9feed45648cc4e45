package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testYaml = `
app:
  env: dev
  debug: true
mysql:
  host: 127.0.0.1
  port: 3306
  username: root
  password: root
  database: seecooker
redis:
  address: 127.0.0.1
  port: 6379
  database: 0
jwt:
  secret: test-secret
  expires_hour: 24
server:
  http: 8080
`

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testYaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New(path)
	assert.True(t, cfg.Debug())
	assert.Equal(t, 8080, cfg.Server.Http)
	assert.Equal(t, "test-secret", cfg.Jwt.Secret)
	assert.Equal(t,
		"root:root@tcp(127.0.0.1:3306)/seecooker?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.MySQL.Dsn())
}
