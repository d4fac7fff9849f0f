package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/plm-management-toolkit/gateway/config"
	"github.com/plm-management-toolkit/gateway/internal/app"
	secrets "github.com/plm-management-toolkit/gateway/pkg/secrets/vault"
)

// jwtKeySecretName is the field holding the token signing key in the secret
// store.
const jwtKeySecretName = "jwtKey"

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
	newSecretsClientFunc = func(cfg *config.Secrets) (secrets.Storager, error) {
		return secrets.NewClient(cfg)
	}
)

func main() {
	// Local overrides; absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	handleSecretsConfig(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config error: %s", err)
	}

	runAppFunc(cfg)
}

// handleSecretsConfig fetches the JWT signing key from the secret store when
// one is configured and the key did not arrive via file or environment.
func handleSecretsConfig(cfg *config.Config) {
	if cfg.Auth.JWTKey != "" || cfg.Secrets.Address == "" {
		return
	}

	client, err := newSecretsClientFunc(&cfg.Secrets)
	if err != nil {
		log.Printf("Secret store unavailable: %s", err)

		return
	}

	key, err := client.GetKeyValue(jwtKeySecretName)
	if err != nil {
		log.Printf("Secret store read failed: %s", err)

		return
	}

	cfg.Auth.JWTKey = key
}
