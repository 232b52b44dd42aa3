package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/linkhub/internal/flagx"
	"github.com/dmitrijs2005/linkhub/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file. It uses
// timex.Duration for the validity field so both "24h" strings and integer
// nanoseconds parse. After unmarshalling, values are copied into the runtime
// Config.
type JsonConfig struct {
	EndpointAddr         string         `json:"endpoint_addr"`
	StorageBackend       string         `json:"storage_backend"`
	DatabaseDSN          string         `json:"database_dsn"`
	MongoURI             string         `json:"mongo_uri"`
	MongoDatabase        string         `json:"mongo_database"`
	BoltPath             string         `json:"bolt_path"`
	SecretKey            string         `json:"secret_key"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
	PasswordHashScheme   string         `json:"password_hash_scheme"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. An unreadable or malformed file
// panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.StorageBackend = c.StorageBackend
	config.DatabaseDSN = c.DatabaseDSN
	config.MongoURI = c.MongoURI
	config.MongoDatabase = c.MongoDatabase
	config.BoltPath = c.BoltPath
	config.SecretKey = c.SecretKey
	config.SessionTokenValidity = c.SessionTokenValidity.Duration
	config.PasswordHashScheme = c.PasswordHashScheme
}
