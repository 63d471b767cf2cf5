package app

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config configures the users demo.
type Config struct {
	// Address is the listen address of the rmvc HTTP/1.1 server.
	Address string `json:"address"`

	// HTTPAddress, when set, also serves the dispatcher through net/http.
	HTTPAddress string `json:"http_address"`

	// HTTP3Address, when set together with TLSCert and TLSKey, serves over HTTP/3.
	HTTP3Address string `json:"http3_address"`
	TLSCert      string `json:"tls_cert"`
	TLSKey       string `json:"tls_key"`

	DBPath  string `json:"db_path"`
	Verbose bool   `json:"verbose"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		DBPath:  "users.db",
	}
}

// LoadConfig reads the JSON file at path over the defaults, then applies
// RMVC_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	c.applyEnv()

	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.DBPath == "" {
		c.DBPath = "users.db"
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	for key, field := range map[string]*string{
		"RMVC_ADDRESS":       &c.Address,
		"RMVC_HTTP_ADDRESS":  &c.HTTPAddress,
		"RMVC_HTTP3_ADDRESS": &c.HTTP3Address,
		"RMVC_TLS_CERT":      &c.TLSCert,
		"RMVC_TLS_KEY":       &c.TLSKey,
		"RMVC_DB_PATH":       &c.DBPath,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	if v, ok := os.LookupEnv("RMVC_VERBOSE"); ok {
		if verbose, err := strconv.ParseBool(v); err == nil {
			c.Verbose = verbose
		}
	}
}

// HTTP3Enabled reports whether the HTTP/3 listener is fully configured.
func (c *Config) HTTP3Enabled() bool {
	return c.HTTP3Address != "" && c.TLSCert != "" && c.TLSKey != ""
}
