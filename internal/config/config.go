package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

// EnvConfigFile points at the TOML configuration file. When unset the
// compiled-in defaults are used, which match the local development database.
const EnvConfigFile = "LAKECATSRV_CONFIG"

type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
	MaxConns int    `toml:"max_conns"`
}

// DSN renders the config as a key/value connection string for the pgx
// stdlib driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL renders the config as a postgres:// URL, as the migration tooling
// expects.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type ServerConfig struct {
	Address    string         `toml:"address"`
	HandleCORS bool           `toml:"handle_cors"`
	CORSOrigin string         `toml:"cors_origin"`
	Database   DatabaseConfig `toml:"database"`
}

var (
	cfg  *ServerConfig
	once sync.Once
)

func defaultConfig() *ServerConfig {
	return &ServerConfig{
		Address:    ":8190",
		HandleCORS: false,
		CORSOrigin: "http://localhost:8190",
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "lakecatsrv",
			Password: "lakecatsrv",
			DBName:   "lakecatalog",
			SSLMode:  "disable",
			MaxConns: 10,
		},
	}
}

// Config returns the process-wide server configuration, loading it on first use.
func Config() *ServerConfig {
	once.Do(func() {
		c := defaultConfig()
		if path := os.Getenv(EnvConfigFile); path != "" {
			if _, err := toml.DecodeFile(path, c); err != nil {
				panic(fmt.Sprintf("unable to load config %s: %v", path, err))
			}
		}
		cfg = c
	})
	return cfg
}
