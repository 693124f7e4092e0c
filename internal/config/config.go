package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		LoginKey     string `yaml:"login_key"`
		CookieMaxAge int    `yaml:"cookie_max_age"`
	} `yaml:"auth"`
	App struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"app"`
	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`

	// Location is resolved from App.Timezone at load time.
	Location *time.Location `yaml:"-"`
}

// LoadConfig reads the YAML config once at startup. Missing required keys or
// an unknown time zone are fatal: a half-configured server must not start.
func LoadConfig(path string) *Config {
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		panic("Failed to open " + path + ": " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse " + path + ": " + err.Error())
	}

	if cfg.Auth.LoginKey == "" {
		panic("auth.login_key is required")
	}
	if cfg.App.Timezone == "" {
		panic("app.timezone is required")
	}
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		panic("Invalid app.timezone: " + err.Error())
	}
	cfg.Location = loc

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.File == "" {
		cfg.Data.File = "data/todo.json"
	}
	if cfg.Auth.CookieMaxAge == 0 {
		cfg.Auth.CookieMaxAge = 3600
	}
	return &cfg
}
