package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr" json:"listen_addr"`
	RootDir    string `yaml:"root_dir" json:"root_dir"`
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и возвращает
// актуальную структуру.
func Load() (*Config, error) {
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ROOT_DIR"); v != "" {
		c.RootDir = v
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8888"
	}
	if c.RootDir == "" {
		c.RootDir = "."
	}

	return &c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
