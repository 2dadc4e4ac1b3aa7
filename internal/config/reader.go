package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding an optional config file path.
const PathEnv = "CONFIG_PATH"

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FileReader reads a YAML, JSON, TOML or .env file and then applies
// environment overrides on top of it.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", r.path, err)
	}

	return cfg, nil
}

// NewReader picks a FileReader when CONFIG_PATH is set and an EnvReader
// otherwise.
func NewReader() Reader {
	if path := os.Getenv(PathEnv); path != "" {
		return NewFileReader(path)
	}
	return NewEnvReader()
}
