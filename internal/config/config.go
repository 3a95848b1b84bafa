package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bufrkit/internal/tables"
)

// EnvDefinitionPath overrides definitions_path with a list separated by the
// OS path list separator.
const EnvDefinitionPath = "BUFRKIT_DEFINITION_PATH"

type Config struct {
	DefinitionsPath []string          `toml:"definitions_path"`
	RowPolicy       string            `toml:"row_policy"`
	Table           TableConfig       `toml:"table"`
	Context         map[string]string `toml:"context"`
	Server          ServerConfig      `toml:"server"`
}

type TableConfig struct {
	Dictionary string `toml:"dictionary"`
	MasterDir  string `toml:"master_dir"`
	LocalDir   string `toml:"local_dir"`
}

type ServerConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func Default() Config {
	return Config{
		DefinitionsPath: []string{"definitions"},
		RowPolicy:       tables.RowsStrict.String(),
		Table: TableConfig{
			Dictionary: "element.table",
			MasterDir:  "tablesMasterDir",
			LocalDir:   "tablesLocalDir",
		},
		Context: map[string]string{},
		Server: ServerConfig{
			Name: "bufrdesc",
			Addr: ":9300",
		},
	}
}

// Load reads path over the defaults, applies env overrides and validates.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if meta.IsDefined("definitions_path") {
		cfg.DefinitionsPath = raw.DefinitionsPath
	}
	if meta.IsDefined("row_policy") {
		cfg.RowPolicy = strings.TrimSpace(raw.RowPolicy)
	}
	if meta.IsDefined("table", "dictionary") {
		cfg.Table.Dictionary = strings.TrimSpace(raw.Table.Dictionary)
	}
	if meta.IsDefined("table", "master_dir") {
		cfg.Table.MasterDir = strings.TrimSpace(raw.Table.MasterDir)
	}
	if meta.IsDefined("table", "local_dir") {
		cfg.Table.LocalDir = strings.TrimSpace(raw.Table.LocalDir)
	}
	for k, v := range raw.Context {
		cfg.Context[k] = v
	}
	if meta.IsDefined("server", "name") {
		cfg.Server.Name = strings.TrimSpace(raw.Server.Name)
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = raw.Server.CorsOrigins
	}

	applyEnvOverrides(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	raw := strings.TrimSpace(os.Getenv(EnvDefinitionPath))
	if raw == "" {
		return
	}
	cfg.DefinitionsPath = filepath.SplitList(raw)
}

func Validate(cfg Config) error {
	roots := 0
	for _, p := range cfg.DefinitionsPath {
		if strings.TrimSpace(p) != "" {
			roots++
		}
	}
	if roots == 0 {
		return fmt.Errorf("config missing definitions_path")
	}
	if strings.TrimSpace(cfg.Table.Dictionary) == "" {
		return fmt.Errorf("config missing table.dictionary")
	}
	if _, err := tables.ParseRowPolicy(cfg.RowPolicy); err != nil {
		return fmt.Errorf("config row_policy invalid: %w", err)
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("config missing server.addr")
	}
	return nil
}

// Policy returns the parsed row policy; call after Validate.
func (c Config) Policy() tables.RowPolicy {
	p, _ := tables.ParseRowPolicy(c.RowPolicy)
	return p
}

// Source returns the table source described by the config.
func (c Config) Source() tables.Source {
	return tables.Source{
		Dictionary: c.Table.Dictionary,
		MasterDir:  c.Table.MasterDir,
		LocalDir:   c.Table.LocalDir,
	}
}
