// Package config loads the optional defaults file of gff-utils.
//
// The file is YAML:
//
//	log_level: info
//	format: gtf
//	table:
//	  comment_char: "//"
//	  skip_rows: 1
//	  key: ID
//	fields:
//	  num_ann: 500
//
// Command line flags always take precedence over these values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/frubino/gff-utils/pkg/table"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "GFF_UTILS_CONFIG"

// Config holds the defaults used by the commands.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Format   string       `mapstructure:"format"`
	Table    TableConfig  `mapstructure:"table"`
	Fields   FieldsConfig `mapstructure:"fields"`
}

// TableConfig holds the defaults of the table command.
type TableConfig struct {
	CommentChar string `mapstructure:"comment_char"`
	SkipRows    int    `mapstructure:"skip_rows"`
	Key         string `mapstructure:"key"`
}

// FieldsConfig holds the defaults of the fields command.
type FieldsConfig struct {
	NumAnn int `mapstructure:"num_ann"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   "gff",
		Table: TableConfig{
			CommentChar: table.DefaultCommentPrefix,
			SkipRows:    0,
			Key:         "uid",
		},
		Fields: FieldsConfig{NumAnn: 100},
	}
}

// Load reads the config file at path on top of the defaults.
// An empty path falls back to $GFF_UTILS_CONFIG; with neither, the defaults
// are returned. A path given through the environment may not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg. Keys absent from data keep their value.
func Parse(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
