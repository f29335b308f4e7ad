package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/openmediahub/mediashelf/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
)

// Configuration keys.
const (
	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyDigest  = "digest"
	cfgKeyFields  = "fields"
)

// Snapshot backends.
const (
	backendFile   = "file"
	backendSQLite = "sqlite"

	defaultBackend = backendFile
)

// defaultConfigYAML is written to a fresh config directory so users can
// discover the available settings.
const defaultConfigYAML = `# shelf configuration

# Snapshot backend: "file" (one file per snapshot) or "sqlite".
#backend: file

# Data directory for snapshots. Relative paths resolve against the
# current working directory. Overridden by --data-dir.
#data_dir: .shelf-db

# Digest deriving item identifiers from media content: "sha256" or
# "sha512".
#digest: sha256

# Metadata schema. Uncomment to replace the Dublin Core default; the
# "identifier" field is always required.
#fields:
#  - name: identifier
#    description: An unambiguous reference to the resource within a given context.
#  - name: title
#    description: A name given to the resource.
`

// loadConfig ensures the config directory and a commented default
// config file exist, then reads the configuration. A missing config
// file is fine, defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, err
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, err
	}

	cfg := viper.New()
	cfg.SetConfigName(configFileName)
	cfg.SetConfigType(configFileType)
	cfg.AddConfigPath(configDir)

	cfg.SetDefault(cfgKeyBackend, defaultBackend)
	cfg.SetDefault(cfgKeyDigest, string(types.DefaultDigest))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return cfg, nil
}

func ensureConfigDir(configDir string) error {
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// fieldConfig mirrors one entry of the fields list in config.yaml.
type fieldConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// schemaFromConfig builds the metadata schema from the fields list, or
// falls back to Dublin Core when the config does not override it.
func schemaFromConfig(cfg *viper.Viper) (*types.FieldSet, error) {
	if !cfg.IsSet(cfgKeyFields) {
		return types.DublinCore(), nil
	}
	var raw []fieldConfig
	if err := cfg.UnmarshalKey(cfgKeyFields, &raw); err != nil {
		return nil, fmt.Errorf("parsing fields config: %w", err)
	}
	fields := make([]types.Field, len(raw))
	for i, f := range raw {
		fields[i] = types.Field{Name: f.Name, Description: f.Description}
	}
	schema, err := types.NewFieldSet(fields...)
	if err != nil {
		return nil, fmt.Errorf("fields config: %w", err)
	}
	return schema, nil
}

// digestFromConfig validates the configured digest by constructing it
// once.
func digestFromConfig(cfg *viper.Viper) (types.Digest, error) {
	d := types.Digest(cfg.GetString(cfgKeyDigest))
	if _, err := d.New(); err != nil {
		return "", fmt.Errorf("digest config: %w", err)
	}
	return d, nil
}
