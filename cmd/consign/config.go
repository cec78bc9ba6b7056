// Config loading for the consign CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend     = "backend"
	cfgKeyDataDir     = "data_dir"
	cfgKeyAdminUser   = "admin_user"
	cfgKeyAdminHash   = "admin_password_hash"
	cfgKeyTokenSecret = "token_secret"

	defaultBackend   = "sqlite"
	defaultAdminUser = "admin"
)

// defaultConfigYAML is written to config.yaml by "consign init".
// %s placeholders: admin user, bcrypt password hash, token secret.
const defaultConfigYAML = `# Consign CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Admin credentials for "consign login"
admin_user: %s
admin_password_hash: %q

# Secret used to sign session tokens
token_secret: %q
`

// loadConfig reads config.yaml from the resolved config directory
// using Viper. A missing config.yaml is not an error; "consign init"
// creates it.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyAdminUser, defaultAdminUser)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigFile creates the config directory and writes config.yaml
// with the given admin credentials.
func writeConfigFile(configDir, adminUser, passwordHash, tokenSecret string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(configDir, configFileExt)
	content := fmt.Sprintf(defaultConfigYAML, adminUser, passwordHash, tokenSecret)
	// The file holds a credential hash and the signing secret.
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
