// Package config is used to load the configuration file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// DefaultCatalogue is the manifest mapping logical database names to
// their hashed filenames inside a backup.
const DefaultCatalogue = "data/databases.json"

// Config is the configuration struct
type Config struct {
	// BackupDirectory is where the iOS backups live; empty means the
	// platform default MobileSync location.
	BackupDirectory string `mapstructure:"backup-directory" json:"backup-directory"`
	// UUID identifies one backup directory and skips the interactive
	// selection.
	UUID string `mapstructure:"uuid" json:"uuid"`
	// OutputDirectory is the base path the timestamped run directories
	// are created under.
	OutputDirectory string `mapstructure:"output-directory" json:"output-directory"`
	// Databases overrides the catalogue manifest path.
	Databases string `mapstructure:"databases" json:"databases"`
}

func platformBackupLocation(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get user home directory: %v", err)
	}
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "MobileSync", "Backup"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Apple Computer", "MobileSync", "Backup"), nil
	}
	return "", fmt.Errorf("config: %s is not a supported platform (set backup-directory explicitly)", goos)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

func (c *Config) verify(goos string) error {
	if c.BackupDirectory == "" {
		loc, err := platformBackupLocation(goos)
		if err != nil {
			return err
		}
		c.BackupDirectory = loc
	} else {
		c.BackupDirectory = expandHome(c.BackupDirectory)
	}
	if c.OutputDirectory == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: failed to get user home directory: %v", err)
		}
		c.OutputDirectory = filepath.Join(home, "ios-backups")
	} else {
		c.OutputDirectory = expandHome(c.OutputDirectory)
	}
	if c.Databases == "" {
		c.Databases = DefaultCatalogue
	}
	// backup directories are UUID-named on disk; a value that isn't one
	// is most likely a typo, but the path is still honored as-is
	if c.UUID != "" {
		if _, err := uuid.Parse(c.UUID); err != nil {
			log.Warnf("configured uuid %q does not look like a backup identifier", c.UUID)
		}
	}
	return nil
}

// LoadConfig loads the configuration file. The caller passes the value
// of runtime.GOOS so platform handling stays explicit and testable.
func LoadConfig(goos string) (*Config, error) {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}

	if err := c.verify(goos); err != nil {
		return nil, err
	}

	return c, nil
}
