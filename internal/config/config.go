package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Built-in defaults, matching the historical generator.
const (
	DefaultDesFolder = "crawl-ref/crawl-ref/source/dat/des"
	DefaultOutput    = "vault_monster_data.cc"
	DefaultExtension = ".des"
)

// Config holds the application configuration
type Config struct {
	DesFolder   string   `mapstructure:"des_folder"`
	Output      string   `mapstructure:"output"`
	Extension   string   `mapstructure:"extension"`
	IgnoreFiles []string `mapstructure:"ignore_files"`
	IgnoreDirs  []string `mapstructure:"ignore_dirs"`
	Verbose     bool     `mapstructure:"verbose"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("des_folder", DefaultDesFolder)
	viper.SetDefault("output", DefaultOutput)
	viper.SetDefault("extension", DefaultExtension)
	viper.SetDefault("ignore_files", []string{"test.des"})
	viper.SetDefault("ignore_dirs", []string{"builder", "zotdef", "tutorial"})
	viper.SetDefault("verbose", false)

	viper.SetConfigName("vaultmons")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "vaultmons"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("VAULTMONS")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetDesFolder returns the directory scanned for .des files
func GetDesFolder() string {
	return expandTilde(viper.GetString("des_folder"))
}

// GetOutput returns the generated file destination
func GetOutput() string {
	return expandTilde(viper.GetString("output"))
}

// GetExtension returns the recognized definition-file extension
func GetExtension() string {
	return viper.GetString("extension")
}

// GetIgnoreFiles returns base filenames excluded from scanning
func GetIgnoreFiles() []string {
	return viper.GetStringSlice("ignore_files")
}

// GetIgnoreDirs returns subfolder names whose subtrees are excluded
func GetIgnoreDirs() []string {
	return viper.GetStringSlice("ignore_dirs")
}

// GetVerbose returns whether per-file diagnostics are printed
func GetVerbose() bool {
	return viper.GetBool("verbose")
}

// SetVerbose sets verbose mode at runtime
func SetVerbose(v bool) {
	viper.Set("verbose", v)
	C.Verbose = v
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
