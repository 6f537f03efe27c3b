package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-fscheck/internal/common/cryptoutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
	"github.com/deploymenttheory/go-fscheck/internal/common/fsutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/osutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/plistutil"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-fscheck"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "FSCHECK"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Report settings
	Report struct {
		Format      string `mapstructure:"format"`       // text, json or plist
		PlistFormat string `mapstructure:"plist_format"` // xml, binary, openstep or gnustep
		Output      string `mapstructure:"output"`       // empty writes to stdout
		Digest      string `mapstructure:"digest"`       // none, sha256 or blake2b
		Summary     bool   `mapstructure:"summary"`      // tally on stderr
	} `mapstructure:"report"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string
)

// Initialize loads configuration from cfgFile, or from the standard search
// paths when cfgFile is empty, then applies FSCHECK_* environment overrides.
// A missing config file in the search paths is not an error.
func Initialize(cfgFile string) error {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	ConfigLoaded = false
	ConfigFile = ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("%w: %s", errors.ErrConfigParseError, err.Error())
		}
	} else {
		ConfigLoaded = true
		ConfigFile = v.ConfigFileUsed()
	}

	var loaded AppConfig
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrConfigParseError, err.Error())
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	Instance = loaded
	return nil
}

// Validate checks that enumerated settings hold known values
func (c AppConfig) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "human", "json":
	default:
		return fmt.Errorf("%w: log_format %q", errors.ErrConfigInvalid, c.LogFormat)
	}

	switch strings.ToLower(c.Report.Format) {
	case "text", "json", "plist":
	default:
		return fmt.Errorf("%w: report.format %q", errors.ErrConfigInvalid, c.Report.Format)
	}

	if _, err := plistutil.ParseFormat(c.Report.PlistFormat); err != nil {
		return fmt.Errorf("%w: report.plist_format %q", errors.ErrConfigInvalid, c.Report.PlistFormat)
	}

	if _, err := cryptoutil.ParseAlgorithm(c.Report.Digest); err != nil {
		return fmt.Errorf("%w: report.digest %q", errors.ErrConfigInvalid, c.Report.Digest)
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")

	// Report defaults
	v.SetDefault("report.format", "text")
	v.SetDefault("report.plist_format", "xml")
	v.SetDefault("report.output", "")
	v.SetDefault("report.digest", string(cryptoutil.SHA256))
	v.SetDefault("report.summary", false)
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	// In dev mode, only use current directory and the local config directory
	if osutil.IsDevEnvironment() {
		if configDir, err := fsutil.GetConfigDir(AppName); err == nil {
			v.AddConfigPath(configDir)
		}
		return
	}

	// In CI/Pipeline, only use current directory and the system directory
	if osutil.IsRunningInPipeline() {
		v.AddConfigPath("/etc/" + AppName)
		return
	}

	if configDir, err := fsutil.GetConfigDir(AppName); err == nil {
		v.AddConfigPath(configDir)
	}

	if systemConfigDir, err := fsutil.GetSystemConfigDir(AppName); err == nil {
		v.AddConfigPath(systemConfigDir)
	}
}
