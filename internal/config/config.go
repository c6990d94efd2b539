package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/apfsource/ktroid/internal/paths"
)

// FileName is the overlay file consumed from the ktroid config directory.
const FileName = "config.json"

// Config holds the build parameters applied to scaffolded projects. Values
// come from compiled-in defaults overlaid by an optional config.json file.
type Config struct {
	JavaVersion       string `mapstructure:"java_version" json:"java_version"`
	AgpVersion        string `mapstructure:"agp_version" json:"agp_version"`
	GradleVersion     string `mapstructure:"gradle_version" json:"gradle_version"`
	KotlinVersion     string `mapstructure:"kotlin_version" json:"kotlin_version"`
	CompileSdk        string `mapstructure:"compile_sdk" json:"compile_sdk"`
	MinSdk            string `mapstructure:"min_sdk" json:"min_sdk"`
	TargetSdk         string `mapstructure:"target_sdk" json:"target_sdk"`
	BuildToolsVersion string `mapstructure:"build_tools_version" json:"build_tools_version"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		JavaVersion:       "17",
		AgpVersion:        "8.13.2",
		GradleVersion:     "9.3.1",
		KotlinVersion:     "2.2.21",
		CompileSdk:        "35",
		MinSdk:            "21",
		TargetSdk:         "35",
		BuildToolsVersion: "35.0.0",
	}
}

// Path returns the location of the overlay file inside the global ktroid
// directory.
func Path() (string, error) {
	dir, err := paths.GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the overlay file at path on top of the defaults. A missing file
// yields the defaults with no error. A malformed file also yields the
// defaults, with a non-nil error the caller should report as a warning.
func Load(path string) (Config, error) {
	cfg := Default()

	exists, err := paths.FileExists(path)
	if err != nil {
		return cfg, fmt.Errorf("stat config overlay: %w", err)
	}
	if !exists {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("read config overlay %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("parse config overlay %s: %w", path, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("java_version", cfg.JavaVersion)
	v.SetDefault("agp_version", cfg.AgpVersion)
	v.SetDefault("gradle_version", cfg.GradleVersion)
	v.SetDefault("kotlin_version", cfg.KotlinVersion)
	v.SetDefault("compile_sdk", cfg.CompileSdk)
	v.SetDefault("min_sdk", cfg.MinSdk)
	v.SetDefault("target_sdk", cfg.TargetSdk)
	v.SetDefault("build_tools_version", cfg.BuildToolsVersion)
}

// WriteDefault writes the default configuration as indented JSON to path,
// overwriting any existing file.
func WriteDefault(path string) error {
	data, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
