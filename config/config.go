// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// BowtieConfig is settings for the bowtie alignment rounds.
type BowtieConfig struct {
	// the number of allowable mismatches in the alignment seed (-n)
	SeedMismatches int `mapstructure:"seed-mismatches"`

	// the length of the alignment seed (-l)
	SeedLength int `mapstructure:"seed-length"`

	// memory setting for bowtie's --best flag (--chunkmbs)
	ChunkMBs int `mapstructure:"chunk-mbs"`

	// how many processors to use (-p). 0 means all but one
	Threads int `mapstructure:"threads"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line.
type Config struct {
	// the PAM pattern next to each guide window, as a DNA regexp
	PAM string `mapstructure:"pam"`

	// the number of bases pulled from the region adjacent to the PAM
	TargetLength int `mapstructure:"target-length"`

	// the dissimilarity tolerances tried per scoring round, most
	// permissive first
	Tolerances []int `mapstructure:"tolerances"`

	// bowtie settings
	Bowtie BowtieConfig `mapstructure:"bowtie"`
}

// New returns a new Config struct populated by Viper settings (either
// from an optional settings file and/or command line arguments).
func New() *Config {
	viper.SetDefault("pam", ".GG")
	viper.SetDefault("target-length", 20)
	viper.SetDefault("tolerances", []int{39, 30, 20, 11, 1})
	viper.SetDefault("bowtie.seed-mismatches", 3)
	viper.SetDefault("bowtie.seed-length", 15)
	viper.SetDefault("bowtie.chunk-mbs", 256)
	viper.SetDefault("bowtie.threads", 0)

	// a settings file overriding the defaults is optional
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return &c
}
