// Package cmd is for command line interactions with the sgrna application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "sgrna",
	Short: `Build a gene-annotated sgRNA target library for a genome.
Targets are extracted next to a PAM, scored for specificity with bowtie
and annotated with the gene regions they overlap`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags shared by every subcommand. each viper key is bound to
// exactly one flag, here, so the invoked command's value reaches
// config.New no matter which subcommand registered last
func init() {
	RootCmd.PersistentFlags().StringP("pam", "p", ".GG", "PAM pattern next to each target window")
	RootCmd.PersistentFlags().IntP("length", "l", 20, "number of bases per target window")

	// settings is an optional parameter for a settings file that
	// overrides the defaults in config.New
	RootCmd.PersistentFlags().StringP("settings", "s", "", "optional settings file <YAML>")

	viper.BindPFlag("pam", RootCmd.PersistentFlags().Lookup("pam"))
	viper.BindPFlag("target-length", RootCmd.PersistentFlags().Lookup("length"))
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}
