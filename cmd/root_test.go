package cmd

import (
	"testing"

	"github.com/ryandward/sgrna-design/config"
	"github.com/spf13/cobra"
)

func TestSharedFlagsReachConfig(t *testing.T) {
	if RootCmd.PersistentFlags().Lookup("pam") == nil {
		t.Fatal("no persistent pam flag on the root command")
	}

	// a PAM set on the shared flag must come back out of config.New,
	// no matter which subcommand was invoked with it
	if err := RootCmd.PersistentFlags().Set("pam", "NAG"); err != nil {
		t.Fatal(err)
	}
	defer RootCmd.PersistentFlags().Set("pam", ".GG")

	if c := config.New(); c.PAM != "NAG" {
		t.Errorf("config.New() PAM = %v, want NAG", c.PAM)
	}
}

func TestSubcommandsInheritSharedFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{buildCmd, targetsCmd} {
		for _, name := range []string{"pam", "length", "settings"} {
			if cmd.InheritedFlags().Lookup(name) == nil {
				t.Errorf("%s command does not inherit the %s flag", cmd.Name(), name)
			}
		}
	}
}
