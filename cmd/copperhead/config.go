package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/copperhead/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search order and flag overrides
are applied. The output is valid YAML and can be saved as a config file:

  copperhead config > ~/.copperhead/config.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", cfg.Source())
	_, err = os.Stdout.Write(data)
	return err
}
