package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect terrafinance configuration",
	Long: `Inspect terrafinance configuration.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (PORT, SITE_MESSAGE, MYSQL_DSN, SITE_TIMEZONE, MESSAGE_CACHE_TTL)
3. Config file (./terrafinance.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if used := cfgViper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
		}

		shown := struct {
			Port            string `yaml:"port"`
			Message         string `yaml:"message"`
			DSN             string `yaml:"dsn"`
			TimeZone        string `yaml:"timezone"`
			MessageCacheTTL string `yaml:"message_cache_ttl"`
		}{
			Port:            appConfig.Port,
			Message:         appConfig.Message,
			TimeZone:        appConfig.TimeZone,
			MessageCacheTTL: appConfig.MessageCacheTTL.String(),
		}
		if appConfig.DSN != "" {
			shown.DSN = "(set)"
		}

		data, err := yaml.Marshal(shown)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
