package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"terrafinance/internal/app"
)

var (
	cfgFile   string
	verbose   bool
	appConfig app.Config
	cfgViper  *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "terrafinance",
	Short: "Terra Finance Edu landing page server",
	Long: `terrafinance serves the Terra Finance Edu landing page: hero content,
topic, lab and tool cards, an FAQ accordion and the SEO metadata search
engines read from it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "terrafinance v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./terrafinance.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	app.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("terrafinance")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if flag := cmd.Flags().Lookup("port"); flag != nil {
		if err := v.BindPFlag("port", flag); err != nil {
			return fmt.Errorf("bind port flag: %w", err)
		}
	}

	cfg, err := app.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig = cfg
	cfgViper = v
	return nil
}
