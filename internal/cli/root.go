package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avstrong/hotelres/internal/config"
	"github.com/avstrong/hotelres/internal/logger"
)

// NewRootCmd assembles the hotelres command tree. Flags are bound into v so
// they take precedence over HOTELRES_* variables.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hotelres",
		Short:         "Quote hotel stays and pick the cheapest hotel",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("env", "", "environment name (dev, local, prod)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		ServeCmd(v),
		CheapestCmd(v),
		QuotesCmd(v),
		ListCmd(v),
	)

	return rootCmd
}

func setup(v *viper.Viper) (config.Config, *logger.Logger, error) {
	conf, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	l, err := logger.NewForEnv(os.Stderr, conf.Env, conf.LogLevel)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}

	return conf, l, nil
}
