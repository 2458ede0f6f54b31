package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	consts "github.com/altcast/lightaudit/internal/constants"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "lightaudit",
	Short: "Lightweight website security scanner with shareable scored reports",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".lightaudit")
			viper.SetConfigType("yaml")
		}

		viper.SetDefault("store.backend", "json")
		viper.SetDefault("store.path", "./audit-db.json")
		viper.SetDefault("scan.timeout_secs", int(consts.DefaultScanTimeout.Seconds()))
		viper.SetDefault("scan.probe_timeout_secs", int(consts.DefaultProbeTimeout.Seconds()))
		viper.SetDefault("scan.user_agent", consts.DefaultUserAgent)
		viper.SetDefault("serve.addr", ":8080")
		viper.SetDefault("serve.rate_limit", 0)
		viper.SetDefault("serve.rate_burst", 5)
		viper.SetDefault("serve.recent_limit", 25)

		_ = viper.ReadInConfig()

		// init logger
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lightaudit.yaml)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
