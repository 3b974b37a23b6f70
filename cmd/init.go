package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands. This
// wiring keeps the configuration surface identical across subcommands and
// makes environment overrides predictable for operators and bots.
func init() {
	// Persistent flags (inherited by every subcommand)
	rootCmd.PersistentFlags().StringVar(&cfgAddr, "addr", "localhost", "scheduler address (FQDN or IP)")
	rootCmd.PersistentFlags().IntVar(&cfgPort, "port", 8002, "scheduler control port")
	rootCmd.PersistentFlags().StringVar(&cfgCACert, "cacert", "", "Path to PEM CA certificate used to verify the scheduler")
	rootCmd.PersistentFlags().StringVar(&cfgToken, "token", "", "Bearer token to authenticate with the scheduler (or set RCUBIC_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&cfgTimeout, "timeout", 0, "Request timeout (e.g., 30s). 0 disables")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Log request/response detail to stderr")

	// Per-command parameters
	featureCmd.Flags().StringVar(&cfgFeature, "feature", "", "Feature name to probe")
	overrideCmd.Flags().StringVar(&cfgScript, "script", "", "Script to mark successful")
	progressCmd.Flags().StringVar(&cfgScript, "script", "", "Script reporting progress")
	progressCmd.Flags().StringVar(&cfgVersion, "version", "", "Script version (omitted: the scheduler's default version)")
	progressCmd.Flags().IntVar(&cfgProgress, "progress", 0, "Completion value, 0-100")
	rescheduleCmd.Flags().StringVar(&cfgScript, "script", "", "Script to re-queue")

	// Bind env with Viper
	_ = viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("cacert", rootCmd.PersistentFlags().Lookup("cacert"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	viper.SetEnvPrefix("RCUBIC")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("addr"); v != "" {
			cfgAddr = v
		}
		if v := viper.GetString("cacert"); v != "" {
			cfgCACert = v
		}
		if v := viper.GetString("token"); v != "" {
			cfgToken = v
		}
		if v := viper.GetString("port"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				cfgPort = p
			}
		}
		if v := viper.GetString("timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgTimeout = d
			}
		}
		if viper.GetBool("debug") {
			cfgDebug = true
		}
	})

	rootCmd.AddCommand(featureCmd)
	rootCmd.AddCommand(overrideCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(rescheduleCmd)
	rootCmd.AddCommand(recloneCmd)
	rootCmd.AddCommand(cancelCmd)
}
