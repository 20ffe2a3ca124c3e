package main

import (
	"errors"
	"fmt"
	"os"

	"benchctl/internal/config"
	"benchctl/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// exitCodeError carries a subprocess exit code up to Execute so the process
// terminates with the originating code, never a remapped one.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchctl",
	Short: "Benchmark orchestration for the containers library",
	Long: `benchctl composes and runs the benchmark harness for the containers
library. Pick a target category and an export format; benchctl builds the
project, runs the composed harness command, and reports the outcome plus any
exported artifacts.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			// The failure itself was already reported; forward the code.
			exit(ec.code)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'benchctl --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchctl.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	bindGlobalFlags(rootCmd.PersistentFlags())
}

func bindGlobalFlags(flags *pflag.FlagSet) {
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"))
}
