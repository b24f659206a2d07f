package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/urbansounds/us8kjams/internal/cli"
	"github.com/urbansounds/us8kjams/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file values apply only when the flag was not given
	if !cmd.Flags().Changed("output") {
		if dir := viper.GetString("output.directory"); dir != "" {
			flags.OutputDir = dir
		}
	}
	if !cmd.Flags().Changed("index") && viper.GetBool("index.enabled") {
		flags.BuildIndex = true
	}

	flags.MetadataFile = args[0]

	proc := processor.NewProcessor(flags)
	return proc.Run()
}
