package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/urbansounds/us8kjams/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "us8kjams <metadata.csv>",
		Short: "UrbanSound8K metadata to JAMS converter",
		Long: `us8kjams converts the UrbanSound8K metadata file (UrbanSound8K.csv)
into a set of JAMS annotation files - one per each of the 8732 sound
clips in the dataset.

The original data is found online at:
  https://serv.cusp.nyu.edu/projects/urbansounddataset/

Examples:
  us8kjams ~/UrbanSound8K/metadata/UrbanSound8K.csv -o ~/UrbanSound8K_jams/
  us8kjams UrbanSound8K.csv --index   # also write a clips.db SQLite index`,
		Args:    cobra.ExactArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.us8kjams.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output JAMS folder")
	cmd.Flags().BoolVar(&flags.BuildIndex, "index", false, "Write a clips.db SQLite index next to the JAMS files")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("index.enabled", cmd.Flags().Lookup("index"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".us8kjams" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".us8kjams")
	}

	// Environment variables
	viper.SetEnvPrefix("US8KJAMS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
