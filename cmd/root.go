package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wdavew/surf.el/cmd/conditions"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "surf",
	Short: "Capture surf session notes with live tide, wind and wave data",
	Long: `Fetches tide predictions, wind observations and buoy wave data for
the configured stations and folds them into a surf session note. Run with
no arguments for the interactive journal, or 'surf new' to write one note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialModel())

		_, err := p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.surf.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".surf" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".surf")
	}

	viper.SetDefault("journal.dir", filepath.Join(home, ".surf", "journal"))
	viper.SetDefault("notes.dir", filepath.Join(home, ".surf", "notes"))

	// San Diego defaults: Scripps Pier tide/met stations, Point Loma buoy.
	viper.SetDefault("stations.tide", "9410230")
	viper.SetDefault("stations.met", "9410230")
	viper.SetDefault("stations.buoy", "46232")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stationConfig assembles the station identifiers from configuration.
func stationConfig() conditions.Config {
	return conditions.Config{
		TideStation: viper.GetString("stations.tide"),
		MetStation:  viper.GetString("stations.met"),
		BuoyStation: viper.GetString("stations.buoy"),
	}
}
