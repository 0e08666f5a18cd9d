/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/wslcam/internal/colors"
	"github.com/blacktop/wslcam/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// Verbose boolean flag for verbose logging
	Verbose bool
	// Color boolean flag for colorized output
	Color bool
	// AppVersion stores the plugin's version
	AppVersion string
	// AppBuildTime stores the plugin's build time
	AppBuildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wslcam",
	Short: "Copy the photos off a USB camera through WSL",
	Long: heredoc.Doc(`
		Attach a USB camera to WSL with usbipd, download every photo
		with gphoto2 and convert them to another image format.

		Running wslcam without a sub-command is the same as 'wslcam run'.`),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if Verbose {
			log.SetLevel(log.DebugLevel)
		}
		if cmd.Flags().Changed("color") {
			colors.Init(&Color)
		}
	},
	RunE: runPipeline,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetHandler(clihander.Default)

	cobra.OnInitialize(initConfig)

	config.SetDefaults(viper.GetViper())

	// Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wslcam/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&Color, "color", false, "colorize output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindEnv("color", "CLICOLOR")

	// Camera and conversion flags are shared by every command
	pf := rootCmd.PersistentFlags()
	pf.Bool("allow-install", true, "Install gphoto2 in WSL when it is missing")
	pf.StringP("format", "f", "png", "Output image format (jpg, png, gif, tif, bmp)")
	pf.Bool("delete", false, "Delete the photos from the camera once converted")
	pf.StringP("dest", "o", "", "Destination folder (prompts when empty)")
	pf.StringP("distro", "d", "", "WSL distribution (default distro when empty)")
	pf.Bool("notify", false, "Show a desktop notification when done")
	pf.Bool("keep-time", false, "Set the converted file time to the EXIF capture time")
	pf.Bool("auto-orient", false, "Rotate photos according to their EXIF orientation")
	pf.Int("quality", 95, "JPEG quality (1-100)")
	pf.StringSlice("name", config.DefaultKnownNames, "Camera device name to look for (repeatable)")
	rootCmd.MarkPersistentFlagDirname("dest")
	rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"jpg", "png", "gif", "tif", "bmp"}, cobra.ShellCompDirectiveNoFileComp
	})
	viper.BindPFlag(config.KeyAllowInstallations, pf.Lookup("allow-install"))
	viper.BindPFlag(config.KeyOutputFormat, pf.Lookup("format"))
	viper.BindPFlag(config.KeyDeleteAfterTransfer, pf.Lookup("delete"))
	viper.BindPFlag(config.KeyDestination, pf.Lookup("dest"))
	viper.BindPFlag(config.KeyDistro, pf.Lookup("distro"))
	viper.BindPFlag(config.KeyNotify, pf.Lookup("notify"))
	viper.BindPFlag(config.KeyPreserveTimes, pf.Lookup("keep-time"))
	viper.BindPFlag(config.KeyAutoOrient, pf.Lookup("auto-orient"))
	viper.BindPFlag(config.KeyJPEGQuality, pf.Lookup("quality"))
	viper.BindPFlag(config.KeyKnownNames, pf.Lookup("name"))

	// Settings
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name "config" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".config", "wslcam"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("wslcam")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
