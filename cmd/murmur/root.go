package main

import (
	"fmt"
	"os"

	"github.com/quietfmt/murmur/internal/version"
	"github.com/quietfmt/murmur/pkg/colors"
	"github.com/quietfmt/murmur/pkg/config"
	"github.com/quietfmt/murmur/pkg/icons"
	"github.com/quietfmt/murmur/pkg/logging"
	"github.com/quietfmt/murmur/pkg/murmur"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity  int
	iconName   string
	colorName  string
	outputMode string
	themePath  string

	rootCmd = &cobra.Command{
		Use:   "murmur [messages...]",
		Short: MsgRootShort,
		Long: `murmur prints short runs of text to the terminal, each optionally
preceded by a semantic icon and colored. The first message carries the
icon; every following message is indented two spaces beneath it.`,
		Example: `  murmur --icon check "dependencies installed"
  murmur --icon warning "disk almost full" "12% remaining"
  murmur --color cyan "plain colored line"`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			mode, err := colors.ParseMode(outputMode)
			if err != nil {
				return fmt.Errorf(MsgErrBadOutput, err)
			}
			colors.SetEnabled(mode.Resolve(os.Stdout) == colors.ModeTerm)

			// The theme must be in place before the first icon lookup.
			theme, err := config.LoadTheme(themePath)
			if err != nil {
				return fmt.Errorf(MsgErrLoadTheme, err)
			}
			if err := theme.Apply(); err != nil {
				return fmt.Errorf(MsgErrApplyTheme, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := murmur.New().ToWriter(cmd.OutOrStdout())

			if iconName != "" {
				kind, err := icons.Parse(iconName)
				if err != nil {
					return fmt.Errorf(MsgErrBadIcon, err)
				}
				w.Icon(kind)
			}

			if colorName != "" && !colors.Known(colorName) {
				return fmt.Errorf(MsgErrBadColor, colorName)
			}

			for _, arg := range args {
				if colorName != "" {
					w.ColoredMessage(arg, colorName)
				} else {
					w.Message(arg)
				}
			}

			if err := w.Whisper(); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&outputMode, "output", "auto", MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", config.DefaultPath(), MsgFlagTheme)

	rootCmd.Flags().StringVarP(&iconName, "icon", "i", "", MsgFlagIcon)
	rootCmd.Flags().StringVarP(&colorName, "color", "c", "", MsgFlagColor)

	initTemplateFormatting()

	// Set custom usage template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newIconsCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "murmur version %s\n", version.Version)
		fmt.Fprintf(out, "  commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  built:  %s\n", version.Date)
	},
}
