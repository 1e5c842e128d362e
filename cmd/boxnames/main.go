package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/boxnames/go/boxnames/internal/config"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/logging"
)

const version = "0.2.0"

var (
	gameVersion charset.Version
	language    charset.Language
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
	logger      hclog.Logger
)

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("boxnames %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "boxnames",
		Short: "Encode and decode Generation III box names",
		Long: `Encode and decode the 126-byte box-name block of Pokémon Ruby/Sapphire,
FireRed/LeafGreen and Emerald saves in any of the six game languages.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.VarP(&gameVersion, "game-version", "g", "Game version (RS, FRLG, E)")
	flags.VarP(&language, "language", "l", "Game language (JPN, ENG, FRA, ITA, GER, SPA)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(newDecodeCmd(), newEncodeCmd(), newViewCmd(), newTablesCmd(), newSessionCmd())
}

// setup resolves configuration; flags given on the command line win.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("game-version") {
		gameVersion = cfg.Version
	}
	if !cmd.Flags().Changed("language") {
		language = cfg.Language
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger = logging.NewLogger("boxnames", logLevel, nil)
	logger.Debug("🔧 Configuration resolved",
		"version", gameVersion,
		"language", language,
	)
	return nil
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
