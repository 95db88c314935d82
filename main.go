// Package main provides the entry point for the decktalk CLI application.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dgnsrekt/decktalk/internal/detect"
	"github.com/dgnsrekt/decktalk/internal/playback"
	"github.com/dgnsrekt/decktalk/internal/speech"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	rate       int
	volume     float64
	voiceID    string
	slideDelay float64
	pollEvery  float64
	noJoke     bool
	randomJoke bool
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "decktalk",
		Short: "Read presentations aloud, with commentary!",
		Long: paragraph(
			fmt.Sprintf("\nDetect a running slideshow and %s, slide by slide, with the speech engine built into your OS.", keyword("read it aloud")),
		),
		SilenceErrors: false,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return fmt.Errorf("a command is required")
		},
	}

	readCmd = &cobra.Command{
		Use:   "read <file>",
		Short: "Read a presentation aloud once",
		Long: paragraph(
			fmt.Sprintf("\n%s a presentation file aloud from start to finish, then exit.", keyword("Read")),
		),
		Example: paragraph("decktalk read slides.pptx\ndecktalk read ~/talks/demo.pptx --rate 200 --no-joke"),
		Args:    cobra.ExactArgs(1),
		RunE:    executeRead,
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Watch for slideshows and read them as they start",
		Long: paragraph(
			fmt.Sprintf("\n%s the process table until a slideshow starts, read the deck aloud, and keep watching until interrupted.", keyword("Poll")),
		),
		Example: paragraph("decktalk watch\ndecktalk watch --poll 5 --delay 2"),
		Args:    cobra.NoArgs,
		RunE:    executeWatch,
	}

	voicesCmd = &cobra.Command{
		Use:   "voices",
		Short: "List the available synthesis voices",
		Args:  cobra.NoArgs,
		RunE:  executeVoices,
	}
)

// validateOptions grabs the effective settings from Viper after flag
// parsing so flags, environment, and config file all apply.
func validateOptions(_ *cobra.Command) error {
	rate = viper.GetInt("rate")
	volume = viper.GetFloat64("volume")
	voiceID = viper.GetString("voice")
	slideDelay = viper.GetFloat64("delay")
	pollEvery = viper.GetFloat64("poll")
	noJoke = viper.GetBool("no-joke")
	randomJoke = viper.GetBool("random-joke")
	debug = viper.GetBool("debug")

	if debug {
		log.SetLevel(log.DebugLevel)
	}
	if volume < 0 || volume > 1 {
		return fmt.Errorf("volume must be between 0.0 and 1.0, got %.2f", volume)
	}
	if rate <= 0 {
		return fmt.Errorf("rate must be a positive number of words per minute, got %d", rate)
	}
	return nil
}

func voiceConfig() speech.VoiceConfig {
	return speech.VoiceConfig{
		Rate:    rate,
		Volume:  volume,
		VoiceID: voiceID,
	}
}

func playbackOptions() playback.Options {
	strategy := playback.StrategyRoundRobin
	if randomJoke {
		strategy = playback.StrategyRandom
	}
	return playback.Options{
		SlideDelay:     secondsToDuration(slideDelay),
		Remarks:        !noJoke,
		RemarkStrategy: strategy,
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// notifyStop arranges for stop to run once on SIGINT or SIGTERM. The
// returned cancel releases the handler.
func notifyStop(stop func()) (cancel func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-ch; ok {
			log.Info("Shutting down")
			stop()
		}
	}()
	return func() {
		signal.Stop(ch)
		close(ch)
	}
}

func executeRead(_ *cobra.Command, args []string) error {
	path, err := homedir.Expand(args[0])
	if err != nil {
		return fmt.Errorf("unable to expand path: %w", err)
	}

	synth, err := speech.New(voiceConfig())
	if err != nil {
		log.Error("Speech engine unavailable", "err", err)
		return nil
	}
	ctrl := playback.New(synth, playbackOptions())

	cancel := notifyStop(ctrl.Stop)
	defer cancel()

	if err := ctrl.Play(path); err != nil {
		log.Error("Unable to read presentation", "file", path, "err", err)
	}
	return nil
}

func executeWatch(_ *cobra.Command, _ []string) error {
	synth, err := speech.New(voiceConfig())
	if err != nil {
		log.Error("Speech engine unavailable", "err", err)
		return nil
	}
	ctrl := playback.New(synth, playbackOptions())

	inspector := detect.NewSystemInspector()
	probe := detect.NewPresenceProbe(inspector)
	detector := detect.New(inspector, probe, detect.Options{
		PollInterval: secondsToDuration(pollEvery),
	})

	cancel := notifyStop(func() {
		ctrl.Stop()
		detector.Stop()
	})
	defer cancel()

	// Playback runs inside the rising-edge callback, so polling pauses
	// while a deck is being read. A failed read must not kill the loop.
	detector.Watch(func(path string) {
		if err := ctrl.Play(path); err != nil {
			log.Error("Unable to read presentation", "file", path, "err", err)
		}
	}, ctrl.Finish)
	return nil
}

func executeVoices(_ *cobra.Command, _ []string) error {
	synth, err := speech.New(voiceConfig())
	if err != nil {
		log.Error("Speech engine unavailable", "err", err)
		return nil
	}
	voices, err := synth.Voices()
	if err != nil {
		log.Error("Unable to list voices", "err", err)
		return nil
	}
	if len(voices) == 0 {
		fmt.Println("No voices available.")
		return nil
	}
	for _, v := range voices {
		line := fmt.Sprintf("%s (%s)", v.Name, v.ID)
		if name := languageName(v.Language); name != "" {
			line += fmt.Sprintf(" [%s]", name)
		}
		fmt.Println(line)
	}
	return nil
}

// languageName renders a BCP 47 tag like "en-US" as a display name. It
// falls back to the raw code when the tag does not parse.
func languageName(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().IntVarP(&rate, "rate", "r", speech.DefaultRate, "speaking rate in words per minute")
	rootCmd.PersistentFlags().Float64Var(&volume, "volume", 1.0, "volume, from 0.0 to 1.0")
	rootCmd.PersistentFlags().StringVar(&voiceID, "voice", "", "voice identifier (see the voices command)")
	rootCmd.PersistentFlags().Float64VarP(&slideDelay, "delay", "d", 1.5, "pause between slides, in seconds")
	rootCmd.PersistentFlags().BoolVar(&noJoke, "no-joke", false, "skip the closing joke")
	rootCmd.PersistentFlags().BoolVar(&randomJoke, "random-joke", false, "pick closing jokes at random instead of in order")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")
	watchCmd.Flags().Float64VarP(&pollEvery, "poll", "p", float64(detect.DefaultPollInterval)/float64(time.Second), "poll interval, in seconds")

	// Config bindings
	_ = viper.BindPFlag("rate", rootCmd.PersistentFlags().Lookup("rate"))
	_ = viper.BindPFlag("volume", rootCmd.PersistentFlags().Lookup("volume"))
	_ = viper.BindPFlag("voice", rootCmd.PersistentFlags().Lookup("voice"))
	_ = viper.BindPFlag("delay", rootCmd.PersistentFlags().Lookup("delay"))
	_ = viper.BindPFlag("no-joke", rootCmd.PersistentFlags().Lookup("no-joke"))
	_ = viper.BindPFlag("random-joke", rootCmd.PersistentFlags().Lookup("random-joke"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("poll", watchCmd.Flags().Lookup("poll"))

	viper.SetDefault("rate", speech.DefaultRate)
	viper.SetDefault("volume", 1.0)
	viper.SetDefault("voice", "")
	viper.SetDefault("delay", 1.5)
	viper.SetDefault("poll", float64(detect.DefaultPollInterval)/float64(time.Second))
	viper.SetDefault("no-joke", false)
	viper.SetDefault("random-joke", false)

	rootCmd.AddCommand(readCmd, watchCmd, voicesCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "decktalk")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "decktalk")}, dirs...)
	}

	if c := os.Getenv("DECKTALK_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("decktalk")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("decktalk")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "decktalk.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
