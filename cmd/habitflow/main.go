package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/cli/settings"
	"github.com/julianstephens/habitflow/internal/cli/system"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/keyring"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Database path or PostgreSQL connection string." default:"~/.config/habitflow/habitflow.db"`
	User    string `help:"Acting user name (default: $HABITFLOW_USER or the default-user setting)." short:"u"`
	Debug   bool   `help:"Enable debug logging."`

	Chat    cli.ChatCmd        `cmd:"" help:"Start an interactive session." default:"1"`
	Init    system.InitCmd     `cmd:"" help:"Initialize habitflow storage."`
	Habit   cli.HabitCmd       `cmd:"" help:"Manage habits."`
	Checkin cli.CheckinCmd     `cmd:"" help:"Record a daily check-in."`
	Streak  cli.StreakCmd      `cmd:"" help:"Show current streaks."`
	History cli.HistoryCmd     `cmd:"" help:"Show check-in history."`
	Quote   cli.QuoteCmd       `cmd:"" help:"Get a motivational message."`
	Remind  system.RemindCmd   `cmd:"" help:"Run the reminder poller."`
	Tui     system.TuiCmd      `cmd:"" help:"Launch the interactive dashboard."`
	Doctor  system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Config  settings.ConfigCmd `cmd:"" help:"Manage settings and credentials."`
}

func main() {
	// Optional .env for OPENAI_API_KEY / HABITFLOW_USER
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit-tracking companion with streaks and daily motivation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.DB)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.New(configPath)
	appCtx := &cli.Context{
		Store:     store,
		Motivator: buildMotivator(store),
		User:      CLI.User,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildMotivator wires the OpenAI provider when an API key is available;
// without one, canned quotes are used.
func buildMotivator(store storage.Provider) *motivation.Motivator {
	apiKey := os.Getenv(constants.EnvAPIKey)
	if apiKey == "" {
		if key, err := keyring.GetAPIKey(); err == nil {
			apiKey = key
		}
	}
	if apiKey == "" {
		return motivation.NewMotivator(nil)
	}

	model := constants.DefaultOpenAIModel
	if err := store.Load(); err == nil {
		if settings, err := store.GetSettings(); err == nil && settings.OpenAIModel != "" {
			model = settings.OpenAIModel
		}
	}

	return motivation.NewMotivator(motivation.NewOpenAIProvider(apiKey, model))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// configDir picks where logs and the reminder lockfile live.
func configDir(configPath string) string {
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	return filepath.Dir(configPath)
}
