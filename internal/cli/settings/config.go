package settings

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/keyring"
	"github.com/julianstephens/habitflow/internal/validation"
)

type ConfigCmd struct {
	Show     ShowCmd     `cmd:"" help:"Show current configuration." default:"1"`
	Set      SetCmd      `cmd:"" help:"Set a configuration value."`
	SetKey   SetKeyCmd   `cmd:"" help:"Store the OpenAI API key in the OS keyring."`
	ClearKey ClearKeyCmd `cmd:"" help:"Remove the OpenAI API key from the OS keyring."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println("Current configuration:")
	fmt.Printf("  reminder-time:    %s\n", settings.ReminderTime)
	fmt.Printf("  reminder-enabled: %t\n", settings.ReminderEnabled)
	fmt.Printf("  openai-model:     %s\n", settings.OpenAIModel)
	if settings.DefaultUser != "" {
		fmt.Printf("  default-user:     %s\n", settings.DefaultUser)
	} else {
		fmt.Printf("  default-user:     (not set)\n")
	}

	if os.Getenv(constants.EnvAPIKey) != "" {
		fmt.Printf("  openai-api-key:   set via %s\n", constants.EnvAPIKey)
	} else if _, err := keyring.GetAPIKey(); err == nil {
		fmt.Printf("  openai-api-key:   stored in OS keyring\n")
	} else {
		fmt.Printf("  openai-api-key:   (not set)\n")
	}

	return nil
}

type SetCmd struct {
	Key   string `arg:"" enum:"reminder-time,reminder-enabled,default-user,openai-model" help:"Setting to change (reminder-time, reminder-enabled, default-user, openai-model)."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "reminder-time":
		if err := validation.ClockTime(c.Value); err != nil {
			return err
		}
		settings.ReminderTime = c.Value
	case "reminder-enabled":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid value %q (expected true or false)", c.Value)
		}
		settings.ReminderEnabled = enabled
	case "default-user":
		if err := validation.UserName(c.Value); err != nil {
			return err
		}
		settings.DefaultUser = c.Value
	case "openai-model":
		settings.OpenAIModel = c.Value
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s to %s\n", c.Key, c.Value)
	return nil
}

type SetKeyCmd struct {
	Key string `arg:"" help:"OpenAI API key."`
}

func (c *SetKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in OS keyring")
	return nil
}

type ClearKeyCmd struct{}

func (c *ClearKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			return stderrors.New("no API key stored in keyring")
		}
		return err
	}
	fmt.Println("✓ API key removed from OS keyring")
	return nil
}
