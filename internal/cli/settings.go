package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/config"
)

// SettingsCmd returns the settings management command.
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage report settings",
		Long:  "Show and change the report recipient and EmailJS account settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsEmailCmd())
	cmd.AddCommand(settingsEmailJSCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadSettings()
			if err != nil {
				return err
			}

			fmt.Printf("Config: %s/config.json\n", dir)
			fmt.Printf("Send reports to: %s\n", orDash(cfg.SendToEmail))
			fmt.Printf("EmailJS service: %s\n", orDash(cfg.EmailJSServiceID))
			fmt.Printf("EmailJS template: %s\n", orDash(cfg.EmailJSTemplate))
			fmt.Printf("EmailJS public key: %s\n", orDash(cfg.EmailJSPublicKey))
			return nil
		},
	}
}

func settingsEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Set the report recipient address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadSettings()
			if err != nil {
				return err
			}

			cfg.SetSendToEmail(args[0])
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Reports will be sent to %s\n", cfg.SendToEmail)
			return nil
		},
	}
}

func settingsEmailJSCmd() *cobra.Command {
	var service, template, key string

	cmd := &cobra.Command{
		Use:   "emailjs",
		Short: "Set the EmailJS account credentials",
		Long: `Override the EmailJS service, template, or public key. Unset values
keep the built-in defaults.

Examples:
  patrol settings emailjs --service service_abc123 --template template_xyz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadSettings()
			if err != nil {
				return err
			}

			if service != "" {
				cfg.EmailJSServiceID = service
			}
			if template != "" {
				cfg.EmailJSTemplate = template
			}
			if key != "" {
				cfg.EmailJSPublicKey = key
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Println("✓ EmailJS settings saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "EmailJS service id")
	cmd.Flags().StringVar(&template, "template", "", "EmailJS template id")
	cmd.Flags().StringVar(&key, "key", "", "EmailJS public key")
	return cmd
}

func loadSettings() (*config.Config, string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}
