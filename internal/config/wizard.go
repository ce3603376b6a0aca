package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to productpage! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (.yml, .toml or .json)",
		Default: "site.yml",
	}
	if cfg.ContentFile, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static builds",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Asset patterns.
	assetsPrompt := promptui.Prompt{
		Label:   "Asset include patterns (space-separated globs)",
		Default: strings.Join(cfg.AssetsInclude, " "),
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if patterns := strings.Fields(assetsStr); len(patterns) > 0 {
		cfg.AssetsInclude = patterns
	}

	// 5. Lead webhook.
	webhookPrompt := promptui.Prompt{
		Label:   "Webhook URL for new leads (leave blank to disable)",
		Default: "",
	}
	if cfg.WebhookURL, err = webhookPrompt.Run(); err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}

	// 6. Hot reload.
	watchPrompt := promptui.Select{
		Label: "Reload content when the file changes?",
		Items: []string{"yes", "no"},
	}
	watchIdx, _, err := watchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("watch selection: %w", err)
	}
	cfg.Watch = watchIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv(EnvPrefix+"PORT") != "" {
		fmt.Printf("\nNote: %sPORT is set and will override the port above.\n", EnvPrefix)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
