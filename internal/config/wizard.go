package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to techguide! Let's configure your viewer.")
	fmt.Println()

	def := DefaultConfig()

	// 1. Header text.
	titlePrompt := promptui.Prompt{
		Label:    "Guide title",
		Default:  def.Title,
		Validate: required("title"),
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	subtitlePrompt := promptui.Prompt{
		Label:   "Subtitle",
		Default: def.Subtitle,
	}
	subtitle, err := subtitlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("subtitle: %w", err)
	}

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port for techguide serve",
		Default:  strconv.Itoa(def.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 3. Code highlighting.
	stylePrompt := promptui.Select{
		Label: "Code highlight style",
		Items: HighlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight style: %w", err)
	}

	// 4. Export directory.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for the static site",
		Default:  def.Site.OutputDir,
		Validate: required("output directory"),
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := def
	cfg.Title = strings.TrimSpace(title)
	cfg.Subtitle = strings.TrimSpace(subtitle)
	cfg.Server.Port = port
	cfg.Site.HighlightStyle = style
	cfg.Site.OutputDir = strings.TrimSpace(outputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(field string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
