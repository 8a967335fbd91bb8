package tui

import (
	"fmt"
	"strings"

	"berichtctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Portal Access (Server, School, Login)", "portal"),
						huh.NewOption("Set Output Directory", "output"),
						huh.NewOption("Set Subject Renames", "renames"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "portal" {
			err = runSetPortalTUI(cfg)
		} else if action == "output" {
			err = runSetOutputDirTUI(cfg)
		} else if action == "renames" {
			err = runSetRenamesTUI(cfg)
		} else if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.berichtctl.json) ---"))
			fmt.Printf("Server URL: %s\n", cfg.ServerURL)
			fmt.Printf("School: %s\n", cfg.School)
			fmt.Printf("Username: %s\n", cfg.Username)
			if cfg.Password != "" {
				fmt.Println("Password: (saved)")
			} else {
				fmt.Println("Password: Not set")
			}
			fmt.Printf("Output Directory: %s\n", cfg.OutputDir)
			fmt.Printf("Subject Renames: %d\n", len(cfg.SubjectRenames))
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetPortalTUI(cfg *config.AppConfig) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Portal server URL").
				Placeholder("https://nessa.webuntis.com").
				Value(&cfg.ServerURL),
			huh.NewInput().
				Title("School name").
				Placeholder("gym-musterstadt").
				Value(&cfg.School),
			huh.NewInput().
				Title("Username").
				Value(&cfg.Username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Password),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Portal access saved.\n"))
	return nil
}

func runSetOutputDirTUI(cfg *config.AppConfig) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Directory for generated documents").
				Placeholder("/home/max/berichte").
				Value(&cfg.OutputDir),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Output directory saved.\n"))
	return nil
}

// runSetRenamesTUI edits the subject normalization map as "Old = New" lines
func runSetRenamesTUI(cfg *config.AppConfig) error {
	var lines []string
	for old, renamed := range cfg.SubjectRenames {
		lines = append(lines, fmt.Sprintf("%s = %s", old, renamed))
	}
	text := strings.Join(lines, "\n")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Subject renames").
				Description("One rename per line, e.g. 'Ev. Religionslehre = Religion'").
				Value(&text),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	renames := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		old := strings.TrimSpace(parts[0])
		renamed := strings.TrimSpace(parts[1])
		if old != "" && renamed != "" {
			renames[old] = renamed
		}
	}

	cfg.SubjectRenames = renames
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d subject renames.\n", len(renames))))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	selected := cfg.AccentColor
	if selected == "" {
		selected = "99"
	}

	var colorOptions []huh.Option[string]
	for _, c := range []struct{ name, code string }{
		{"Purple (Default)", "99"},
		{"Blue", "33"},
		{"Green", "42"},
		{"Orange", "208"},
		{"Pink", "205"},
		{"Red", "196"},
	} {
		preview := lipgloss.NewStyle().Foreground(lipgloss.Color(c.code)).Render(c.name)
		colorOptions = append(colorOptions, huh.NewOption(preview, c.code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(colorOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(selected).Focused.Title.Render("\n✅ Accent color updated!\n"))
	return nil
}
