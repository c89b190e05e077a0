package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/finestra/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Show the configuration of the finestra project in the current
directory (or DIR), after defaults from go.mod have been applied.

With --yaml the result is printed in finestra.yaml form, ready to be
committed. A "finestra" version constraint in the file is checked
against this tool's version.`,
		Usage: "finestra config [DIR] [--yaml]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	var dir string
	asYAML := false
	for _, arg := range args {
		switch arg {
		case "--yaml":
			asYAML = true
		default:
			if dir != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			dir = arg
		}
	}

	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		dir = root
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	if err := cfg.CheckVersion(Version); err != nil {
		return err
	}

	if asYAML {
		data, err := yaml.Marshal(fileForm(cfg))
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.AppID)
	if cfg.ModulePath != "" {
		fmt.Fprintf(stdout, "Module:  %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(stdout, "Root:    %s\n", cfg.Root)
	fmt.Fprintf(stdout, "Backend: %s (available: %t)\n", cfg.Backend, cfg.Backend.Available())
	if cfg.Requires != "" {
		fmt.Fprintf(stdout, "Requires finestra %s\n", cfg.Requires)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Window:")
	title := cfg.Window.Title
	if title == "" {
		title = "(application default)"
	}
	fmt.Fprintf(stdout, "  title: %s\n", title)
	if cfg.Window.Width > 0 {
		fmt.Fprintf(stdout, "  size:  %gx%g\n", cfg.Window.Width, cfg.Window.Height)
	}
	fmt.Fprintf(stdout, "  theme: %s\n", cfg.Window.Theme)
	return nil
}

// fileForm converts resolved values back to the file layout.
func fileForm(r *config.Resolved) config.Config {
	return config.Config{
		Requires: r.Requires,
		App:      config.AppConfig{Name: r.AppName, ID: r.AppID},
		Backend:  r.Backend.String(),
		Window: config.WindowConfig{
			Title:  r.Window.Title,
			Width:  r.Window.Width,
			Height: r.Window.Height,
			Theme:  r.Window.Theme.String(),
		},
	}
}
