package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mrtuuro/java-switcher/internal/config"
	"github.com/mrtuuro/java-switcher/internal/envstore"
	"github.com/mrtuuro/java-switcher/internal/switcher"
	"github.com/mrtuuro/java-switcher/internal/tui"
)

type cliOptions struct {
	configPath string
	scope      string
}

// NewRootCmd builds the command tree. The bare command runs the
// interactive switch; list, current and tui are read-only or alternate
// front ends over the same Service.
func NewRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "java-switcher",
		Short: "Switch the active JDK installation",
		Long: `java-switcher points the machine environment at one of the JDK
installations found under the configured base directory: it sets
JAVA_HOME and puts the chosen version's bin directory first on the
search path. Run it without arguments to pick a version interactively.

Machine scope writes require an elevated shell on Windows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return fmt.Errorf("(stopped at stage %s) %w", switcher.StageInit, err)
			}
			return runSwitch(cmd, svc)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.json (default: ../config/config.json next to the executable)")
	root.PersistentFlags().StringVar(&opts.scope, "scope", string(envstore.ScopeMachine), "environment scope to write (machine|user|process)")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newCurrentCmd(opts))
	root.AddCommand(newTUICmd(opts))

	return root
}

func newService(opts *cliOptions) (*Service, error) {
	path := opts.configPath
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	scope, err := envstore.ParseScope(opts.scope)
	if err != nil {
		return nil, err
	}

	return NewService(cfg, envstore.NewDefault(), scope), nil
}

func runSwitch(cmd *cobra.Command, svc *Service) error {
	stdout := cmd.OutOrStdout()

	candidates, err := svc.Candidates()
	if err != nil {
		return fmt.Errorf("(stopped at stage %s) %w", switcher.StageLoaded, err)
	}

	fmt.Fprintf(stdout, "Installed JDK versions under %s:\n", svc.Config.JavaBase)
	WriteList(stdout, candidates, svc.Config.DefaultVersion)
	fmt.Fprint(stdout, "Select a version (Enter for default): ")

	line, err := readLine(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("(stopped at stage %s) read selection: %w", switcher.StageListed, err)
	}

	selected, err := svc.Select(line, candidates)
	if err != nil {
		return fmt.Errorf("(stopped at stage %s) %w", switcher.StageListed, err)
	}
	fmt.Fprintf(stdout, "Selected %s\n", selected.Name)

	result, err := svc.Apply(selected)
	if err != nil {
		if result.Switch.HomeSet && !result.Switch.PathSet {
			fmt.Fprintf(stdout, "%s now points at %s but the search path was not updated; the two stay out of sync until a rerun succeeds.\n",
				switcher.HomeVariable, selected.Path)
		}
		return fmt.Errorf("(stopped at stage %s) %w", result.Stage, err)
	}

	fmt.Fprintf(stdout, "%s set to %s\n", switcher.HomeVariable, selected.Path)
	fmt.Fprintf(stdout, "%s updated: %s\\bin is now first\n", switcher.PathVariable, selected.Path)
	fmt.Fprintln(stdout, "Open a new terminal for the change to take effect; running shells keep the old environment.")

	if result.LogWarning != nil {
		log.Warn("switch succeeded but the audit log was not written", "err", result.LogWarning)
	}

	return nil
}

// readLine reads the single selection line. EOF with no input counts as
// an empty selection so the default-version path still applies.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed JDK versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}

			candidates, err := svc.Candidates()
			if err != nil {
				return err
			}

			WriteList(cmd.OutOrStdout(), candidates, svc.Config.DefaultVersion)
			return nil
		},
	}
}

func newCurrentCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the JDK the environment currently points at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}

			home, err := svc.Current()
			if err != nil {
				return err
			}

			if home == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no active JDK configured")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", switcher.HomeVariable, home)
			return nil
		},
	}
}

func newTUICmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Pick a JDK in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), svc, svc.Config.DefaultVersion)
		},
	}
}
