package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/picker"
	"github.com/conn-castle/solc-select/internal/pointer"
	"github.com/conn-castle/solc-select/internal/store"
	"github.com/conn-castle/solc-select/internal/switcher"
	"github.com/conn-castle/solc-select/internal/terminal"
)

type versionPicker interface {
	Select(title string, options []string, current string) (string, error)
}

var (
	isInteractive = terminal.IsInteractive
	newPicker     = func() versionPicker { return picker.New() }
)

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UseUse,
		Short: messages.UseShort,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf(messages.UseTooManyVersionsFmt, len(args))
			}
			return nil
		},
		ValidArgsFunction: completeInstalledVersions,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			var requested string
			if len(args) == 1 {
				requested = args[0]
			} else {
				requested, err = pickVersion(a)
				if err != nil {
					return err
				}
			}

			client, err := a.catalogClient()
			if err != nil {
				return err
			}
			outcome, err := switcher.New(a.store, a.pointer, client).Switch(cmd.Context(), requested)
			if err != nil {
				return err
			}
			a.log.Debug("switch", "version", requested, "outcome", outcome.String())

			out := cmd.OutOrStdout()
			switch outcome {
			case switcher.Switched:
				_, _ = color.New(color.FgGreen).Fprintf(out, messages.UseSwitchedFmt, requested)
			case switcher.NotInstalled:
				_, _ = fmt.Fprintf(out, messages.UseNotInstalledFmt, requested, requested)
			default:
				_, _ = fmt.Fprintf(out, messages.UseUnknownFmt, requested)
			}
			return nil
		},
	}
}

// pickVersion shows the interactive picker over installed versions.
func pickVersion(a *app) (string, error) {
	if !isInteractive() {
		return "", errors.New(messages.UseVersionRequired)
	}
	installed, err := a.store.InstalledVersions()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if len(installed) == 0 {
		return "", errors.New(messages.UseNoInstalledToPick)
	}
	current, err := a.pointer.Read()
	if err != nil && !errors.Is(err, pointer.ErrNoActiveVersion) {
		return "", err
	}
	return newPicker().Select(messages.UsePickerTitle, installed, current)
}

// completeInstalledVersions offers installed versions for shell completion.
func completeInstalledVersions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	installed, err := store.New(cfg.Paths.ArtifactsDir, nil).InstalledVersions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return installed, cobra.ShellCompDirectiveNoFileComp
}
