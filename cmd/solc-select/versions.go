package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/pointer"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionsUse,
		Short: messages.VersionsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			installed, err := a.store.InstalledVersions()
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if len(installed) == 0 {
				_, _ = fmt.Fprintln(out, messages.VersionsNoneSentinel)
				return nil
			}

			current, err := a.pointer.Read()
			if err != nil && !errors.Is(err, pointer.ErrNoActiveVersion) {
				return err
			}
			for _, v := range installed {
				if v == current {
					_, _ = fmt.Fprintf(out, messages.VersionsCurrentFmt, v)
					continue
				}
				_, _ = fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
