package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/pointer"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			v, err := a.pointer.Read()
			if errors.Is(err, pointer.ErrNoActiveVersion) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.CurrentNoneSentinel)
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
