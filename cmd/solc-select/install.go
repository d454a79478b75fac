package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/solc-select/internal/install"
	"github.com/conn-castle/solc-select/internal/messages"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			client, err := a.catalogClient()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			installer := install.New(install.Options{
				Source:  client,
				Store:   a.store,
				Out:     out,
				Warn:    a.warn,
				Retries: a.cfg.DownloadRetries,
			})

			if len(args) == 0 {
				versions, err := installer.Available(cmd.Context())
				if err != nil {
					return err
				}
				a.log.Debug("catalog fetched", "releases", len(versions))
				_, _ = fmt.Fprintln(out, messages.InstallAvailableHeader)
				for _, v := range versions {
					_, _ = fmt.Fprintln(out, v)
				}
				return nil
			}

			result, err := installer.Install(cmd.Context(), args)
			if err != nil {
				return err
			}
			a.log.Debug("install finished", "installed", result.Installed, "unmatched", result.Unmatched)
			if len(result.Installed) == 0 {
				a.warnLine(messages.InstallNothingInstalled)
			}
			return nil
		},
	}
}
