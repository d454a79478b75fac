package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/solc-select/internal/catalog"
	"github.com/conn-castle/solc-select/internal/config"
	"github.com/conn-castle/solc-select/internal/logger"
	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/platform"
	"github.com/conn-castle/solc-select/internal/pointer"
	"github.com/conn-castle/solc-select/internal/store"
)

const flagVerbose = "verbose"

var (
	loadConfig      = func() (config.Config, error) { return config.Load(config.RealSystem{}) }
	resolvePlatform = platform.Resolve
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, messages.RootFlagVerbose)
	cmd.AddCommand(
		newInstallCmd(),
		newUseCmd(),
		newVersionsCmd(),
		newCurrentCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// app bundles the components a command needs, built from config for one invocation.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	stderr  io.Writer
	store   *store.Store
	pointer *pointer.File
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	a := &app{
		cfg:     cfg,
		log:     logger.New(cmd.ErrOrStderr(), verbose || cfg.Debug),
		stderr:  cmd.ErrOrStderr(),
		pointer: pointer.New(cfg.Paths.GlobalVersionPath),
	}
	a.store = store.New(cfg.Paths.ArtifactsDir, a.warn)
	a.log.Debug("resolved paths",
		"root", cfg.Paths.Root,
		"artifacts", cfg.Paths.ArtifactsDir,
		"global_version", cfg.Paths.GlobalVersionPath,
		"config", cfg.Paths.ConfigPath,
	)
	return a, nil
}

// catalogClient resolves the host platform; an unsupported OS is fatal.
func (a *app) catalogClient() (*catalog.Client, error) {
	key, err := resolvePlatform()
	if err != nil {
		return nil, err
	}
	client := catalog.NewClient(a.cfg.BaseURL, key, a.cfg.Timeout, a.cfg.MaxDownloadBytes)
	a.log.Debug("remote catalog", "platform", key.String(), "url", client.ListURL(), "timeout", a.cfg.Timeout)
	return client, nil
}

func (a *app) warn(msg string) {
	_, _ = color.New(color.FgYellow).Fprint(a.stderr, msg)
}

func (a *app) warnLine(msg string) {
	a.warn(fmt.Sprintln(msg))
}
