package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "solc-select"
	// RootShort is the short description for the root command.
	RootShort       = "Install and quickly switch between Solidity compiler versions"
	RootFlagVerbose = "Log resolved paths and remote URLs to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command usage.
	InstallUse              = "install [VERSION...]"
	InstallShort            = "List and install available solc versions"
	InstallLong             = "Without arguments, list every version available for this platform.\nWith one or more versions (for example 0.8.4), install them; use \"all\" to install every available version."
	InstallAvailableHeader  = "Available versions to install:"
	InstallInstallingFmt    = "Installing '%s'...\n"
	InstallInstalledFmt     = "Version '%s' installed.\n"
	InstallUnmatchedWarnFmt = "Warning: version '%s' is not available for this platform; skipped\n"
	InstallNothingInstalled = "Nothing was installed."
	InstallNothingRequested = "no versions requested"
	InstallAllSentinel      = "all"
	InstallErrorFmt         = "install: %v"
	InstallVersionErrorFmt  = "install %s: %v"

	// UseUse is the use command usage.
	UseUse                = "use [VERSION]"
	UseShort              = "Change the version of the global solc compiler"
	UseSwitchedFmt        = "Switched global version to %s\n"
	UseNotInstalledFmt    = "You need to install '%s' prior to using it. Use `solc-select install %s`\n"
	UseUnknownFmt         = "Unknown version `%s`\n"
	UseVersionRequired    = "a version is required (run in an interactive terminal to pick one)"
	UsePickerTitle        = "Select the solc version to use"
	UseNoInstalledToPick  = "no solc versions are installed; run `solc-select install <version>` first"
	UseTooManyVersionsFmt = "accepts at most 1 version, received %d"

	// VersionsUse is the versions command usage.
	VersionsUse          = "versions"
	VersionsShort        = "Print out all installed solc versions"
	VersionsNoneSentinel = "<no-solc-installed>"
	VersionsCurrentFmt   = "%s (current)\n"

	// CurrentUse is the current command usage.
	CurrentUse          = "current"
	CurrentShort        = "Print the active solc version"
	CurrentNoneSentinel = "<no-version-selected>"

	// CompletionUse is the completion command usage.
	CompletionUse                 = "completion [bash|zsh|fish]"
	CompletionShort               = "Generate shell completion scripts"
	CompletionUnsupportedShellFmt = "unsupported shell %q (supported: bash, zsh, fish)"

	// ShimNoActiveVersion is printed by the solc dispatcher when nothing is selected.
	ShimNoActiveVersion     = "no solc version selected; run `solc-select use <version>` (see `solc-select versions`)"
	ShimArtifactMissingFmt  = "solc %s is selected but %s does not exist; run `solc-select install %s`"
	ShimCheckArtifactFmt    = "check %s: %w"
	ShimInvalidOverrideFmt  = "%s must name a single version, got %q"
	ShimArgv0Required       = "missing argv[0]"
	ShimSystemRequired      = "dispatcher system is required"
	ShimExitHandlerRequired = "exit handler is required"
	ShimExecFailedFmt       = "exec %s: %w"
	ShimDispatched          = "dispatched"
)
