package messages

// System and infrastructure messages.
const (
	// PlatformUnsupportedOSFmt reports a host OS with no published solc builds.
	PlatformUnsupportedOSFmt = "%w: %q (supported: linux, darwin)"

	// CatalogCreateRequestFmt formats request construction failures.
	CatalogCreateRequestFmt    = "create request for %s: %w"
	CatalogFetchFailedFmt      = "fetch %s: %w"
	CatalogUnexpectedStatusFmt = "fetch %s: unexpected status %s"
	CatalogNotFoundFmt         = "fetch %s: not found (HTTP 404)"
	CatalogDecodeFailedFmt     = "decode %s: %w"
	CatalogMissingReleases     = "response has no releases field"
	CatalogTimeoutFmt          = "fetch %s: request timed out (%w)\n\nRemediation:\n  - Check your internet connection\n  - If behind a proxy, ensure HTTP_PROXY/HTTPS_PROXY are set\n  - Retry the command"
	CatalogDownloadTooLargeFmt = "download %s: response too large (%d bytes > limit %d bytes)"

	// StoreOpReadDir names the artifact directory listing operation.
	StoreOpReadDir           = "read artifact directory"
	StoreOpCreateDir         = "create artifact directory"
	StoreOpCreateTemp        = "create temp file in"
	StoreOpWrite             = "write artifact"
	StoreOpSync              = "sync artifact"
	StoreOpClose             = "close artifact"
	StoreOpChmod             = "chmod artifact"
	StoreOpRename            = "move artifact into place"
	StoreIOErrorFmt          = "%s %s: %v"
	StoreChecksumMismatchFmt = "checksum mismatch for %s (expected %s, got %s)"
	StoreEmptyVersion        = "version is required"
	StoreInvalidVersionFmt   = "invalid version %q: must not contain path separators"
	StoreSkipEntryWarnFmt    = "Warning: ignoring %s in %s (not a solc artifact)\n"

	// PointerReadFmt formats active version read failures.
	PointerReadFmt       = "read %s: %w"
	PointerCreateDirFmt  = "create directory for %s: %w"
	PointerCreateTempFmt = "create temp file for %s: %w"
	PointerWriteTempFmt  = "write temp file for %s: %w"
	PointerSyncTempFmt   = "sync temp file for %s: %w"
	PointerCloseTempFmt  = "close temp file for %s: %w"
	PointerRenameFmt     = "rename temp file for %s: %w"
	PointerNoActive      = "no active solc version"

	// SwitcherQueryInstalledFmt formats installed-set query failures during a switch.
	SwitcherQueryInstalledFmt = "list installed versions: %w"
	SwitcherWritePointerFmt   = "set active version %s: %w"

	// VersionInvalidFmt reports an identifier that is not X.Y.Z.
	VersionInvalidFmt        = "%w %q: expected MAJOR.MINOR.PATCH"
	VersionInvalidSegmentFmt = "%w %q: segment %q: %v"

	// LockOpenFmt formats lock file open failures.
	LockOpenFmt      = "open lock %s: %w"
	LockAcquireFmt   = "lock %s: %w"
	LockTimeoutFmt   = "timed out waiting for lock after %s"
	LockCreateDirFmt = "create lock directory for %s: %w"

	// ConfigResolveHomeFmt formats home directory resolution failures.
	ConfigResolveHomeFmt    = "resolve home directory: %w"
	ConfigReadFileFmt       = "read config %s: %w"
	ConfigInvalidFileFmt    = "invalid config %s: %w"
	ConfigUnknownKeysFmt    = "config %s contains unrecognized keys: %w"
	ConfigInvalidTimeoutFmt = "config %s: invalid timeout %q: %w"
	ConfigNonPositiveFmt    = "config %s: %s must be positive"
	ConfigNegativeFmt       = "config %s: %s must not be negative"
	ConfigInvalidBaseURLFmt = "config %s: invalid base_url %q"
	ConfigErrorFmt          = "configuration error: %v"

	// PickerRequiresTerminal indicates the interactive picker has no terminal.
	PickerRequiresTerminal = "interactive selection requires a terminal"
	PickerCancelled        = "selection cancelled"
)
