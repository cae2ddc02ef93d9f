// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Content API - these keys locate and authenticate the upstream REST API.
const (
	APIBaseURL        = "api.base_url"
	APIKey            = "api.key"
	APITimeout        = "api.timeout"
	APITLSFingerprint = "api.tls_fingerprint"
)

// Provider selection.
const (
	DefaultProvider = "provider.default"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchMinLength   = "search.min_length"
	SearchSuggestions = "search.suggestions"
)

// Media Playback - these keys configure the external video player.
const (
	Player         = "player.default"
	PlayerArgs     = "player.args"
	PlayerAutoplay = "player.autoplay"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIShowURLs     = "tui.show_urls"
	TUIReverseLists = "tui.reverse_lists"
	TUISearchPrompt = "tui.search_prompt"
	TUIItemSpacing  = "tui.item_spacing"
)

const (
	MiniVimMode = "mini.vim_mode"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
