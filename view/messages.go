package view

// Loading placeholders.
const (
	LoadingMovies = "Loading hot movies..."
	LoadingSeries = "Loading trending series..."
	LoadingSearch = "Searching..."
	LoadingDetail = "Loading movie details..."
	LoadingStream = "Fetching stream link..."
)

// Hot listing.
const (
	NoHotMovies        = "No hot movies found in the API data."
	NoTrendingSeries   = "No trending series found in the API data."
	HotFailureFormat   = "Failed to load content. Error: %s. Please check your connection or try searching."
	HotFailureFollowUp = "If you just deployed, the API might be temporarily unresponsive."
)

// Search.
const (
	SearchHeadingFormat   = "Search Results for \"%s\""
	NoSearchResultsFormat = "No results found for \"%s\"."
	SearchFailure         = "Error fetching search results. Please check the console for details."
)

// Detail page.
const (
	DetailFailure        = "Failed to load detailed information for this title."
	DetailNetworkFailure = "A network error occurred while fetching details."
)

// Fallbacks for absent fields.
const (
	TitleUnknown     = "Title Unknown"
	TitleUnavailable = "Title Unavailable"
	MediaContent     = "Media Content"
	NotAvailable     = "N/A"
	NoSynopsis       = "No plot summary available."
	NoCast           = "No cast information available."
)

// Player overlay.
const (
	NowPlayingFormat = "Now Playing: %s"

	StreamPending   = "Please wait while we secure the stream link."
	StreamFound     = "Stream found! Playing video."
	StreamReady     = "Stream found! Tap the play button to start."
	AutoplayFailed  = "Error: Video failed to auto-play (Player restriction). Please tap the play button manually."
	LinkMissingText = "Error: Resource found, but the direct video link (HLS/MP4) is missing."
	LinkMissingBody = "The API is not providing a direct stream link for this content."
	APIErrorFormat  = "API Error: %s"
	APIErrorBody    = "Could not load the streaming resource due to an API error."
	NotFoundFormat  = "Media Source Error: %s"
	NotFoundBody    = "The API could not find a playable resource for %s."
	UnknownText     = "General Fetch Error: Unknown response structure."
	UnknownBody     = "An unexpected error occurred during the media fetch. Check the log file for the full response data."
	NetworkText     = "A critical network error occurred. Check your internet connection or console for details."
	NetworkBody     = "Network request failed."
)
