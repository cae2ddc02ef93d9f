// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "streamflix"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every content API request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Repository is the GitHub slug used for release checks.
	Repository = "streamflix-cli/streamflix"

	// DefaultBaseURL is the root of the hosted content API.
	DefaultBaseURL = "https://gzmovieboxapi.vercel.app/api/"
)

// Logo is printed above the root command's long help.
const Logo = ` ___ _                       ___ _ _
/ __| |_ _ _ ___ __ _ _ __ | __| (_)_ __
\__ \  _| '_/ -_) _` + "`" + ` | '  \| _|| | \ \ /
|___/\__|_| \___\__,_|_|_|_|_| |_|_/_\_\`
