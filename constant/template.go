// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Global functions a Lua provider script must define.
const (
	HotFn     = "Hot"
	SearchFn  = "Search"
	DetailsFn = "Details"
	MediaFn   = "Media"
)

// ProviderTemplate scaffolds a new Lua provider script.
const ProviderTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias item { subjectId: string, detailPath: string, title: string|nil, cover: { url: string }|nil, imdbRatingValue: string|nil }
---@alias resource { hls: string|nil, mp4: string|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- MAIN -----

--- Lists hot movies and trending series.
-- @return { data: { movie: item[], tv: item[] } }
function {{ .HotFn }}()
	return { data = { movie = {}, tv = {} } }
end


--- Searches for titles matching the keyword.
-- @param keyword string
-- @return { data: { items: item[] } }
function {{ .SearchFn }}(keyword)
	return { data = { items = {} } }
end


--- Loads the detail record of a title.
-- @param subjectId string
-- @param detailPath string
-- @return { status: string, data: table|nil, message: string|nil }
function {{ .DetailsFn }}(subjectId, detailPath)
	return { status = "error", message = "not implemented" }
end


--- Resolves a playable stream.
-- @param subjectId string
-- @param detailPath string
-- @return { data: { resource: resource }|nil, status: string|nil, message: string|nil }
function {{ .MediaFn }}(subjectId, detailPath)
	return { message = "not implemented" }
end


--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
