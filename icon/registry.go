package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota + 1
	Go
	Fail
	Success
	Progress
	Search
	Star
	Play
	Movie
	Series
	Link
	Question
	Info
	Mark
)

var icons = map[Icon]*iconDef{
	Lua:      {emoji: "🌙", nerd: "", plain: "Lua", kaomoji: "(=^･ω･^=)", squares: "🟦"},
	Go:       {emoji: "🐹", nerd: "", plain: "Go", kaomoji: "ʕ•ᴥ•ʔ", squares: "🟦"},
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・ヾ", squares: "🟨"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟪"},
	Star:     {emoji: "⭐", nerd: "", plain: "*", kaomoji: "☆", squares: "🟨"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ﾉ◕ヮ◕)ﾉ", squares: "🟩"},
	Movie:    {emoji: "🎬", nerd: "", plain: "M", kaomoji: "(¬‿¬)", squares: "🟥"},
	Series:   {emoji: "📺", nerd: "", plain: "S", kaomoji: "(◕‿◕)", squares: "🟧"},
	Link:     {emoji: "🔗", nerd: "", plain: "#", kaomoji: "(づ｡◕‿‿◕｡)づ", squares: "🟦"},
	Question: {emoji: "❔", nerd: "", plain: "?", kaomoji: "(・・ )?", squares: "🟪"},
	Info:     {emoji: "💡", nerd: "", plain: "i", kaomoji: "(°ロ°)☝", squares: "🟦"},
	Mark:     {emoji: "✅", nerd: "", plain: "*", kaomoji: "(✿◠‿◠)", squares: "🟩"},
}
