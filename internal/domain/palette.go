package domain

// Palette is the set of solid card colors offered next to the automatic
// gradient. Any hex color is accepted on update; these are the suggestions.
var Palette = []string{
	"#ef4444", "#f97316", "#eab308", "#84cc16",
	"#22c55e", "#14b8a6", "#06b6d4", "#3b82f6",
	"#8b5cf6", "#d946ef", "#ec4899", "#78716c",
}
