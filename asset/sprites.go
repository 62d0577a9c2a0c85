package asset

// DefaultSpriteSheet returns the built-in terminal look of every sprite kind
// Colors are tcell color names or #rrggbb
const DefaultSpriteSheet = `
# --- ACTORS ---

[sprites.player]
glyph = "A"
color = "aqua"
bold = true

[sprites.player_shot]
glyph = "|"
color = "white"

[sprites.enemy]
glyph = "V"
color = "red"

[sprites.large]
glyph = "W"
color = "orange"

[sprites.boss]
glyph = "#"
color = "purple"
bold = true

[sprites.enemy_shot]
glyph = "*"
color = "yellow"

[sprites.homing]
glyph = "o"
color = "fuchsia"

# --- EFFECTS ---

[sprites.star]
glyph = "."
color = "gray"

[sprites.spark]
glyph = "░"
color = "#ff1166"

[sprites.banner]
glyph = " "
color = "red"
bold = true
`
