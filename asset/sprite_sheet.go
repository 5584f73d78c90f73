package asset

// DefaultSpriteSheet returns the default sprite sheet YAML
// Sizes are world units and drive both rendering and collision extents
const DefaultSpriteSheet = `
# === Ships ===

- name: player
  width: 99
  height: 60
  glyph: "A"
  color: "#3c78d8"

- name: enemy
  width: 93
  height: 84
  glyph: "W"
  color: "#d83c3c"

# === Projectiles ===

- name: laser_blue
  width: 9
  height: 54
  glyph: "|"
  color: "#7fb2ff"

- name: laser_red
  width: 9
  height: 54
  glyph: "!"
  color: "#ff7f7f"
`
