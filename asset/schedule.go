package asset

// DefaultSchedule returns the default phase schedule TOML
// Frames count steps since the phase was entered, starting at 0
const DefaultSchedule = `
initial = "coming"

# --- PLAYER ENTRY ---

[phases.coming]
transitions = [
    { target = "boss", guard = "after", frame = 50 },
]

# --- WAVES ---

[phases.invade]
actions = [
    { action = "spawn", pool = "enemy", variant = "default", every = 50, life = 2, speed = 3 },
]
transitions = [
    { target = "wave", guard = "at", frame = 200 },
]

[phases.wave]
actions = [
    { action = "spawn", pool = "enemy", variant = "wave", every = 60, until = 300, life = 2, speed = 2 },
]
transitions = [
    { target = "invade_large", guard = "at", frame = 400 },
]

[phases.invade_large]
actions = [
    { action = "spawn", pool = "large", variant = "large", at = 50, center = true, life = 20, speed = 2 },
]
transitions = [
    { target = "invade", guard = "after", frame = 500 },
]

# --- BOSS ---

[phases.boss]
actions = [
    { action = "boss", life = 80, speed = 3 },
]
transitions = [
    { target = "invade", guard = "after", frame = 500 },
]

# --- TERMINAL ---

[phases.gameover]
actions = [
    { action = "banner", text = "GAME OVER" },
]
`
