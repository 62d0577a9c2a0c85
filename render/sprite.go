package render

// Layer orders sprites within a frame, lowest first
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerEntity
	LayerEffect
	LayerOverlay
)

// Non-entity sprite kinds; entity sprites use component.Kind names
const (
	KindStar   = "star"
	KindSpark  = "spark"
	KindBanner = "banner"
)

// Sprite is one drawable item in field coordinates, centred on X, Y
type Sprite struct {
	Layer   Layer   `json:"layer"`
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Angle   float64 `json:"angle,omitempty"`
	Opacity float64 `json:"opacity"`
	Text    string  `json:"text,omitempty"`
}

// Canvas receives one Draw per active entity, particle, star and banner per tick
type Canvas interface {
	Draw(s Sprite)
}
