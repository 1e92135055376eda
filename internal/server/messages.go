package server

// Message types exchanged over the websocket.
const (
	TypeSample = "sample"
	TypeGrid   = "grid"
	TypeRebake = "rebake"
	TypeBaked  = "baked"
	TypeError  = "error"
)

// Request is any client message. Fields not used by Type are ignored.
type Request struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"` // Echoed back so clients can match replies

	// sample
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// grid; zero values fall back to the configured grid
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	SegmentsX int     `json:"segmentsX"`
	SegmentsY int     `json:"segmentsY"`

	// rebake; nil keeps the current randomness / configured layer count
	Seed   *int64 `json:"seed,omitempty"`
	Layers *int   `json:"layers,omitempty"`
}

// SampleResponse answers a sample request.
type SampleResponse struct {
	Type  string  `json:"type"`
	ID    string  `json:"id,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

// GridResponse answers a grid request. Heights are row-major.
type GridResponse struct {
	Type    string    `json:"type"`
	ID      string    `json:"id,omitempty"`
	Cols    int       `json:"cols"`
	Rows    int       `json:"rows"`
	Heights []float64 `json:"heights"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
}

// BakedResponse confirms a rebake.
type BakedResponse struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Layers int    `json:"layers"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
