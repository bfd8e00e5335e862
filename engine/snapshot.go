package engine

// FixtureFrame is one fixture's slice of a rendered frame, copied out of the
// universe so consumers never alias the live buffer.
type FixtureFrame struct {
	Name     string
	Base     int
	Channels []byte
	Summary  string
}

// Snapshot is the diagnostic view of one render tick. Everything is by value;
// the render loop publishes these without blocking and drops them when the
// consumer is behind.
type Snapshot struct {
	Frame    uint64
	State    string
	FPS      float64
	Dropped  uint64
	TxError  string
	Fixtures []FixtureFrame
}
