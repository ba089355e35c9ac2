package common

const (
	// BaseWidth and BaseHeight size the play area.
	BaseWidth  = 600
	BaseHeight = 360

	// PanelHeight is the host's control strip below the play area.
	PanelHeight = 160

	TicksPerSecond = 60
)
