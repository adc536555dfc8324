package game

// DebugState holds global debug flags that persist across board restarts
type DebugState struct {
	ShowGrid bool // Show cell grid lines and the state line
}

// Global debug state instance (persists across board restarts)
var globalDebugState = &DebugState{
	ShowGrid: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
