package game

// DebugState holds global debug flags that persist across game restarts
type DebugState struct {
	ShowGrid bool // Show arena cell lines and bounds
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
