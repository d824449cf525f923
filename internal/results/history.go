package results

// HistoryResult represents the JSON structure for history listing results
type HistoryResult struct {
	Count   int      `json:"count"`
	Records []string `json:"records"`
}

// ClearResult represents the JSON structure for history clearing results
type ClearResult struct {
	Cleared int `json:"cleared"`
}

// UndoResult represents the JSON structure for undo results
type UndoResult struct {
	Removed string `json:"removed,omitempty"`
	Empty   bool   `json:"empty"`
}
