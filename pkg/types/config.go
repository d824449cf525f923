package types

// Mode selects how the calculator is exposed
type Mode string

// Supported modes
const (
	ModeRepl  Mode = "repl"
	ModeServe Mode = "serve"
)

// Config represents the configuration for the calcsh process
type Config struct {
	Mode         Mode   `json:"mode"`
	HistoryLimit int    `json:"history_limit,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
}
