package results

// CalculationResult represents the JSON structure for calculation results
type CalculationResult struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
	Record    string  `json:"record"`
}
