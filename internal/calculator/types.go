package calculator

// CalcRequest is the JSON body for binary operations (add, subtract, multiply, divide).
// Operands may be the strings "Infinity", "-Infinity" or "NaN" so a
// previous non-finite result can be fed back in.
type CalcRequest struct {
	A Number `json:"a"`
	B Number `json:"b"`
}

// CalcResponse is the JSON response for the binary operation endpoints.
type CalcResponse struct {
	Operation string `json:"operation"`
	A         Number `json:"a"`
	B         Number `json:"b"`
	Result    Number `json:"result"`
	Display   string `json:"display"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string `json:"op"`    // symbol or name: "+", "add", "/", "divide", ...
	Value Number `json:"value"` // right operand applied to the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial Number      `json:"initial"`
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial Number        `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  Number        `json:"result"`
	Display string        `json:"display"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Op     Operator `json:"op"`
	Value  Number   `json:"value"`
	Result Number   `json:"result"`
}

// KeysRequest is the JSON body for POST /calculator/keys. State is the
// snapshot returned by a previous call; omit it to start from a cleared keypad.
type KeysRequest struct {
	Keys  string    `json:"keys"`
	State *Snapshot `json:"state,omitempty"`
}

// KeysResponse is the JSON response for POST /calculator/keys.
type KeysResponse struct {
	State       Snapshot `json:"state"`
	KeysApplied int      `json:"keys_applied"`
}
