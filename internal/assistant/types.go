package assistant

// ProcessInput is one inbound natural-language request.
type ProcessInput struct {
	Input   string
	Context map[string]interface{}
}
