package llmprovider

import (
	"context"

	"ironlady-assistant/pkg/gemini"
	"ironlady-assistant/pkg/vertex"
)

// geminiRole maps normalized roles to the wire roles Gemini-family APIs accept.
// The APIs know only "user" and "model".
func geminiRole(role string) string {
	if role == "assistant" || role == "model" {
		return "model"
	}
	return "user"
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		Contents: make([]gemini.Content, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Text}},
		}
	}

	for i, msg := range req.Messages {
		geminiReq.Contents[i] = gemini.Content{
			Role:  geminiRole(msg.Role),
			Parts: []gemini.Part{{Text: msg.Text}},
		}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	return &Response{
		Text:         resp.Candidates[0].Content.Parts[0].Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// VertexAdapter adapts pkg/vertex to the Provider interface
type VertexAdapter struct {
	client *vertex.Client
}

// NewVertexAdapter creates a new Vertex AI adapter
func NewVertexAdapter(client *vertex.Client) *VertexAdapter {
	return &VertexAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *VertexAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	vertexReq := vertex.GenerateRequest{
		Contents: make([]vertex.Content, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		vertexReq.SystemInstruction = &vertex.Content{
			Parts: []vertex.Part{{Text: req.SystemInstruction.Text}},
		}
	}

	for i, msg := range req.Messages {
		vertexReq.Contents[i] = vertex.Content{
			Role:  geminiRole(msg.Role),
			Parts: []vertex.Part{{Text: msg.Text}},
		}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		vertexReq.GenerationConfig = &vertex.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, vertexReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	return &Response{
		Text:         resp.Candidates[0].Content.Parts[0].Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *VertexAdapter) Name() string {
	return "vertex"
}

// Model returns model name
func (a *VertexAdapter) Model() string {
	return a.client.Model()
}
