package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Fripe070/experienced/internal/models/dtos"
)

// RenderProvider hands the assembled card parameters to the rendering
// backend and receives an opaque PNG buffer. Rendering is deterministic, so
// failures are never retried.
type RenderProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewRenderProvider(baseURL string) *RenderProvider {
	return &RenderProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Render submits the parameter set and returns the rendered image bytes.
func (p *RenderProvider) Render(ctx context.Context, params dtos.CardParams) ([]byte, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, &ProviderError{Code: ErrCodeRenderFailed, Message: "failed to encode card parameters", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Code: ErrCodeRenderFailed, Message: "failed to create render request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Code: ErrCodeRenderFailed, Message: "render request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Code:    ErrCodeRenderFailed,
			Message: fmt.Sprintf("renderer returned status %d", resp.StatusCode),
		}
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Code: ErrCodeRenderFailed, Message: "failed to read rendered image", Err: err}
	}
	return image, nil
}
