package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fripe070/experienced/internal/cards"
	"github.com/Fripe070/experienced/internal/models/dtos"
)

func TestRenderProvider_Render_Success(t *testing.T) {
	fakePNG := []byte{0x89, 'P', 'N', 'G'}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/render" {
			t.Errorf("Expected path /render, got %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got %s", r.Header.Get("Content-Type"))
		}

		var params map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Errorf("Expected decodable body, got %v", err)
		}
		if params["name"] != "Fripe" {
			t.Errorf("Expected name Fripe, got %v", params["name"])
		}
		colors, ok := params["colors"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected colors object, got %v", params["colors"])
		}
		if colors["border"] != "#854F2B" {
			t.Errorf("Expected hex-encoded border color, got %v", colors["border"])
		}

		w.WriteHeader(http.StatusOK)
		w.Write(fakePNG)
	}))
	defer server.Close()

	provider := &RenderProvider{
		BaseURL: server.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	params := dtos.CardParams{
		Name:       "Fripe",
		Level:      "5",
		Rank:       "1",
		Percentage: 0.5,
		Theme:      dtos.ResolveColors(cards.DefaultTheme()),
		Font:       cards.DefaultFont,
	}
	image, err := provider.Render(context.Background(), params)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(image, fakePNG) {
		t.Errorf("Expected image bytes passed through, got %v", image)
	}
}

func TestRenderProvider_Render_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := &RenderProvider{
		BaseURL: server.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := provider.Render(context.Background(), dtos.CardParams{})
	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Code != ErrCodeRenderFailed {
		t.Errorf("Expected render failed provider error, got %v", err)
	}
}

func TestRenderProvider_Render_NoRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := &RenderProvider{
		BaseURL: server.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := provider.Render(context.Background(), dtos.CardParams{}); err == nil {
		t.Fatal("Expected error for bad gateway")
	}
	if calls != 1 {
		t.Errorf("Expected a single request, got %d", calls)
	}
}
