package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/palin/internal/logger"
	"github.com/mrled/suns/palin/internal/repository/memrepo"
)

func request(method, path, body string) events.APIGatewayV2HTTPRequest {
	req := events.APIGatewayV2HTTPRequest{Body: body, RawPath: path}
	req.RequestContext.HTTP.Method = method
	req.RequestContext.HTTP.Path = path
	req.RequestContext.RequestID = "test-request"
	return req
}

func TestHandle_Check(t *testing.T) {
	repo := memrepo.NewMemoryRepository()
	h := NewHandlerWithRepository(repo, logger.Discard())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult bool
	}{
		{"palindrome", `{"text":"step on no pets"}`, http.StatusOK, true},
		{"not palindrome", `{"text":"e082 2F01"}`, http.StatusOK, false},
		{"ascii fold", `{"text":"KayAk","fold":"ascii"}`, http.StatusOK, true},
		{"empty lenient", `{"text":""}`, http.StatusOK, true},
		{"empty strict", `{"text":"   ","strict":true}`, http.StatusUnprocessableEntity, false},
		{"unknown fold", `{"text":"abba","fold":"unicode"}`, http.StatusBadRequest, false},
		{"malformed body", `{"text":`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), request("POST", "/api/v1/check", tt.body))
			if err != nil {
				t.Fatalf("Handle returned error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (%s)", tt.wantStatus, resp.StatusCode, resp.Body)
			}
			if resp.StatusCode != http.StatusOK {
				return
			}

			var out CheckResponse
			if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
				t.Fatalf("Invalid response body %q: %v", resp.Body, err)
			}
			if out.IsPalindrome != tt.wantResult {
				t.Errorf("Expected isPalindrome=%t, got %t", tt.wantResult, out.IsPalindrome)
			}
			if out.Rev != 1 {
				t.Errorf("Expected recorded rev 1, got %d", out.Rev)
			}
		})
	}

	records, _ := repo.List(context.Background())
	if len(records) != 4 {
		t.Errorf("Expected 4 recorded checks, got %d", len(records))
	}
}

func TestHandle_CheckWrongMethod(t *testing.T) {
	h := NewHandlerWithRepository(nil, logger.Discard())
	resp, _ := h.Handle(context.Background(), request("GET", "/v1/check", ""))
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestHandle_SelfTest(t *testing.T) {
	h := NewHandlerWithRepository(nil, logger.Discard())
	resp, err := h.Handle(context.Background(), request("GET", "/v1/selftest", ""))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d (%s)", resp.StatusCode, resp.Body)
	}

	var out SelfTestResponse
	if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
		t.Fatalf("Invalid response body: %v", err)
	}
	if !out.Passed || len(out.Results) != 7 {
		t.Errorf("Expected passing self-test with 7 results, got %+v", out)
	}
}

func TestHandle_UnknownPath(t *testing.T) {
	h := NewHandlerWithRepository(nil, logger.Discard())
	resp, _ := h.Handle(context.Background(), request("GET", "/v1/nope", ""))
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Expected JSON content type, got %q", resp.Headers["Content-Type"])
	}
}
