package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func candidateJSON(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustMarshal(text) + `}]}}]}`
}

func mustMarshal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestCommitMessage_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotReq request

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(candidateJSON("feat(x): add y")))
	})

	msg, err := client.CommitMessage(context.Background(), "test-key", "diff body")
	if err != nil {
		t.Fatalf("CommitMessage failed: %v", err)
	}
	if msg != "feat(x): add y" {
		t.Errorf("message = %q, want %q", msg, "feat(x): add y")
	}
	if want := "/v1beta/models/" + DefaultModel + ":generateContent"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q, want %q", gotKey, "test-key")
	}
	if len(gotReq.SystemInstruction.Parts) != 1 ||
		!strings.Contains(gotReq.SystemInstruction.Parts[0].Text, "Conventional Commits") {
		t.Error("request missing commit message system instruction")
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 {
		t.Fatalf("contents = %+v, want one turn with one part", gotReq.Contents)
	}
	userTurn := gotReq.Contents[0].Parts[0].Text
	if !strings.HasPrefix(userTurn, "Analyze these git changes") || !strings.Contains(userTurn, "diff body") {
		t.Errorf("user turn = %q, want analysis prompt followed by diff", userTurn)
	}
}

func TestCommitMessage_ReturnsTextVerbatim(t *testing.T) {
	// Whitespace and quotes are the pipeline's concern, not the client's.
	raw := "  \"feat(x): add y\"  "
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateJSON(raw)))
	})

	msg, err := client.CommitMessage(context.Background(), "k", "diff")
	if err != nil {
		t.Fatalf("CommitMessage failed: %v", err)
	}
	if msg != raw {
		t.Errorf("message = %q, want verbatim %q", msg, raw)
	}
}

func TestCommitMessage_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid key"))
	})

	_, err := client.CommitMessage(context.Background(), "bad-key", "diff")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "invalid key") {
		t.Errorf("error = %q, want it to carry the response body", err)
	}
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("errors.Is(err, ErrForbidden) = false, want true")
	}
}

func TestCommitMessage_ParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.CommitMessage(context.Background(), "k", "diff")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Errorf("err = %v, want decode error", err)
	}
}

func TestCommitMessage_NoCandidates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty candidates", `{"candidates":[]}`},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"empty text", candidateJSON("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CommitMessage(context.Background(), "k", "diff")
			if !errors.Is(err, ErrNoCandidates) {
				t.Errorf("err = %v, want ErrNoCandidates", err)
			}
		})
	}
}

func TestCommitMessage_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse connections

	client, err := NewClient(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.CommitMessage(context.Background(), "k", "diff")
	if err == nil {
		t.Fatal("expected transport error, got nil")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("err = %v, want transport error, not *APIError", err)
	}
}

func TestValidateKey_AnySuccessIsValid(t *testing.T) {
	// Undecodable body on a 2xx status still counts as valid.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("garbage, not json"))
	})

	if err := client.ValidateKey(context.Background(), "some-key"); err != nil {
		t.Errorf("ValidateKey = %v, want nil", err)
	}
}

func TestValidateKey_InvalidKeyCarriesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("API key expired"))
	})

	err := client.ValidateKey(context.Background(), "expired")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "API key expired") {
		t.Errorf("error = %q, want it to carry the response body", err)
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Error("errors.Is(err, ErrUnauthorized) = false, want true")
	}
}

func TestValidateKey_SendsFixedPrompt(t *testing.T) {
	var gotReq request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(candidateJSON("API Key is valid")))
	})

	if err := client.ValidateKey(context.Background(), "k"); err != nil {
		t.Fatalf("ValidateKey failed: %v", err)
	}
	if len(gotReq.Contents) != 1 || !strings.Contains(gotReq.Contents[0].Parts[0].Text, "API Key is valid") {
		t.Errorf("user turn = %+v, want the fixed key-check prompt", gotReq.Contents)
	}
}
