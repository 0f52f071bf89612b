package oracle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func candidateBody(text string) string {
	resp := map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]interface{}{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiClientWithConfig(GeminiConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL,
		Logger:   quietLogger(),
	})
}

func TestInterpretSendsImageAndSchema(t *testing.T) {
	var got geminiRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, candidateBody(`{"title":"Wind Dancing Bamboo","poem":"reeds bend","philosophy":"yield"}`))
	})

	interp, err := client.Interpret(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	assert.Equal(t, "Wind Dancing Bamboo", interp.Title)
	assert.Equal(t, "reeds bend", interp.Poem)
	assert.Equal(t, "yield", interp.Philosophy)

	require.Len(t, got.Contents, 1)
	parts := got.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}), parts[0].InlineData.Data)
	assert.Equal(t, Prompt, parts[1].Text)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
	assert.ElementsMatch(t, []string{"title", "poem", "philosophy"}, got.GenerationConfig.ResponseSchema.Required)
}

func TestInterpretMissingKey(t *testing.T) {
	client := NewGeminiClientWithConfig(GeminiConfig{Logger: quietLogger()})
	_, err := client.Interpret(context.Background(), []byte{1})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestInterpretAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})
	_, err := client.Interpret(context.Background(), []byte{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestInterpretPlainHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream down")
	})
	_, err := client.Interpret(context.Background(), []byte{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestInterpretEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	})
	_, err := client.Interpret(context.Background(), []byte{1})
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestInterpretMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, candidateBody("the bamboo is silent"))
	})
	_, err := client.Interpret(context.Background(), []byte{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode interpretation")
}

func TestInterpretMissingField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, candidateBody(`{"title":"Still Water","poem":"","philosophy":"rest"}`))
	})
	_, err := client.Interpret(context.Background(), []byte{1})
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), "poem")
}

func TestParseInterpretationFenced(t *testing.T) {
	interp, err := parseInterpretation("```json\n{\"title\":\"a\",\"poem\":\"b\",\"philosophy\":\"c\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, Interpretation{Title: "a", Poem: "b", Philosophy: "c"}, interp)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "fallback")
	assert.Equal(t, "fallback", APIKeyFromEnv())
	t.Setenv("GEMINI_API_KEY", "primary")
	assert.Equal(t, "primary", APIKeyFromEnv())
}
