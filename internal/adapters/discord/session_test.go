package discord

import (
	"testing"
)

func TestNewSession_Success(t *testing.T) {
	session, err := NewSession("MTk.test.token")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if session.Identify.Intents != Intents {
		t.Errorf("Expected intents %d, got %d", Intents, session.Identify.Intents)
	}
}

func TestNewSession_VariousTokenFormats(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"standard format", "MTk.test.token"},
		{"short token", "test"},
		{"empty", ""},
		{"with special chars", "test-token_123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := NewSession(tc.token)
			if err != nil {
				t.Fatalf("Unexpected error creating session: %v", err)
			}

			if session.Identify.Intents == 0 {
				t.Error("Expected intents to be set")
			}
		})
	}
}

func TestNewSession_TokenPrefixing(t *testing.T) {
	session, err := NewSession("my-token-123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedToken := "Bot my-token-123"
	if session.Token != expectedToken {
		t.Errorf("Expected token '%s', got '%s'", expectedToken, session.Token)
	}
}
