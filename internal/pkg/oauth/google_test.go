package oauth

import (
	"strings"
	"testing"
)

func TestGenerateStateIsOpaqueAndUnique(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	agent := "Mozilla/5.0 (X11; Linux x86_64)"
	first := svc.GenerateState(agent)
	second := svc.GenerateState(agent)

	if first == "" || second == "" {
		t.Fatal("GenerateState returned an empty state")
	}
	if first == second {
		t.Error("GenerateState returned the same state twice")
	}
	if strings.ContainsAny(first, "+/=") {
		t.Errorf("GenerateState returned a non URL-safe state: %q", first)
	}
	if strings.Contains(first, agent) {
		t.Error("GenerateState leaked the user agent into the state")
	}
}

func TestRedirectURLCarriesState(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	url := svc.RedirectURL("some-state")
	if !strings.Contains(url, "state=some-state") {
		t.Errorf("RedirectURL does not carry the state: %q", url)
	}
}
