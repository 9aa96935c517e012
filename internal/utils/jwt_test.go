package utils

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("topsecret", 42, "customer", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	userID, role, err := ParseAccessToken("topsecret", tok.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 || role != "customer" {
		t.Errorf("got user=%d role=%q, want 42/customer", userID, role)
	}
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	tok, err := NewAccessToken("topsecret", 42, "customer", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, _, err := ParseAccessToken("othersecret", tok.Token); err == nil {
		t.Fatal("token verified with wrong secret")
	}
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("new refresh token: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Errorf("raw length = %d, want 96 hex chars", len(rt.Raw))
	}
	if HashRefreshRaw(rt.Raw) != HashRefreshRaw(rt.Raw) {
		t.Error("hash not deterministic")
	}
	other, _ := NewRefreshToken(7)
	if HashRefreshRaw(rt.Raw) == HashRefreshRaw(other.Raw) {
		t.Error("distinct tokens hash equal")
	}
}
