/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := &Config{port: 8080, rounds: 3}

	if err := cfg.validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.port = 0

	if err := cfg.validate(); err == nil {
		t.Error("invalid port accepted")
	}

	cfg.port = 8080
	cfg.tlsCert = "cert.pem"

	if err := cfg.validate(); err == nil {
		t.Error("tls cert without key accepted")
	}

	cfg.tlsKey = "key.pem"

	if err := cfg.validate(); err != nil {
		t.Errorf("matched tls pair rejected: %v", err)
	}

	cfg.rounds = 0

	if err := cfg.validate(); err == nil {
		t.Error("zero rounds accepted")
	}
}

func TestSchemeFollowsTLS(t *testing.T) {
	cfg := &Config{}

	if got := cfg.scheme(); got != "http" {
		t.Errorf("expected http without tls, got %q", got)
	}

	cfg.tlsCert = "cert.pem"
	cfg.tlsKey = "key.pem"

	if got := cfg.scheme(); got != "https" {
		t.Errorf("expected https with tls, got %q", got)
	}
}
