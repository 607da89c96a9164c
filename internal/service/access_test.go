package service

import (
	"errors"
	"testing"
)

func TestVerifyAccess_Match(t *testing.T) {
	if err := VerifyAccess("alice", "alice"); err != nil {
		t.Fatalf("expected access for matching ids, got %v", err)
	}
}

func TestVerifyAccess_Mismatch(t *testing.T) {
	err := VerifyAccess("alice", "bob")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestVerifyAccess_EmptyPathID(t *testing.T) {
	if err := VerifyAccess("", "alice"); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for empty path id, got %v", err)
	}
}
