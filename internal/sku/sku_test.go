package sku

import (
	"os"
	"strings"
	"testing"
)

func TestQRIssuer_Issue(t *testing.T) {
	dir := t.TempDir()
	issuer := NewQRIssuer(dir)

	code, qrPath, err := issuer.Issue("Rice 5kg")
	if err != nil {
		t.Fatalf("error issuing SKU: %v", err)
	}

	if !strings.HasPrefix(code, "PRD") || len(code) != 11 {
		t.Errorf("expected PRD plus 8 characters, got %q", code)
	}
	if code != strings.ToUpper(code) {
		t.Errorf("expected uppercase SKU, got %q", code)
	}

	info, err := os.Stat(qrPath)
	if err != nil {
		t.Fatalf("expected QR file at %v: %v", qrPath, err)
	}
	if info.Size() == 0 {
		t.Errorf("expected non-empty QR file")
	}
}

func TestQRIssuer_UniqueAcrossIssues(t *testing.T) {
	issuer := NewQRIssuer(t.TempDir())

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, _, err := issuer.Issue("Anything")
		if err != nil {
			t.Fatalf("error issuing SKU: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate SKU issued: %v", code)
		}
		seen[code] = true
	}
}

func TestStaticIssuer_Deterministic(t *testing.T) {
	issuer := &StaticIssuer{}

	first, qrPath, err := issuer.Issue("A")
	if err != nil {
		t.Fatalf("error issuing SKU: %v", err)
	}
	if first != "PRD00000001" {
		t.Errorf("expected PRD00000001, got %v", first)
	}
	if qrPath != "" {
		t.Errorf("expected no QR artifact, got %v", qrPath)
	}

	second, _, _ := issuer.Issue("B")
	if second != "PRD00000002" {
		t.Errorf("expected PRD00000002, got %v", second)
	}
}
