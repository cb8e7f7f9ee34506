// Package sku issues product SKUs and their scannable QR artifacts.
package sku

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Issuer assigns a unique SKU and a derived code artifact to a new product.
// The catalog treats both as opaque strings.
type Issuer interface {
	Issue(productName string) (sku, qrPath string, err error)
}

// QRIssuer generates "PRD" + 8 uppercase hex chars and writes a QR PNG whose
// content is the SKU itself, so a scan resolves back to the product.
type QRIssuer struct {
	Dir string // where the PNGs land; created on first use
}

func NewQRIssuer(dir string) *QRIssuer {
	return &QRIssuer{Dir: dir}
}

func (i *QRIssuer) Issue(productName string) (string, string, error) {
	sku := "PRD" + strings.ToUpper(uuid.NewString()[:8])

	if err := os.MkdirAll(i.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create qr dir: %w", err)
	}
	path := filepath.Join(i.Dir, sku+".png")
	if err := qrcode.WriteFile(sku, qrcode.Low, 256, path); err != nil {
		return "", "", fmt.Errorf("write qr code: %w", err)
	}
	return sku, path, nil
}

// StaticIssuer issues deterministic SKUs and no artifact; for tests.
type StaticIssuer struct {
	next int
}

func (i *StaticIssuer) Issue(productName string) (string, string, error) {
	i.next++
	return fmt.Sprintf("PRD%08d", i.next), "", nil
}
