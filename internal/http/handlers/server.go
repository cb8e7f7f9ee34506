package handlers

import (
	"github.com/ricardomoraes/minimart-inventory/internal/repo"
	"github.com/ricardomoraes/minimart-inventory/internal/sku"
)

// RefreshTokenStore continues sessions across access-token expiry.
// Satisfied by auth.RefreshStore; tests plug in an in-memory fake.
type RefreshTokenStore interface {
	Issue(username string) (string, error)
	Lookup(token string) (string, error)
	Revoke(token string) error
}

var (
	productRepo  repo.ProductRepository
	ledgerRepo   repo.LedgerRepository
	reportRepo   repo.ReportRepository
	userRepo     repo.UserRepository
	skuIssuer    sku.Issuer
	refreshStore RefreshTokenStore
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetLedgerRepo(r repo.LedgerRepository) {
	ledgerRepo = r
}

func SetReportRepo(r repo.ReportRepository) {
	reportRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSKUIssuer(i sku.Issuer) {
	skuIssuer = i
}

func SetRefreshStore(s RefreshTokenStore) {
	refreshStore = s
}
