package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kalegame/circleoftrust/internal/api/apierr"
	"github.com/kalegame/circleoftrust/internal/model"
)

type contextKey string

const walletContextKey contextKey = "wallet"

// WalletHeader identifies the calling wallet.
// Signature verification is out of scope; the gateway in front of this
// service is expected to have authenticated the wallet already.
const WalletHeader = "X-Wallet"

// Wallet creates middleware that requires a wallet identity on the request
func Wallet() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wallet := extractWallet(r)
			if wallet == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), walletContextKey, model.WalletID(wallet))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractWallet extracts the wallet address from the request
func extractWallet(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(WalletHeader))
}

// GetWallet returns the calling wallet from the request context
func GetWallet(ctx context.Context) model.WalletID {
	wallet, _ := ctx.Value(walletContextKey).(model.WalletID)
	return wallet
}

// MustGetWallet returns the calling wallet or panics
func MustGetWallet(ctx context.Context) model.WalletID {
	wallet := GetWallet(ctx)
	if wallet == "" {
		panic("no wallet in context - wallet middleware not applied?")
	}
	return wallet
}
