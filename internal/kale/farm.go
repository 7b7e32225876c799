// Package kale defines the external reward primitive the ledger calls into.
// The real asset ledger (token balances, transaction submission) lives
// outside this module; the core only needs a harvest source and a transfer
// sink, both synchronous and fallible.
package kale

import (
	"context"

	"github.com/kalegame/circleoftrust/internal/model"
)

// Farm is the harvest/transfer primitive consumed by the distribution
// engine. Harvest yields the net reward currently attributable to a circle;
// Transfer moves an amount to a wallet. Either call may fail; neither hangs.
type Farm interface {
	Harvest(ctx context.Context, circleID model.CircleID) (model.Amount, error)
	Transfer(ctx context.Context, to model.WalletID, amount model.Amount) error
}

// NullFarm is a Farm with nothing to harvest. Used when the server runs
// without a reward backend: every harvest is a no-op and transfers succeed
// trivially because none are ever requested with a positive amount.
type NullFarm struct{}

var _ Farm = NullFarm{}

func (NullFarm) Harvest(ctx context.Context, circleID model.CircleID) (model.Amount, error) {
	return 0, nil
}

func (NullFarm) Transfer(ctx context.Context, to model.WalletID, amount model.Amount) error {
	return nil
}
