package kale

import (
	"context"
	"sync"

	"github.com/kalegame/circleoftrust/internal/model"
)

// TransferRecord captures one Transfer call made against a MockFarm.
type TransferRecord struct {
	To     model.WalletID
	Amount model.Amount
}

// MockFarm is a controllable Farm for tests. Yields are configured per
// circle; harvests and transfers can be made to fail selectively.
type MockFarm struct {
	mu sync.Mutex

	yields       map[model.CircleID]model.Amount
	harvestErrs  map[model.CircleID]error
	transferErrs map[model.WalletID]error

	// Transfers records every successful Transfer call in order.
	Transfers []TransferRecord
}

var _ Farm = (*MockFarm)(nil)

// NewMockFarm creates a MockFarm with no yields configured.
func NewMockFarm() *MockFarm {
	return &MockFarm{
		yields:       make(map[model.CircleID]model.Amount),
		harvestErrs:  make(map[model.CircleID]error),
		transferErrs: make(map[model.WalletID]error),
	}
}

// SetYield configures the amount the next harvests of a circle will return.
func (f *MockFarm) SetYield(id model.CircleID, amount model.Amount) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.yields[id] = amount
}

// FailHarvest makes harvests of a circle return the given error.
func (f *MockFarm) FailHarvest(id model.CircleID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.harvestErrs[id] = err
}

// FailTransfer makes transfers to a wallet return the given error.
func (f *MockFarm) FailTransfer(to model.WalletID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transferErrs[to] = err
}

func (f *MockFarm) Harvest(ctx context.Context, circleID model.CircleID) (model.Amount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.harvestErrs[circleID]; err != nil {
		return 0, err
	}
	return f.yields[circleID], nil
}

func (f *MockFarm) Transfer(ctx context.Context, to model.WalletID, amount model.Amount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.transferErrs[to]; err != nil {
		return err
	}
	f.Transfers = append(f.Transfers, TransferRecord{To: to, Amount: amount})
	return nil
}

// TransferredTo sums all successful transfers made to a wallet.
func (f *MockFarm) TransferredTo(to model.WalletID) model.Amount {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total model.Amount
	for _, t := range f.Transfers {
		if t.To == to {
			total += t.Amount
		}
	}
	return total
}
