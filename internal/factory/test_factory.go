package factory

import (
	"github.com/kalegame/circleoftrust/internal/kale"
	"github.com/kalegame/circleoftrust/internal/storage/memory"
	"github.com/kalegame/circleoftrust/internal/testutil"
)

// NewTestApp creates an App backed by in-memory storage and a MockFarm,
// suitable for service and API tests.
func NewTestApp() (*App, *kale.MockFarm) {
	farm := kale.NewMockFarm()
	app := newWithDependencies(memory.New(), farm, testutil.NopLogger())
	return app, farm
}
