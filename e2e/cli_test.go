package e2e_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalegame/circleoftrust/internal/api"
	"github.com/kalegame/circleoftrust/internal/factory"
	"github.com/kalegame/circleoftrust/internal/kale"
	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(t.TempDir(), "circlectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/circlectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found")
		dir = parent
	}
}

// run executes the CLI as a given wallet with JSON output
func (r *cliRunner) run(wallet string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--wallet", wallet,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func newTestEnvironment(t *testing.T) (*cliRunner, *kale.MockFarm) {
	t.Helper()

	app, farm := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		RegistryService:   app.RegistryService,
		MembershipService: app.MembershipService,
		BetrayalService:   app.BetrayalService,
		HarvestService:    app.HarvestService,
		LedgerService:     app.LedgerService,
		ScoreboardService: app.ScoreboardService,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return newCLIRunner(t, server.URL), farm
}

func TestCLIHealthCheck(t *testing.T) {
	runner, _ := newTestEnvironment(t)

	output, err := runner.run("", "health")
	require.NoError(t, err, output)

	var result struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestCLICircleLifecycle(t *testing.T) {
	runner, farm := newTestEnvironment(t)

	// Create a circle as wallet-a
	output, err := runner.run("wallet-a", "circle", "create", "farmers", "--password", "pw")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Created circle #1")

	// Join as wallet-b
	output, err = runner.run("wallet-b", "circle", "join", "1", "--password", "pw")
	require.NoError(t, err, output)

	// Wrong password is rejected
	output, err = runner.run("wallet-c", "circle", "join", "1", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, output, "WRONG_PASSWORD")

	// Harvest and distribute
	farm.SetYield(model.CircleID(1), 100)
	output, err = runner.run("wallet-a", "harvest")
	require.NoError(t, err, output)

	var harvest struct {
		Result struct {
			TotalDistributed  int64  `json:"total_distributed"`
			SuccessfulCircles uint32 `json:"successful_circles"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &harvest))
	assert.Equal(t, int64(100), harvest.Result.TotalDistributed)
	assert.Equal(t, uint32(1), harvest.Result.SuccessfulCircles)

	// Both wallets got an even split
	output, err = runner.run("wallet-b", "player", "earnings")
	require.NoError(t, err, output)

	var earnings struct {
		Earnings struct {
			TotalKaleEarned   int64 `json:"total_kale_earned"`
			FromJoinedCircles int64 `json:"kale_earned_from_join_circles"`
		} `json:"earnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &earnings))
	assert.Equal(t, int64(50), earnings.Earnings.TotalKaleEarned)
	assert.Equal(t, int64(50), earnings.Earnings.FromJoinedCircles)
}

func TestCLIBetrayal(t *testing.T) {
	runner, farm := newTestEnvironment(t)

	output, err := runner.run("wallet-a", "circle", "create", "doomed", "--password", "pw")
	require.NoError(t, err, output)

	output, err = runner.run("wallet-b", "circle", "join", "1", "--password", "pw")
	require.NoError(t, err, output)

	output, err = runner.run("wallet-b", "circle", "betray", "1", "--password", "pw")
	require.NoError(t, err, output)

	// Post-betrayal harvests route everything to the betrayer
	farm.SetYield(model.CircleID(1), 90)
	output, err = runner.run("wallet-a", "harvest")
	require.NoError(t, err, output)

	output, err = runner.run("wallet-b", "player", "earnings")
	require.NoError(t, err, output)

	var earnings struct {
		Earnings struct {
			FromBetrayals int64 `json:"kale_earned_from_betrayals"`
		} `json:"earnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &earnings))
	assert.Equal(t, int64(90), earnings.Earnings.FromBetrayals)

	// The scoreboard reflects the betrayal
	output, err = runner.run("", "scoreboard")
	require.NoError(t, err, output)

	var entries []struct {
		Wallet     string `json:"wallet"`
		TrustScore int64  `json:"trust_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "wallet-a", entries[0].Wallet)
	assert.Equal(t, "wallet-b", entries[1].Wallet)
	// joined 1, betrayed 1: 1 - 2 = -1
	assert.Equal(t, int64(-1), entries[1].TrustScore)
}
