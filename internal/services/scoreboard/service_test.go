package scoreboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/storage/memory"
	"github.com/kalegame/circleoftrust/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) savePlayer(stats *model.PlayerStats) {
	s.Require().NoError(s.storage.SavePlayerStats(s.ctx, stats))
	s.Require().NoError(s.storage.AppendPlayer(s.ctx, stats.Wallet))
}

func (s *ServiceSuite) TestScoreboardEmpty() {
	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestTrustScore() {
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-a",
		CirclesCreated:  1,
		CirclesJoined:   3,
		CirclesBetrayed: 1,
		TimesBetrayed:   1,
	})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	// 1 + 3 - 2*1 - 1 = 1
	s.Equal(int64(1), entries[0].TrustScore)
}

func (s *ServiceSuite) TestTrustScoreCanGoNegative() {
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-a",
		CirclesJoined:   1,
		CirclesBetrayed: 1,
		TimesBetrayed:   2,
	})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	// 0 + 1 - 2 - 2 = -3
	s.Equal(int64(-3), entries[0].TrustScore)
}

func (s *ServiceSuite) TestBetrayalRatio() {
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-a",
		CirclesJoined:   4,
		CirclesBetrayed: 1,
	})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint32(25), entries[0].BetrayalRatio)
}

func (s *ServiceSuite) TestBetrayalRatioWithNoJoins() {
	s.savePlayer(&model.PlayerStats{Wallet: "wallet-a", CirclesCreated: 1})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint32(0), entries[0].BetrayalRatio)
}

func (s *ServiceSuite) TestKalePerCircle() {
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-a",
		CirclesCreated:  1,
		CirclesJoined:   1,
		TotalKaleEarned: 100,
	})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Amount(50), entries[0].KalePerCircle)
}

func (s *ServiceSuite) TestKalePerCircleWithNoCircles() {
	s.savePlayer(&model.PlayerStats{Wallet: "wallet-a", TotalKaleEarned: 100})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Amount(100), entries[0].KalePerCircle)
}

func (s *ServiceSuite) TestScoreboardOrderIsFirstParticipation() {
	s.savePlayer(&model.PlayerStats{Wallet: "wallet-c"})
	s.savePlayer(&model.PlayerStats{Wallet: "wallet-a"})
	s.savePlayer(&model.PlayerStats{Wallet: "wallet-b"})

	entries, err := s.service.GetScoreboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(model.WalletID("wallet-c"), entries[0].Wallet)
	s.Equal(model.WalletID("wallet-a"), entries[1].Wallet)
	s.Equal(model.WalletID("wallet-b"), entries[2].Wallet)
}

func (s *ServiceSuite) TestTotalStats() {
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-a",
		CirclesCreated:  1,
		CirclesJoined:   2,
		TotalKaleEarned: 100,
	})
	s.savePlayer(&model.PlayerStats{
		Wallet:          "wallet-b",
		CirclesBetrayed: 1,
		CirclesJoined:   1,
		TotalKaleEarned: 50,
	})

	totals, err := s.service.GetTotalStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint32(2), totals.TotalPlayers)
	s.Equal(uint32(1), totals.TotalCirclesCreated)
	s.Equal(uint32(3), totals.TotalCirclesJoined)
	s.Equal(uint32(1), totals.TotalBetrayals)
	s.Equal(model.Amount(150), totals.TotalKaleEarned)
}

func (s *ServiceSuite) TestTopEarningCircles() {
	for _, e := range []*model.CircleEarnings{
		{CircleID: 1, TotalEarned: 50},
		{CircleID: 2, TotalEarned: 200},
		{CircleID: 3, TotalEarned: 100},
	} {
		s.Require().NoError(s.storage.SaveCircleEarnings(s.ctx, e))
		s.Require().NoError(s.storage.AppendCircleID(s.ctx, e.CircleID))
	}

	top, err := s.service.GetTopEarningCircles(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(model.CircleID(2), top[0].CircleID)
	s.Equal(model.CircleID(3), top[1].CircleID)
}

func (s *ServiceSuite) TestTopEarningCirclesTieBreaksByID() {
	for _, e := range []*model.CircleEarnings{
		{CircleID: 2, TotalEarned: 100},
		{CircleID: 1, TotalEarned: 100},
	} {
		s.Require().NoError(s.storage.SaveCircleEarnings(s.ctx, e))
		s.Require().NoError(s.storage.AppendCircleID(s.ctx, e.CircleID))
	}

	top, err := s.service.GetTopEarningCircles(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(model.CircleID(1), top[0].CircleID)
	s.Equal(model.CircleID(2), top[1].CircleID)
}
