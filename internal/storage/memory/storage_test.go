package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kalegame/circleoftrust/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Circle tests

func (s *StorageSuite) TestSaveAndGetCircle() {
	hash, _ := model.HashPassword("pw")
	circle := &model.Circle{
		ID:           1,
		Name:         "farmers",
		Creator:      "wallet-a",
		PasswordHash: hash,
	}

	err := s.storage.SaveCircle(s.ctx, circle)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCircle(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(circle.Name, retrieved.Name)
	s.Equal(circle.Creator, retrieved.Creator)
	s.Equal(circle.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCircleNotFound() {
	_, err := s.storage.GetCircle(s.ctx, 99)
	s.ErrorIs(err, model.ErrCircleDoesNotExist)
}

func (s *StorageSuite) TestGetCircleReturnsCopy() {
	circle := &model.Circle{ID: 1, Name: "farmers", Creator: "wallet-a"}
	s.Require().NoError(s.storage.SaveCircle(s.ctx, circle))

	first, err := s.storage.GetCircle(s.ctx, 1)
	s.Require().NoError(err)
	first.Name = "mutated"

	second, err := s.storage.GetCircle(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("farmers", second.Name)
}

func (s *StorageSuite) TestAllocateCircleIDStartsAtOne() {
	id, err := s.storage.AllocateCircleID(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.CircleID(1), id)

	id, err = s.storage.AllocateCircleID(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.CircleID(2), id)
}

func (s *StorageSuite) TestCircleIDListPreservesOrder() {
	s.Require().NoError(s.storage.AppendCircleID(s.ctx, 3))
	s.Require().NoError(s.storage.AppendCircleID(s.ctx, 1))
	s.Require().NoError(s.storage.AppendCircleID(s.ctx, 2))

	ids, err := s.storage.GetAllCircleIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.CircleID{3, 1, 2}, ids)
}

// Creator index tests

func (s *StorageSuite) TestCreatedCircleIndex() {
	has, err := s.storage.HasCreatedCircle(s.ctx, "wallet-a")
	s.Require().NoError(err)
	s.False(has)

	s.Require().NoError(s.storage.SaveCreatedCircle(s.ctx, "wallet-a", 7))

	has, err = s.storage.HasCreatedCircle(s.ctx, "wallet-a")
	s.Require().NoError(err)
	s.True(has)

	id, err := s.storage.GetCreatedCircle(s.ctx, "wallet-a")
	s.Require().NoError(err)
	s.Equal(model.CircleID(7), id)
}

func (s *StorageSuite) TestGetCreatedCircleNotFound() {
	_, err := s.storage.GetCreatedCircle(s.ctx, "wallet-x")
	s.ErrorIs(err, model.ErrCircleDoesNotExist)
}

// Membership tests

func (s *StorageSuite) TestCircleMembers() {
	members := []model.WalletID{"wallet-b", "wallet-c"}
	s.Require().NoError(s.storage.SaveCircleMembers(s.ctx, 1, members))

	retrieved, err := s.storage.GetCircleMembers(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(members, retrieved)
}

func (s *StorageSuite) TestWalletCircleIndex() {
	_, active, err := s.storage.GetWalletCircle(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.False(active)

	s.Require().NoError(s.storage.SaveWalletCircle(s.ctx, "wallet-b", 4))

	id, active, err := s.storage.GetWalletCircle(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.True(active)
	s.Equal(model.CircleID(4), id)
}

// Player ledger tests

func (s *StorageSuite) TestSaveAndGetPlayerStats() {
	stats := model.NewPlayerStats("wallet-a")
	stats.CirclesCreated = 1

	s.Require().NoError(s.storage.SavePlayerStats(s.ctx, stats))

	retrieved, err := s.storage.GetPlayerStats(s.ctx, "wallet-a")
	s.Require().NoError(err)
	s.Equal(uint32(1), retrieved.CirclesCreated)
}

func (s *StorageSuite) TestGetPlayerStatsNotFound() {
	_, err := s.storage.GetPlayerStats(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveAndGetPlayerEarnings() {
	earnings := model.NewPlayerEarnings("wallet-a")
	earnings.TotalKaleEarned = 100
	earnings.FromBetrayals = 40

	s.Require().NoError(s.storage.SavePlayerEarnings(s.ctx, earnings))

	retrieved, err := s.storage.GetPlayerEarnings(s.ctx, "wallet-a")
	s.Require().NoError(err)
	s.Equal(model.Amount(100), retrieved.TotalKaleEarned)
	s.Equal(model.Amount(40), retrieved.FromBetrayals)
}

func (s *StorageSuite) TestGetPlayerEarningsNotFound() {
	_, err := s.storage.GetPlayerEarnings(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestAllPlayersPreservesInsertionOrder() {
	s.Require().NoError(s.storage.AppendPlayer(s.ctx, "wallet-c"))
	s.Require().NoError(s.storage.AppendPlayer(s.ctx, "wallet-a"))
	s.Require().NoError(s.storage.AppendPlayer(s.ctx, "wallet-b"))

	players, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.WalletID{"wallet-c", "wallet-a", "wallet-b"}, players)
}

// Circle earnings and global total tests

func (s *StorageSuite) TestSaveAndGetCircleEarnings() {
	earnings := model.NewCircleEarnings(5)
	earnings.TotalEarned = 300
	earnings.TotalHarvests = 3

	s.Require().NoError(s.storage.SaveCircleEarnings(s.ctx, earnings))

	retrieved, err := s.storage.GetCircleEarnings(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(model.Amount(300), retrieved.TotalEarned)
	s.Equal(uint32(3), retrieved.TotalHarvests)
}

func (s *StorageSuite) TestGetCircleEarningsNotFound() {
	_, err := s.storage.GetCircleEarnings(s.ctx, 99)
	s.ErrorIs(err, model.ErrCircleDoesNotExist)
}

func (s *StorageSuite) TestTotalKaleEarned() {
	total, err := s.storage.GetTotalKaleEarned(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Amount(0), total)

	s.Require().NoError(s.storage.SetTotalKaleEarned(s.ctx, 500))

	total, err = s.storage.GetTotalKaleEarned(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Amount(500), total)
}
