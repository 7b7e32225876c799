package membership

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kalegame/circleoftrust/internal/model"
	"github.com/kalegame/circleoftrust/internal/services/ledger"
	"github.com/kalegame/circleoftrust/internal/services/registry"
	"github.com/kalegame/circleoftrust/internal/storage/memory"
	"github.com/kalegame/circleoftrust/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	ledger   *ledger.Service
	registry *registry.Service
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	s.ledger = ledger.New(s.storage, logger)
	s.registry = registry.New(s.storage, s.ledger, logger)
	s.service = New(s.storage, s.ledger, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createCircle(creator model.WalletID, password string) model.CircleID {
	hash, err := model.HashPassword(password)
	s.Require().NoError(err)
	id, err := s.registry.CreateCircle(s.ctx, creator, "circle-of-"+string(creator), hash)
	s.Require().NoError(err)
	return id
}

// JoinCircle tests

func (s *ServiceSuite) TestJoinCircleSucceeds() {
	id := s.createCircle("wallet-a", "pw")

	err := s.service.JoinCircle(s.ctx, "wallet-b", id, "pw")
	s.Require().NoError(err)

	members, err := s.service.GetCircleMembers(s.ctx, id)
	s.Require().NoError(err)
	s.Equal([]model.WalletID{"wallet-b"}, members)

	circle, err := s.registry.GetCircle(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(uint32(1), circle.MemberCount)
}

func (s *ServiceSuite) TestJoinCircleWrongPassword() {
	id := s.createCircle("wallet-a", "pw")

	err := s.service.JoinCircle(s.ctx, "wallet-b", id, "wrong")
	s.ErrorIs(err, model.ErrWrongPassword)

	members, err := s.service.GetCircleMembers(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *ServiceSuite) TestJoinCircleUnknownCircle() {
	err := s.service.JoinCircle(s.ctx, "wallet-b", 99, "pw")
	s.ErrorIs(err, model.ErrCircleDoesNotExist)
}

func (s *ServiceSuite) TestJoinOwnCircleRejected() {
	id := s.createCircle("wallet-a", "pw")

	err := s.service.JoinCircle(s.ctx, "wallet-a", id, "pw")
	s.ErrorIs(err, model.ErrCannotJoinOwnCircle)
}

func (s *ServiceSuite) TestJoinWhileInAnotherCircleRejected() {
	first := s.createCircle("wallet-a", "pw")
	second := s.createCircle("wallet-b", "pw")

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-c", first, "pw"))

	err := s.service.JoinCircle(s.ctx, "wallet-c", second, "pw")
	s.ErrorIs(err, model.ErrAlreadyInCircle)
}

func (s *ServiceSuite) TestJoinSameCircleTwiceRejected() {
	id := s.createCircle("wallet-a", "pw")

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-b", id, "pw"))

	err := s.service.JoinCircle(s.ctx, "wallet-b", id, "pw")
	s.ErrorIs(err, model.ErrAlreadyInCircle)
}

func (s *ServiceSuite) TestJoinBetrayedCircleRejected() {
	id := s.createCircle("wallet-a", "pw")

	circle, err := s.storage.GetCircle(s.ctx, id)
	s.Require().NoError(err)
	betrayer := model.WalletID("wallet-x")
	circle.Betrayed = true
	circle.Betrayer = &betrayer
	s.Require().NoError(s.storage.SaveCircle(s.ctx, circle))

	err = s.service.JoinCircle(s.ctx, "wallet-b", id, "pw")
	s.ErrorIs(err, model.ErrCircleBetrayed)
}

func (s *ServiceSuite) TestJoinRejectsOversizedPassword() {
	id := s.createCircle("wallet-a", "pw")

	err := s.service.JoinCircle(s.ctx, "wallet-b", id, strings.Repeat("x", model.MaxPasswordLen+1))
	s.ErrorIs(err, model.ErrLongPassword)
}

func (s *ServiceSuite) TestJoinRecordsStats() {
	id := s.createCircle("wallet-a", "pw")

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-b", id, "pw"))

	stats, err := s.ledger.GetPlayerStats(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.Equal(uint32(1), stats.CirclesJoined)
}

func (s *ServiceSuite) TestJoinPreservesMemberOrder() {
	id := s.createCircle("wallet-a", "pw")

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-b", id, "pw"))
	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-c", id, "pw"))
	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-d", id, "pw"))

	members, err := s.service.GetCircleMembers(s.ctx, id)
	s.Require().NoError(err)
	s.Equal([]model.WalletID{"wallet-b", "wallet-c", "wallet-d"}, members)
}

// Query tests

func (s *ServiceSuite) TestGetCircleMembersUnknownCircle() {
	_, err := s.service.GetCircleMembers(s.ctx, 99)
	s.ErrorIs(err, model.ErrCircleDoesNotExist)
}

func (s *ServiceSuite) TestGetWalletCircles() {
	id := s.createCircle("wallet-a", "pw")

	circles, err := s.service.GetWalletCircles(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.Empty(circles)

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-b", id, "pw"))

	circles, err = s.service.GetWalletCircles(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.Equal([]model.CircleID{id}, circles)
}

func (s *ServiceSuite) TestIsInCircle() {
	id := s.createCircle("wallet-a", "pw")

	in, err := s.service.IsInCircle(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.False(in)

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-b", id, "pw"))

	in, err = s.service.IsInCircle(s.ctx, "wallet-b")
	s.Require().NoError(err)
	s.True(in)
}

func (s *ServiceSuite) TestIsInSpecificCircle() {
	first := s.createCircle("wallet-a", "pw")
	second := s.createCircle("wallet-b", "pw")

	s.Require().NoError(s.service.JoinCircle(s.ctx, "wallet-c", first, "pw"))

	in, err := s.service.IsInSpecificCircle(s.ctx, "wallet-c", first)
	s.Require().NoError(err)
	s.True(in)

	in, err = s.service.IsInSpecificCircle(s.ctx, "wallet-c", second)
	s.Require().NoError(err)
	s.False(in)
}
