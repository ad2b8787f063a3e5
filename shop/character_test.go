package shop_test

import (
	"testing"
	"time"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/mock"
	"github.com/centraunit/shopkit/shop"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type CharacterTestSuite struct {
	suite.Suite
	input *mock.Input
	clock *mock.Clock
	reg   *shopkit.Registry
	char  *shop.Character
}

func (s *CharacterTestSuite) SetupTest() {
	s.input = &mock.Input{}
	s.clock = &mock.Clock{Step: 100 * time.Millisecond}
	s.reg = mock.Registry(s.input, nil, s.clock)

	logger, _ := test.NewNullLogger()
	s.char = shop.NewCharacter("worker", 2, 4, logger)
	s.Require().NoError(shopkit.Inject(s.reg, s.char).RequiredErr())
	s.char.Start()
}

func (s *CharacterTestSuite) TestStartsIdleAndHandsFree() {
	s.Equal(shop.StateIdle, s.char.Locomotion().Current())
	s.Equal(shop.StateHandsFree, s.char.Carrying().Current())
	s.Equal(shop.AnimIdle, s.char.Animation())
	s.Zero(s.char.Velocity())
}

func (s *CharacterTestSuite) TestWalksWhenInputLeavesDeadZone() {
	s.input.Magnitude = 0.05
	s.char.Tick()
	s.Equal(shop.StateIdle, s.char.Locomotion().Current(), "input inside the dead zone")

	s.input.Magnitude = 0.5
	s.char.Tick()
	s.Equal(shop.StateMoving, s.char.Locomotion().Current())
	s.Equal(shop.AnimRun, s.char.Animation())

	s.char.FixedTick()
	s.char.FixedTick()
	s.InDelta(2.0, s.char.Velocity(), 1e-9)
	s.InDelta(0.4, s.char.Position(), 1e-9)

	s.input.Magnitude = 0
	s.char.Tick()
	s.Equal(shop.StateIdle, s.char.Locomotion().Current())
	s.Zero(s.char.Velocity())

	s.char.FixedTick()
	s.InDelta(0.4, s.char.Position(), 1e-9, "idle characters do not move")
}

func (s *CharacterTestSuite) TestCarryingIsIndependentOfLocomotion() {
	s.input.Magnitude = 1
	s.True(s.char.PickUp("bread"))
	s.char.Tick()

	s.Equal(shop.StateMoving, s.char.Locomotion().Current())
	s.Equal(shop.StateCarrying, s.char.Carrying().Current())
	s.True(s.char.CarryPose())

	s.input.Magnitude = 0
	s.char.Tick()
	s.Equal(shop.StateIdle, s.char.Locomotion().Current())
	s.Equal(shop.StateCarrying, s.char.Carrying().Current())

	_, ok := s.char.Drop()
	s.True(ok)
	s.char.Tick()
	s.Equal(shop.StateHandsFree, s.char.Carrying().Current())
	s.False(s.char.CarryPose())
}

func (s *CharacterTestSuite) TestCapacity() {
	s.True(s.char.PickUp("bread"))
	s.True(s.char.PickUp("milk"))
	s.False(s.char.PickUp("eggs"))
	s.Equal(2, s.char.HeldCount())

	item, ok := s.char.Drop()
	s.True(ok)
	s.Equal("milk", item)
}

func (s *CharacterTestSuite) TestStockShelfWithoutStockService() {
	s.True(s.char.PickUp("bread"))
	s.Zero(s.char.StockShelf())
	s.Equal(1, s.char.HeldCount())
}

func (s *CharacterTestSuite) TestStockShelf() {
	stock := shop.NewShelfStock()
	s.Require().NoError(shopkit.Register[shop.Stock](s.reg, stock))
	s.Require().NoError(shopkit.Inject(s.reg, s.char).Err())

	s.char.PickUp("bread")
	s.char.PickUp("bread")
	s.Equal(2, s.char.StockShelf())
	s.Equal(2, stock.Count("bread"))
	s.Zero(s.char.HeldCount())
}

func (s *CharacterTestSuite) TestCloseExitsBothMachines() {
	s.input.Magnitude = 1
	s.char.PickUp("bread")
	s.char.Tick()
	s.Require().True(s.char.CarryPose())

	s.char.Close()
	s.False(s.char.CarryPose(), "carrying exit clears the pose")
	s.Zero(s.char.Velocity(), "moving exit stops the character")
	s.False(s.char.Locomotion().ChangeState(shop.StateIdle))
	s.False(s.char.Carrying().ChangeState(shop.StateHandsFree))
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}
