package dice_test

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/KirkDiggler/polydice/internal/dice"
	"github.com/KirkDiggler/polydice/internal/dice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type RollerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSource *mocks.MockSource
	roller     *dice.DefaultRoller
	registry   *dice.Registry

	d6  dice.FaceSet
	d20 dice.FaceSet
}

func (s *RollerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = mocks.NewMockSource(s.mockCtrl)
	s.roller = dice.New(&dice.Config{
		Source: s.mockSource,
	})
	s.registry = dice.DefaultRegistry()

	var err error
	s.d6, err = s.registry.FaceSetFor(dice.D6)
	s.Require().NoError(err)
	s.d20, err = s.registry.FaceSetFor(dice.D20)
	s.Require().NoError(err)
}

func (s *RollerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestRollUniform_PicksFaceByIndex() {
	s.mockSource.EXPECT().Intn(6).Return(3)

	value, err := s.roller.RollUniform(s.d6)
	s.Require().NoError(err)
	s.Equal(4, value)
}

func (s *RollerTestSuite) TestRollUniform_KeepsDefinitionOrder() {
	faces, err := dice.NewFaceSet(5, 3, 9)
	s.Require().NoError(err)

	s.mockSource.EXPECT().Intn(3).Return(0)

	value, err := s.roller.RollUniform(faces)
	s.Require().NoError(err)
	s.Equal(5, value)
}

func (s *RollerTestSuite) TestRollUniform_EmptyFaceSet() {
	// No source expectations: nothing may be drawn
	value, err := s.roller.RollUniform(dice.FaceSet{})
	s.ErrorIs(err, dice.ErrInvalidState)
	s.Zero(value)
}

func (s *RollerTestSuite) TestRollBiased_DrawsAroundIdealStep() {
	gomock.InOrder(
		// needed 30 over 3 rolls, window [9, 11]
		s.mockSource.EXPECT().Intn(3).Return(2),
		// needed 19 over 2 rolls, window [8, 10]
		s.mockSource.EXPECT().Intn(3).Return(0),
	)

	rolls, err := s.roller.RollBiased(s.d20, 3, 10)
	s.Require().NoError(err)
	s.Equal([]int{11, 8, 11}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_WindowClampedAtEdge() {
	// needed 12 over 2 rolls, window [5, 6]
	s.mockSource.EXPECT().Intn(2).Return(1)

	rolls, err := s.roller.RollBiased(s.d6, 2, 6)
	s.Require().NoError(err)
	s.Equal([]int{6, 6}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_DegenerateWindowAboveFaces() {
	rolls, err := s.roller.RollBiased(s.d6, 3, 20)
	s.Require().NoError(err)
	s.Equal([]int{6, 6, 6}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_DegenerateWindowBelowFaces() {
	rolls, err := s.roller.RollBiased(s.d6, 3, -4)
	s.Require().NoError(err)
	s.Equal([]int{1, 1, 1}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_SingleRollIsExact() {
	rolls, err := s.roller.RollBiased(s.d20, 1, 15)
	s.Require().NoError(err)
	s.Equal([]int{15}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_SingleRollIsClamped() {
	rolls, err := s.roller.RollBiased(s.d20, 1, 42)
	s.Require().NoError(err)
	s.Equal([]int{20}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_SnapsToFaces() {
	faces, err := dice.NewFaceSet(2, 4, 6, 8)
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockSource.EXPECT().Intn(3).Return(1), // 5 snaps down to 4
		s.mockSource.EXPECT().Intn(3).Return(2), // 6
		s.mockSource.EXPECT().Intn(3).Return(0), // 4
	)

	rolls, err := s.roller.RollBiased(faces, 4, 5)
	s.Require().NoError(err)
	s.Equal([]int{4, 6, 4, 6}, rolls)
}

func (s *RollerTestSuite) TestRollBiased_ZeroCount() {
	rolls, err := s.roller.RollBiased(s.d20, 0, 10)
	s.Require().NoError(err)
	s.NotNil(rolls)
	s.Empty(rolls)
}

func (s *RollerTestSuite) TestRollBiased_NegativeCount() {
	rolls, err := s.roller.RollBiased(s.d20, -1, 10)
	s.ErrorIs(err, dice.ErrInvalidCount)
	s.Nil(rolls)
}

func (s *RollerTestSuite) TestRollBiased_EmptyFaceSet() {
	rolls, err := s.roller.RollBiased(dice.FaceSet{}, 5, 3)
	s.ErrorIs(err, dice.ErrInvalidState)
	s.Nil(rolls)

	// Empty faces are reported before the count is checked
	_, err = s.roller.RollBiased(dice.FaceSet{}, -1, 3)
	s.ErrorIs(err, dice.ErrInvalidState)
}

type SeededRollerTestSuite struct {
	suite.Suite
	roller   *dice.DefaultRoller
	registry *dice.Registry
}

func (s *SeededRollerTestSuite) SetupTest() {
	s.roller = dice.New(&dice.Config{Seed: 42})
	s.registry = dice.DefaultRegistry()
}

func TestSeededRollerTestSuite(t *testing.T) {
	suite.Run(t, new(SeededRollerTestSuite))
}

func (s *SeededRollerTestSuite) faces(variant dice.Variant) dice.FaceSet {
	faces, err := s.registry.FaceSetFor(variant)
	s.Require().NoError(err)
	return faces
}

func (s *SeededRollerTestSuite) TestRollBiased_RangeAndLength() {
	for _, variant := range s.registry.Variants() {
		faces := s.faces(variant)
		targets := []int{-5, 0, 1, faces.Min(), (faces.Min() + faces.Max()) / 2, faces.Max(), faces.Max() + 10, 100}

		for _, n := range []int{1, 2, 5, 50} {
			for _, target := range targets {
				rolls, err := s.roller.RollBiased(faces, n, target)
				s.Require().NoError(err)
				s.Len(rolls, n, "variant %s n %d target %d", variant, n, target)

				for _, roll := range rolls {
					s.True(faces.Contains(roll), "variant %s rolled %d", variant, roll)
				}
			}
		}
	}
}

func (s *SeededRollerTestSuite) TestRollBiased_ReachesReachableTarget() {
	rolls, err := s.roller.RollBiased(s.faces(dice.D12), 20, 7)
	s.Require().NoError(err)
	s.Equal(140, dice.Summarize(rolls).Sum)
}

func (s *SeededRollerTestSuite) TestRollBiased_IsNotDeterministic() {
	faces := s.faces(dice.D20)

	first, err := s.roller.RollBiased(faces, 50, 10)
	s.Require().NoError(err)

	differs := false
	for i := 0; i < 10 && !differs; i++ {
		next, err := s.roller.RollBiased(faces, 50, 10)
		s.Require().NoError(err)
		differs = !slices.Equal(first, next)
	}
	s.True(differs, "repeated biased rolls should not repeat the same sequence")
}

func (s *SeededRollerTestSuite) TestRollBiased_ConvergesBetterThanUniform() {
	faces := s.faces(dice.D20)
	const n = 1000
	const target = 10

	biased, err := s.roller.RollBiased(faces, n, target)
	s.Require().NoError(err)

	uniform := make([]int, n)
	for i := range uniform {
		uniform[i], err = s.roller.RollUniform(faces)
		s.Require().NoError(err)
	}

	biasedMean := dice.Summarize(biased).Mean
	uniformMean := dice.Summarize(uniform).Mean

	s.InDelta(target, biasedMean, 1.0)
	s.Less(math.Abs(biasedMean-target), math.Abs(uniformMean-target))
}

func (s *SeededRollerTestSuite) TestRollUniform_Coverage() {
	faces := s.faces(dice.D6)
	const draws = 10000

	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		value, err := s.roller.RollUniform(faces)
		s.Require().NoError(err)
		counts[value]++
	}

	s.Len(counts, 6)

	var obs, exp []float64
	expected := float64(draws) / 6
	for _, face := range faces.Values() {
		s.InDelta(1.0/6, float64(counts[face])/draws, 0.02, "face %d", face)
		obs = append(obs, float64(counts[face]))
		exp = append(exp, expected)
	}

	c := stat.ChiSquare(obs, exp)
	p := 1 - distuv.ChiSquared{K: float64(len(obs) - 1), Src: nil}.CDF(c)
	s.T().Logf("chi2=%v, df=%v, p=%v", c, len(obs)-1, p)
	s.Greater(p, 0.001)
}

func (s *SeededRollerTestSuite) TestD10NoOne() {
	faces := s.faces(dice.D10NoOne)

	for i := 0; i < 1000; i++ {
		value, err := s.roller.RollUniform(faces)
		s.Require().NoError(err)
		s.NotEqual(1, value)
		s.GreaterOrEqual(value, 2)
		s.LessOrEqual(value, 10)
	}

	rolls, err := s.roller.RollBiased(faces, 5, 2)
	s.Require().NoError(err)
	s.Len(rolls, 5)
	for _, roll := range rolls {
		s.GreaterOrEqual(roll, 2)
		s.LessOrEqual(roll, 10)
	}
}

func (s *SeededRollerTestSuite) TestConcurrentUse() {
	faces := s.faces(dice.D8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := s.roller.RollUniform(faces); err != nil {
					s.Fail(err.Error())
				}
				if _, err := s.roller.RollBiased(faces, 10, 4); err != nil {
					s.Fail(err.Error())
				}
			}
		}()
	}
	wg.Wait()
}
