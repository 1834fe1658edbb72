package lifetime_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ctordtor/pkg/lifetime"
	"ctordtor/pkg/traced"
)

type LifetimeSuite struct {
	suite.Suite
	rec *traced.Recorder
	tr  *traced.Tracer
}

func (s *LifetimeSuite) SetupTest() {
	s.rec = traced.NewRecorder()
	s.tr = traced.NewTracer(&bytes.Buffer{}, traced.WithSink(s.rec))
}

// destroyed returns the values of destroy events, in order.
func (s *LifetimeSuite) destroyed() []int {
	var out []int
	for _, e := range s.rec.Snapshot() {
		if e.Kind == traced.EventDestroy {
			out = append(out, e.Value)
		}
	}
	return out
}

func (s *LifetimeSuite) TestBlockDestroysAtEnd() {
	require := require.New(s.T())
	var v *traced.Value
	lifetime.Block(func(sc *lifetime.Scope) {
		v = s.tr.Convert(1)
		sc.Auto(v)
		require.True(v.Alive(), "still alive inside the block")
	})
	require.False(v.Alive())
	require.Equal([]int{1}, s.destroyed())
}

func (s *LifetimeSuite) TestBlockReverseOrder() {
	lifetime.Block(func(sc *lifetime.Scope) {
		sc.Auto(s.tr.Convert(1))
		lifetime.AutoArray(sc, s.tr.Array(3, 2, 3))
		sc.Auto(s.tr.Convert(4))
	})
	s.Require().Equal([]int{4, 0, 3, 2, 1}, s.destroyed())
}

func (s *LifetimeSuite) TestBlockCleansUpOnPanic() {
	require := require.New(s.T())
	require.Panics(func() {
		lifetime.Block(func(sc *lifetime.Scope) {
			sc.Auto(s.tr.Convert(7))
			panic("early exit")
		})
	})
	require.Equal([]int{7}, s.destroyed())
}

func (s *LifetimeSuite) TestDeleteClearsReference() {
	require := require.New(s.T())
	p := s.tr.Convert(111)
	v := p

	lifetime.Delete(&p)
	require.Nil(p)
	require.False(v.Alive())

	// deleting the cleared reference again does nothing
	lifetime.Delete(&p)
	require.Equal([]int{111}, s.destroyed())
}

func (s *LifetimeSuite) TestDeleteArrayDestroysEveryElement() {
	require := require.New(s.T())
	pa := s.tr.Array(3, 222, 333, 444)
	elems := append([]*traced.Value(nil), pa...)

	lifetime.DeleteArray(&pa)
	require.Nil(pa)
	for _, e := range elems {
		require.False(e.Alive())
	}
	require.ElementsMatch([]int{222, 333, 444}, s.destroyed())
}

func TestLifetimeSuite(t *testing.T) {
	suite.Run(t, new(LifetimeSuite))
}
