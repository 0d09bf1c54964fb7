package idgenerator

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type IDGeneratorTestSuite struct {
	suite.Suite
	ig *IDGenerator
}

func (s *IDGeneratorTestSuite) SetupTest() {
	s.ig = NewIDGenerator().(*IDGenerator)
}

func (s *IDGeneratorTestSuite) TestLength() {
	for _, l := range []int{3, 16, 42, 1000} {
		id, err := s.ig.GenerateID(l)
		s.NoError(err)
		s.Len(id, l)
	}
}

func (s *IDGeneratorTestSuite) TestCharset() {
	id, err := s.ig.GenerateID(256)
	s.NoError(err)
	s.NotContains(id, "+")
	s.NotContains(id, "/")
	s.NotContains(id, "=")
}

// If the value in the random reader does not repeat, generating ids multiple
// times will not result in collision.
func (s *IDGeneratorTestSuite) TestCollision() {
	t := `abcdefghijklmnopqrstuvwxy0123456789ABCDEFGHIJKLMNOPQRSTUVWXYãẽĩñõũṽỹáćéǵíḱĺḿńóṕŕśúǘẃ`
	s.ig = NewIDGenerator(WithReader(strings.NewReader(t))).(*IDGenerator)

	id1, err := s.ig.GenerateID(16)
	s.NoError(err)
	s.Len(id1, 16)

	id2, err := s.ig.GenerateID(16)
	s.NoError(err)
	s.Len(id2, 16)

	s.NotEqual(id1, id2)
}

func (s *IDGeneratorTestSuite) TestReadError() {
	s.ig = NewIDGenerator(WithReader(strings.NewReader(""))).(*IDGenerator)

	id, err := s.ig.GenerateID(1)
	s.ErrorIs(err, io.EOF)
	s.Zero(id)
}

func TestIDGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(IDGeneratorTestSuite))
}
