package projector

import (
	"testing"

	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/domain"
	"github.com/stretchr/testify/suite"
)

type M = data.M

type ProjectorTestSuite struct {
	suite.Suite
	p *Projector
}

func (s *ProjectorTestSuite) SetupTest() {
	s.p = NewProjector().(*Projector)
}

func (s *ProjectorTestSuite) docs() []domain.Document {
	return []domain.Document{
		M{"_id": "1", "name": "Alice", "age": 30, "city": "Lisbon"},
		M{"_id": "2", "name": "Bob", "age": 25},
	}
}

func (s *ProjectorTestSuite) TestEmptyProjection() {
	docs := s.docs()

	res, err := s.p.Project(docs, nil)

	s.NoError(err)
	s.Equal(docs, res)
}

func (s *ProjectorTestSuite) TestKeepFields() {
	res, err := s.p.Project(s.docs(), map[string]int64{"name": 1})

	s.NoError(err)
	s.Len(res, 2)
	s.Equal(M{"_id": "1", "name": "Alice"}, res[0])
	s.Equal(M{"_id": "2", "name": "Bob"}, res[1])
}

func (s *ProjectorTestSuite) TestKeepMissingField() {
	res, err := s.p.Project(s.docs(), map[string]int64{"city": 1})

	s.NoError(err)
	s.Equal(M{"_id": "1", "city": "Lisbon"}, res[0])
	s.Equal(M{"_id": "2"}, res[1])
}

func (s *ProjectorTestSuite) TestOmitFields() {
	res, err := s.p.Project(s.docs(), map[string]int64{"age": 0, "city": 0})

	s.NoError(err)
	s.Equal(M{"_id": "1", "name": "Alice"}, res[0])
	s.Equal(M{"_id": "2", "name": "Bob"}, res[1])
}

func (s *ProjectorTestSuite) TestExcludeID() {
	res, err := s.p.Project(s.docs(), map[string]int64{"name": 1, "_id": 0})

	s.NoError(err)
	s.Equal(M{"name": "Alice"}, res[0])
	s.Equal(M{"name": "Bob"}, res[1])
}

func (s *ProjectorTestSuite) TestOmitWithID() {
	res, err := s.p.Project(s.docs(), map[string]int64{"age": 0, "_id": 0})

	s.NoError(err)
	s.Equal(M{"name": "Alice", "city": "Lisbon"}, res[0])
}

func (s *ProjectorTestSuite) TestMixedProjection() {
	res, err := s.p.Project(s.docs(), map[string]int64{"name": 1, "age": 0})

	s.ErrorIs(err, domain.ErrMixedProjection)
	s.Nil(res)
}

func (s *ProjectorTestSuite) TestInputUntouched() {
	docs := s.docs()

	_, err := s.p.Project(docs, map[string]int64{"age": 0})

	s.NoError(err)
	s.Equal(M{"_id": "1", "name": "Alice", "age": 30, "city": "Lisbon"}, docs[0])
}

func TestProjectorTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectorTestSuite))
}
