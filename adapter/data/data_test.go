package data

import (
	"regexp"
	"testing"
	"time"

	"github.com/mimicdb/mimicdb/domain"
	"github.com/stretchr/testify/suite"
)

type DataTestSuite struct {
	suite.Suite
}

func TestDataTestSuite(t *testing.T) {
	suite.Run(t, new(DataTestSuite))
}

func (s *DataTestSuite) TestDocumentBasics() {
	doc := M{"_id": "abc", "name": "Alice", "null": nil}

	s.Equal("abc", doc.ID())
	s.Equal("Alice", doc.Get("name"))
	s.Nil(doc.Get("missing"))

	s.True(doc.Has("null"))
	s.False(doc.Has("missing"))

	doc.Set("age", 30)
	s.Equal(30, doc.Get("age"))
	s.Equal(4, doc.Len())

	doc.Unset("age")
	s.False(doc.Has("age"))

	keys := make(map[string]bool)
	for k := range doc.Keys() {
		keys[k] = true
	}
	s.Len(keys, 3)
	s.True(keys["_id"])

	seen := make(M)
	for k, v := range doc.Iter() {
		seen[k] = v
	}
	s.Equal(doc, seen)
}

func (s *DataTestSuite) TestNewDocumentNil() {
	doc, err := NewDocument(nil)

	s.NoError(err)
	s.Zero(doc.Len())
}

func (s *DataTestSuite) TestNewDocumentFromMap() {
	doc, err := NewDocument(map[string]any{
		"name": "Alice",
		"sub":  map[string]any{"x": 1},
		"list": []any{1, "two", nil},
	})

	s.NoError(err)
	s.Equal("Alice", doc.Get("name"))
	s.Equal(M{"x": 1}, doc.Get("sub"))
	s.Equal([]any{1, "two", nil}, doc.Get("list"))
}

func (s *DataTestSuite) TestNewDocumentCopiesInput() {
	in := M{"sub": M{"x": 1}}

	doc, err := NewDocument(in)
	s.NoError(err)

	in["sub"].(M)["x"] = 99
	s.Equal(M{"x": 1}, doc.Get("sub"))
}

func (s *DataTestSuite) TestNewDocumentFromStruct() {
	type address struct {
		City string `mimicdb:"city"`
	}
	type person struct {
		ID       string `mimicdb:"_id"`
		Name     string `mimicdb:"name"`
		Ignored  string `mimicdb:"-"`
		Untagged int
		Address  address  `mimicdb:"address"`
		Tags     []string `mimicdb:"tags"`
		// unexported fields are skipped
		secret string
	}

	doc, err := NewDocument(person{
		ID:       "p1",
		Name:     "Alice",
		Ignored:  "nope",
		Untagged: 7,
		Address:  address{City: "Lisbon"},
		Tags:     []string{"a", "b"},
		secret:   "hidden",
	})

	s.NoError(err)
	s.Equal("p1", doc.ID())
	s.Equal("Alice", doc.Get("name"))
	s.False(doc.Has("Ignored"))
	s.False(doc.Has("secret"))
	s.Equal(7, doc.Get("Untagged"))
	s.Equal(M{"city": "Lisbon"}, doc.Get("address"))
	s.Equal([]any{"a", "b"}, doc.Get("tags"))
}

func (s *DataTestSuite) TestNewDocumentFromStructPointer() {
	type person struct {
		Name string `mimicdb:"name"`
	}

	doc, err := NewDocument(&person{Name: "Alice"})

	s.NoError(err)
	s.Equal("Alice", doc.Get("name"))
}

func (s *DataTestSuite) TestOmitEmptyAndOmitZero() {
	type thing struct {
		List  []string `mimicdb:"list,omitempty"`
		Count int      `mimicdb:"count,omitzero"`
		Name  string   `mimicdb:"name"`
	}

	doc, err := NewDocument(thing{})

	s.NoError(err)
	s.False(doc.Has("list"))
	s.False(doc.Has("count"))
	s.True(doc.Has("name"))
}

func (s *DataTestSuite) TestScalarPassthrough() {
	now := time.Now()
	re := regexp.MustCompile("^a")

	doc, err := NewDocument(M{
		"when":    now,
		"pattern": re,
		"raw":     []byte("bytes"),
	})

	s.NoError(err)
	s.Equal(now, doc.Get("when"))
	s.Same(re, doc.Get("pattern"))
	s.Equal([]byte("bytes"), doc.Get("raw"))
}

func (s *DataTestSuite) TestRejectsNonDocument() {
	for _, in := range []any{42, "hello", []any{1, 2}, map[int]string{1: "a"}} {
		_, err := NewDocument(in)
		s.ErrorAs(err, &domain.ErrDocumentType{})
	}
}

func (s *DataTestSuite) TestCopyIsDeep() {
	doc := M{"sub": M{"x": 1}, "list": []any{1, 2}}

	clone, err := Copy(doc)
	s.NoError(err)
	s.Equal(domain.Document(doc), clone)

	clone.(M)["sub"].(M)["x"] = 99
	clone.(M)["list"].([]any)[0] = 99

	s.Equal(M{"x": 1}, doc["sub"])
	s.Equal([]any{1, 2}, doc["list"])
}

func (s *DataTestSuite) TestTypedSliceBecomesAnySlice() {
	doc, err := NewDocument(M{"nums": []int{1, 2, 3}})

	s.NoError(err)
	s.Equal([]any{1, 2, 3}, doc.Get("nums"))
}

// Elements must come out identical whether the slice arrives typed or as
// []any.
func (s *DataTestSuite) TestSliceElementsKeepTheirType() {
	typed, err := NewDocument(M{"nums": []int{1, 2, 3}})
	s.NoError(err)

	plain, err := NewDocument(M{"nums": []any{1, 2, 3}})
	s.NoError(err)

	s.Equal(plain.Get("nums"), typed.Get("nums"))
}
