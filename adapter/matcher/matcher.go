// Package matcher contains the default [domain.Matcher] implementation: the
// query engine evaluating mongo-like filters over loosely typed documents.
//
// A filter is a document whose fields are implicitly ANDed. A field's value
// is either a literal (implicit equality) or an operator object mapping
// operator names to operands, themselves ANDed. The operator set is closed:
// $eq, $ne, $gt, $gte, $lt, $lte, $in and $regex. An unknown operator name
// never matches anything; a typo'd operator yields zero matches rather than
// false positives.
package matcher

import (
	"regexp"

	"github.com/mimicdb/mimicdb/adapter/comparer"
	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/domain"
	"github.com/mimicdb/mimicdb/pkg/structure"
)

// operFunc evaluates a single operator against a field value. defined is
// false when the field is absent from the document, which is distinct from
// the field holding nil.
type operFunc func(fieldValue any, defined bool, operand any) (bool, error)

// Matcher implements [domain.Matcher].
type Matcher struct {
	documentFactory domain.DocumentFactory
	comparer        domain.Comparer
	compFuncs       map[string]operFunc
}

// NewMatcher returns a new implementation of [domain.Matcher].
func NewMatcher(options ...Option) domain.Matcher {
	m := &Matcher{
		documentFactory: data.NewDocument,
		comparer:        comparer.NewComparer(),
	}
	for _, option := range options {
		option(m)
	}

	m.compFuncs = map[string]operFunc{
		"$eq":    m.eq,
		"$ne":    m.ne,
		"$gt":    m.gt,
		"$gte":   m.gte,
		"$lt":    m.lt,
		"$lte":   m.lte,
		"$in":    m.in,
		"$regex": m.regex,
	}

	return m
}

// Match implements [domain.Matcher]. A nil or empty query matches every
// document. Neither argument is ever mutated.
func (m *Matcher) Match(value any, query any) (bool, error) {
	doc, err := m.asDocument(value)
	if err != nil {
		return false, err
	}
	qry, err := m.asDocument(query)
	if err != nil {
		return false, err
	}
	return m.matchDocs(doc, qry)
}

// MatchAll implements [domain.Matcher]. The result preserves the input
// relative order.
func (m *Matcher) MatchAll(docs []domain.Document, query any) ([]domain.Document, error) {
	qry, err := m.asDocument(query)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		matches, err := m.matchDocs(doc, qry)
		if err != nil {
			return nil, err
		}
		if matches {
			res = append(res, doc)
		}
	}
	return res, nil
}

func (m *Matcher) asDocument(value any) (domain.Document, error) {
	if value == nil {
		return data.M{}, nil
	}
	if doc, ok := value.(domain.Document); ok {
		return doc, nil
	}
	return m.documentFactory(value)
}

func (m *Matcher) matchDocs(doc, qry domain.Document) (bool, error) {
	if qry.Len() == 0 {
		return true, nil
	}

	for field, filterValue := range qry.Iter() {
		matches, err := m.matchField(doc.Get(field), doc.Has(field), filterValue)
		if err != nil || !matches {
			return false, err
		}
	}
	return true, nil
}

// matchField evaluates one filter field. A non-array mapping is an operator
// object; everything else, arrays and nil included, is an implicit equality
// literal.
func (m *Matcher) matchField(fieldValue any, defined bool, filterValue any) (bool, error) {
	opObj, ok := m.asOperatorObject(filterValue)
	if !ok {
		return m.eq(fieldValue, defined, filterValue)
	}

	for op, operand := range opObj.Iter() {
		fn, known := m.compFuncs[op]
		if !known {
			return false, nil
		}
		matches, err := fn(fieldValue, defined, operand)
		if err != nil || !matches {
			return false, err
		}
	}
	return true, nil
}

func (m *Matcher) asOperatorObject(filterValue any) (domain.Document, bool) {
	switch t := filterValue.(type) {
	case domain.Document:
		return t, true
	case map[string]any:
		return data.M(t), true
	default:
		return nil, false
	}
}

// eq also backs implicit equality. A missing field is never equal to any
// operand, and values of different type classes are unequal rather than an
// error.
func (m *Matcher) eq(fieldValue any, defined bool, operand any) (bool, error) {
	if !defined {
		return false, nil
	}
	return m.equal(fieldValue, operand)
}

func (m *Matcher) ne(fieldValue any, defined bool, operand any) (bool, error) {
	if !defined {
		return true, nil
	}
	equal, err := m.equal(fieldValue, operand)
	if err != nil {
		return false, err
	}
	return !equal, nil
}

func (m *Matcher) equal(a, b any) (bool, error) {
	if raw, ok := b.(map[string]any); ok {
		// operands given as raw maps still take part in whole-document
		// comparison
		return m.equal(a, data.M(raw))
	}
	c, err := m.comparer.Compare(a, b)
	if err != nil {
		// values the comparer has no order for are simply not equal
		return false, nil
	}
	return c == 0, nil
}

func (m *Matcher) gt(fieldValue any, defined bool, operand any) (bool, error) {
	return m.order(fieldValue, defined, operand, func(c int) bool { return c > 0 })
}

func (m *Matcher) gte(fieldValue any, defined bool, operand any) (bool, error) {
	return m.order(fieldValue, defined, operand, func(c int) bool { return c >= 0 })
}

func (m *Matcher) lt(fieldValue any, defined bool, operand any) (bool, error) {
	return m.order(fieldValue, defined, operand, func(c int) bool { return c < 0 })
}

func (m *Matcher) lte(fieldValue any, defined bool, operand any) (bool, error) {
	return m.order(fieldValue, defined, operand, func(c int) bool { return c <= 0 })
}

// order gates ordering comparisons on type compatibility: comparing a
// missing field or values of incompatible types yields false, never an
// error.
func (m *Matcher) order(fieldValue any, defined bool, operand any, holds func(int) bool) (bool, error) {
	if !defined {
		return false, nil
	}
	if !m.comparer.Comparable(fieldValue, operand) {
		return false, nil
	}
	c, err := m.comparer.Compare(fieldValue, operand)
	if err != nil {
		return false, err
	}
	return holds(c), nil
}

// in matches when the operand is a sequence containing an element equal to
// the field value. A non-sequence operand never matches.
func (m *Matcher) in(fieldValue any, defined bool, operand any) (bool, error) {
	if !defined {
		return false, nil
	}
	items, _, err := structure.Seq(operand)
	if err != nil {
		return false, nil
	}
	for item := range items {
		equal, err := m.equal(fieldValue, item)
		if err != nil {
			return false, err
		}
		if equal {
			return true, nil
		}
	}
	return false, nil
}

// regex matches string field values against the operand pattern, unanchored.
// The operand may be a pattern string or an already compiled
// [*regexp.Regexp]. Non-string field values never match, even when the
// operand is malformed; a malformed pattern only surfaces as an error once
// it would have been applied to a string.
func (m *Matcher) regex(fieldValue any, defined bool, operand any) (bool, error) {
	if !defined {
		return false, nil
	}
	str, ok := fieldValue.(string)
	if !ok {
		return false, nil
	}

	switch pattern := operand.(type) {
	case *regexp.Regexp:
		return pattern.MatchString(str), nil
	case string:
		rgx, err := regexp.Compile(pattern)
		if err != nil {
			return false, err
		}
		return rgx.MatchString(str), nil
	default:
		return false, domain.ErrPatternOperand{Operand: operand}
	}
}
