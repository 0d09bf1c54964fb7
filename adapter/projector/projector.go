// Package projector contains the default [domain.Projector] implementation.
package projector

import (
	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/domain"
)

// Projector implements [domain.Projector]. Projections address top level
// fields only; a projection either keeps or omits fields, never both, with
// _id as the usual exception.
type Projector struct {
	docFac domain.DocumentFactory
}

// NewProjector returns a new implementation of [domain.Projector].
func NewProjector(opts ...Option) domain.Projector {
	p := Projector{docFac: data.NewDocument}
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

// Project implements [domain.Projector].
func (q *Projector) Project(docs []domain.Document, proj map[string]int64) ([]domain.Document, error) {
	if len(proj) == 0 {
		return docs, nil
	}

	id, idMentioned := proj["_id"]
	keepID := !idMentioned || id != 0

	fields := make([]string, 0, len(proj))
	oneFields := 0
	for field, value := range proj {
		if field == "_id" {
			continue
		}
		fields = append(fields, field)
		if value != 0 {
			oneFields++
		}
		if oneFields > 0 && oneFields != len(fields) {
			return nil, domain.ErrMixedProjection
		}
	}

	res := make([]domain.Document, len(docs))
	for n, doc := range docs {
		projected, err := q.projectDoc(doc, fields, oneFields != 0)
		if err != nil {
			return nil, err
		}

		if keepID {
			if doc.Has("_id") {
				projected.Set("_id", doc.ID())
			}
		} else {
			projected.Unset("_id")
		}
		res[n] = projected
	}

	return res, nil
}

func (q *Projector) projectDoc(doc domain.Document, fields []string, keep bool) (domain.Document, error) {
	if keep {
		res, err := q.docFac(nil)
		if err != nil {
			return nil, err
		}
		for _, field := range fields {
			if doc.Has(field) {
				res.Set(field, doc.Get(field))
			}
		}
		return res, nil
	}

	res, err := q.docFac(doc)
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		res.Unset(field)
	}
	return res, nil
}
