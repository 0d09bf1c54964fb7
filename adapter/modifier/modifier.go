// Package modifier contains the default [domain.Modifier] implementation,
// applying $set/$unset update queries and building upsert documents.
//
// Unlike filters, update queries are caller programming: malformed updates
// (mixed modifiers and plain fields, unknown modifiers, _id changes) are
// errors, not silent no-ops.
package modifier

import (
	"strings"

	"github.com/mimicdb/mimicdb/adapter/comparer"
	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/domain"
)

type modFunc func(domain.Document, string, any) error

// Modifier implements [domain.Modifier].
type Modifier struct {
	comp   domain.Comparer
	docFac domain.DocumentFactory
	mods   map[string]modFunc
}

// NewModifier returns a new implementation of [domain.Modifier].
func NewModifier(options ...Option) domain.Modifier {
	m := &Modifier{
		comp:   comparer.NewComparer(),
		docFac: data.NewDocument,
	}
	for _, option := range options {
		option(m)
	}

	m.mods = map[string]modFunc{
		"$set":   m.set,
		"$unset": m.unset,
	}

	return m
}

// Modify implements [domain.Modifier]. The input document is deep copied
// before any mutation; an update query without '$' modifiers replaces the
// whole document, keeping its _id.
func (m *Modifier) Modify(obj domain.Document, updateQuery domain.Document) (domain.Document, error) {
	replace, err := m.checkQuery(obj, updateQuery)
	if err != nil {
		return nil, err
	}

	if replace {
		return m.replaceMod(obj, updateQuery)
	}

	return m.dollarMod(obj, updateQuery)
}

// Upsert implements [domain.Modifier]. The query's literal fields (plain
// values on non-'$' keys) seed the new document; operator objects carry no
// concrete value and are skipped. The update query is then applied on top.
func (m *Modifier) Upsert(query domain.Document, updateQuery domain.Document) (domain.Document, error) {
	seed, err := m.docFac(nil)
	if err != nil {
		return nil, err
	}

	for k, v := range query.Iter() {
		if strings.HasPrefix(k, "$") {
			continue
		}
		if _, ok := v.(domain.Document); ok {
			continue
		}
		if _, ok := v.(map[string]any); ok {
			continue
		}
		seed.Set(k, v)
	}

	return m.Modify(seed, updateQuery)
}

// checkQuery validates the update query and reports whether it is a full
// replacement (no '$' modifiers).
func (m *Modifier) checkQuery(obj domain.Document, updateQuery domain.Document) (bool, error) {
	dollarFields, total := 0, 0
	for k, v := range updateQuery.Iter() {
		total++
		if err := m.checkID(obj, k, v); err != nil {
			return false, err
		}
		if strings.HasPrefix(k, "$") {
			dollarFields++
		}
		if dollarFields != 0 && dollarFields != total {
			return false, domain.ErrMixedModifiers
		}
	}
	return dollarFields == 0, nil
}

func (m *Modifier) checkID(obj domain.Document, key string, value any) error {
	if key != "_id" || !obj.Has("_id") {
		return nil
	}
	c, err := m.comp.Compare(value, obj.ID())
	if err != nil || c != 0 {
		return domain.ErrCannotModifyID
	}
	return nil
}

func (m *Modifier) replaceMod(obj domain.Document, updateQuery domain.Document) (domain.Document, error) {
	newDoc, err := m.docFac(updateQuery)
	if err != nil {
		return nil, err
	}

	if obj.Has("_id") {
		newDoc.Set("_id", obj.ID())
	}

	return newDoc, nil
}

func (m *Modifier) dollarMod(obj domain.Document, updateQuery domain.Document) (domain.Document, error) {
	docCopy, err := m.docFac(obj)
	if err != nil {
		return nil, err
	}

	for modName, arg := range updateQuery.Iter() {
		mod, ok := m.mods[modName]
		if !ok {
			return nil, domain.ErrUnknownModifier{Modifier: modName}
		}

		fields, ok := m.asDocument(arg)
		if !ok {
			return nil, domain.ErrModifierArg{Modifier: modName, Actual: arg}
		}

		for field, value := range fields.Iter() {
			if err := mod(docCopy, field, value); err != nil {
				return nil, err
			}
		}
	}

	if obj.Has("_id") {
		c, err := m.comp.Compare(obj.ID(), docCopy.ID())
		if err != nil || c != 0 {
			return nil, domain.ErrCannotModifyID
		}
	}

	return docCopy, nil
}

func (m *Modifier) asDocument(v any) (domain.Document, bool) {
	switch t := v.(type) {
	case domain.Document:
		return t, true
	case map[string]any:
		return data.M(t), true
	default:
		return nil, false
	}
}

func (m *Modifier) set(doc domain.Document, field string, value any) error {
	if strings.HasPrefix(field, "$") {
		return domain.ErrFieldName{Field: field}
	}
	doc.Set(field, value)
	return nil
}

func (m *Modifier) unset(doc domain.Document, field string, _ any) error {
	doc.Unset(field)
	return nil
}
