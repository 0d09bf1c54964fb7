// Package idgenerator contains the default [domain.IDGenerator]
// implementation using base64-encoded random bytes.
package idgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/mimicdb/mimicdb/domain"
)

// IDGenerator implements [domain.IDGenerator].
type IDGenerator struct {
	reader io.Reader
}

// NewIDGenerator returns a new implementation of [domain.IDGenerator].
func NewIDGenerator(opts ...Option) domain.IDGenerator {
	i := IDGenerator{
		reader: rand.Reader,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return &i
}

// GenerateID implements [domain.IDGenerator]. The result contains only
// base64 alphanumeric characters; '+' and '/' are skipped so ids stay safe
// in URLs and file names.
func (i *IDGenerator) GenerateID(l int) (string, error) {
	res := make([]byte, 0, l)
	for len(res) < l {
		buf := make([]byte, max(8, l*2))
		if _, err := io.ReadFull(i.reader, buf); err != nil {
			return "", err
		}

		dst := base64.StdEncoding.EncodeToString(buf)
		for _, b := range []byte(dst) {
			switch b {
			case '+', '/', '=':
			default:
				res = append(res, b)
			}
			if len(res) == l {
				break
			}
		}
	}

	return string(res), nil
}
