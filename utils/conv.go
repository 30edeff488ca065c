package utils

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// BytesToString decodes game text up to the first NUL using the given charmap.
func BytesToString(cm *charmap.Charmap, bs []byte) (string, error) {
	n := bytes.IndexByte(bs, 0)
	if n < 0 {
		n = len(bs)
	}
	if cm == nil {
		return string(bs[:n]), nil
	}

	s, _, err := transform.Bytes(cm.NewDecoder(), bs[:n])
	if err != nil {
		return "", errors.Wrapf(err, "Failed to decode %q", bs[:n])
	}
	return string(s), nil
}
