package errhash

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{10}$`), a)
	assert.NotEqual(t, a, b)
}
