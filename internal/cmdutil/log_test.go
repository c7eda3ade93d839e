// internal/cmdutil/log_test.go
package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "hit %d skipped", 3)
	assert.Equal(t, "WARN: hit 3 skipped\n", buf.String())

	buf.Reset()
	Warnf(&buf, true, "hit %d skipped", 3)
	assert.Empty(t, buf.String())
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "load config: %s", "bad yaml")
	assert.Equal(t, "ERROR: load config: bad yaml\n", buf.String())
}
