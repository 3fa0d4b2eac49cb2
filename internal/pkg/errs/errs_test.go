//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/Fox-16s/reservat-io/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	base := errors.New("connection reset")

	marked := errs.Mark(base, errSentinel)

	assert.True(t, errors.Is(marked, errSentinel))
	assert.True(t, errors.Is(marked, base))
	assert.Equal(t, "connection reset", marked.Error())
	assert.True(t, errs.Is(marked, errSentinel))

	outer := errs.Wrap(marked, "load reservation")
	assert.True(t, errors.Is(outer, errSentinel))
	assert.Equal(t, "load reservation: connection reset", outer.Error())
}

func TestMarkNil(t *testing.T) {
	assert.Same(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "loading reservation %s", "abc")
	require.Error(t, wrapped)
	assert.Equal(t, "loading reservation abc: sentinel", wrapped.Error())
	assert.True(t, errs.Is(wrapped, errSentinel))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.Wrap(errSentinel, "outer"), 2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "outer")
}
