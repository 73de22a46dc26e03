package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodeForWrapsKnownKinds(t *testing.T) {
	base := errors.New("boom")
	require.Equal(t, 1, exitCodeFor(ioErr(base)))
	require.Equal(t, 2, exitCodeFor(malformedErr(base)))
	require.Equal(t, 3, exitCodeFor(invariantErr(base)))
}

func TestExitCodeForUnwrappedErrorDefaultsToIO(t *testing.T) {
	require.Equal(t, 1, exitCodeFor(errors.New("usage error")))
}

func TestExitErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	wrapped := ioErr(base)
	require.ErrorIs(t, wrapped, base)
}
