package cverr

import (
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := New(KindAuthentication, "not authenticated to secret store")
	wrapped := cerr.Wrap(base, "readiness gate")

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, kind)
	assert.True(t, HasKind(wrapped, KindAuthentication))
	assert.False(t, HasKind(wrapped, KindAuthorization))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindConnectivity, cause, "secret store unreachable")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connectivity error")
	assert.Contains(t, err.Error(), "secret store unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewfFormats(t *testing.T) {
	err := Newf(KindStoreWrite, "store rejected the write at %q", "certs/example.com")
	assert.Contains(t, err.Error(), `store rejected the write at "certs/example.com"`)
}

func TestKindOf_UnclassifiedError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, HasKind(errors.New("plain"), KindIO))
}

func TestKindStrings(t *testing.T) {
	kinds := map[Kind]string{
		KindConfiguration:    "configuration error",
		KindAuthentication:   "authentication error",
		KindAuthorization:    "authorization error",
		KindIO:               "io error",
		KindCertificateParse: "certificate parse error",
		KindConnectivity:     "connectivity error",
		KindStoreWrite:       "store write error",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}
