package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yk35/netDXF/core"
)

// newTestSession 把 "组码", "值" 交替的参数拼成 DXF 文本，并停在第一个标签上
func newTestSession(pairs ...string) *Session {
	text := strings.Join(pairs, "\n") + "\n"
	s := NewSession(core.NewNamedScanner(strings.NewReader(text), "test.dxf"), nil)
	s.Next()
	return s
}

func decodeOne[T Entity](t *testing.T, pairs ...string) (T, *Session) {
	t.Helper()
	s := newTestSession(pairs...)
	ent, err := s.DecodeEntity()
	require.NoError(t, err)
	e, ok := ent.(T)
	require.True(t, ok, "got %T", ent)
	return e, s
}

func assertPoint(t *testing.T, want, got core.Point) {
	t.Helper()
	const delta = 1e-9
	require.InDelta(t, want.X, got.X, delta, "X")
	require.InDelta(t, want.Y, got.Y, delta, "Y")
	require.InDelta(t, want.Z, got.Z, delta, "Z")
}
