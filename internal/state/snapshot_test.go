package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(s Snapshot) []string {
	out := make([]string, 0, s.Len())
	for _, el := range s.Elements() {
		out = append(out, el.Header().ID)
	}
	return out
}

func TestSnapshotCopyOnWrite(t *testing.T) {
	base := snap("a", "b")

	appended := base.Append(Text{Meta: Meta{ID: "c"}})
	assert.Equal(t, []string{"a", "b"}, ids(base))
	assert.Equal(t, []string{"a", "b", "c"}, ids(appended))

	replaced := appended.Replace(Text{Meta: Meta{ID: "b"}, Text: "new"})
	assert.Equal(t, []string{"a", "b", "c"}, ids(replaced))
	el, ok := replaced.Find("b")
	require.True(t, ok)
	assert.Equal(t, "new", el.(Text).Text)
	old, _ := appended.Find("b")
	assert.Empty(t, old.(Text).Text)

	removed := replaced.Remove("a")
	assert.Equal(t, []string{"b", "c"}, ids(removed))
	assert.Equal(t, 3, replaced.Len())
}

func TestSnapshotReplaceAppendsUnknown(t *testing.T) {
	s := snap("a").Replace(Text{Meta: Meta{ID: "z"}})
	assert.Equal(t, []string{"a", "z"}, ids(s))

	_, ok := s.Find("missing")
	assert.False(t, ok)
}

func TestSnapshotRemoveLast(t *testing.T) {
	assert.Equal(t, Snapshot{}, snap("a").Remove("a"))
}
