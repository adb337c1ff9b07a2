package checkpointer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ts "github.com/samuelfneumann/gomdp/timestep"
)

// counter is a Serializable that records how often it was saved
type counter struct {
	saves int
}

func (c *counter) GobEncode() ([]byte, error) {
	c.saves++
	return []byte{byte(c.saves)}, nil
}

func (c *counter) GobDecode(data []byte) error {
	c.saves = int(data[0])
	return nil
}

func TestNStep(t *testing.T) {
	dir := t.TempDir()
	object := &counter{}
	c, err := NewNStep(2, object, FilenameEnumerator(0, filepath.Join(dir, "q"), ".bin"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Checkpoint(ts.New(ts.Mid, 0, 1, 0, 0, i)))
	}
	assert.Equal(t, 2, object.saves)
	assert.FileExists(t, filepath.Join(dir, "q1.bin"))
	assert.FileExists(t, filepath.Join(dir, "q2.bin"))

	loaded := &counter{}
	require.NoError(t, Load(filepath.Join(dir, "q2.bin"), loaded))
	assert.Equal(t, 2, loaded.saves)
}

func TestNEpisode(t *testing.T) {
	dir := t.TempDir()
	object := &counter{}
	c, err := NewNEpisode(1, object, FilenameEnumerator(0, filepath.Join(dir, "q"), ".bin"))
	require.NoError(t, err)

	last := ts.New(ts.Mid, 0, 1, 0, 0, 3)
	last.SetEnd(ts.Timeout)
	for _, step := range []ts.TimeStep{ts.New(ts.Mid, 0, 1, 0, 0, 1), last} {
		require.NoError(t, c.Checkpoint(step))
	}
	assert.Equal(t, 1, object.saves)
}

func TestNonPositiveInterval(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := NewNStep(n, &counter{}, FileTimer("q", ".bin"))
		assert.Error(t, err)

		_, err = NewNEpisode(n, &counter{}, FileTimer("q", ".bin"))
		assert.Error(t, err)
	}
}

func TestFileTimer(t *testing.T) {
	filename := FileTimer("checkpoint", ".bin")
	first, second := filename(), filename()

	assert.True(t, strings.HasPrefix(first, "checkpoint-"))
	assert.True(t, strings.HasSuffix(first, "-1.bin"))
	assert.True(t, strings.HasSuffix(second, "-2.bin"))
	assert.NotEqual(t, first, second)
}

func TestFileTimerCheckpoints(t *testing.T) {
	dir := t.TempDir()
	c, err := NewNStep(1, &counter{}, FileTimer(filepath.Join(dir, "q"), ".bin"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Checkpoint(ts.New(ts.Mid, 0, 1, 0, 0, i)))
	}
	files, err := filepath.Glob(filepath.Join(dir, "q-*.bin"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestSaveError(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "q.bin"), &counter{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
