package dataset_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/svmdata/dataset"
)

func loadFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "train", "0", "a.png"), grayImage(3, 2, 0))
	writePNG(t, filepath.Join(root, "train", "0", "b.png"), grayImage(3, 2, 17))
	writePNG(t, filepath.Join(root, "train", "3", "c.png"), grayImage(3, 2, 255))

	d, err := dataset.Load(root, "train", quiet)
	require.NoError(t, err)
	return d
}

var noopSave = dataset.WithSaveLogger(dataset.NoopLogger())

func TestSaveRoundTripNpy(t *testing.T) {
	d := loadFixture(t)
	out := filepath.Join(t.TempDir(), "nested", "output")

	require.NoError(t, d.Save(out, noopSave))

	xPath, yPath := dataset.Paths(out, "train", dataset.FormatNpy)
	assert.Equal(t, "X_train.npy", filepath.Base(xPath))
	assert.Equal(t, "y_train.npy", filepath.Base(yPath))

	for _, path := range []string{xPath, yPath} {
		f, err := os.Open(path)
		require.NoError(t, err)
		magic := make([]byte, 6)
		_, err = io.ReadFull(f, magic)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, []byte("\x93NUMPY"), magic)
	}

	got, err := dataset.LoadSaved(out, "train")
	require.NoError(t, err)
	assert.Equal(t, "train", got.Split())
	assert.Equal(t, d.Labels(), got.Labels())
	assert.Equal(t, d.Features(), got.Features())
}

func TestSaveRoundTripGob(t *testing.T) {
	d := loadFixture(t)
	out := t.TempDir()

	require.NoError(t, d.Save(out, noopSave, dataset.WithFormat(dataset.FormatGob)))

	xPath, _ := dataset.Paths(out, "train", dataset.FormatGob)
	_, err := os.Stat(xPath)
	require.NoError(t, err)

	got, err := dataset.LoadSaved(out, "train", dataset.WithFormat(dataset.FormatGob))
	require.NoError(t, err)
	assert.Equal(t, d.Labels(), got.Labels())
	assert.Equal(t, d.Features(), got.Features())
}

func TestSaveEmpty(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "test"), 0755))

	d, err := dataset.Load(root, "test", quiet)
	require.NoError(t, err)

	out := filepath.Join(root, "output")
	require.NoError(t, d.Save(out, noopSave))

	got, err := dataset.LoadSaved(out, "test")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Empty(t, got.Labels())
}

func TestSaveOverwrites(t *testing.T) {
	d := loadFixture(t)
	out := t.TempDir()
	require.NoError(t, d.Save(out, noopSave))

	b := d.Binarize(0.5)
	require.NoError(t, b.Save(out, noopSave))

	got, err := dataset.LoadSaved(out, "train")
	require.NoError(t, err)
	assert.Equal(t, b.Features(), got.Features())
}

func TestSaveDefaultDir(t *testing.T) {
	d := loadFixture(t)
	t.Chdir(t.TempDir())

	require.NoError(t, d.Save("", noopSave))

	_, err := os.Stat(filepath.Join(dataset.DefaultOutputDir, "X_train.npy"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataset.DefaultOutputDir, "y_train.npy"))
	assert.NoError(t, err)
}

func TestSaveLogsConfirmation(t *testing.T) {
	d := loadFixture(t)
	out := t.TempDir()

	var buf bytes.Buffer
	logger := dataset.NewLogger(slog.NewTextHandler(&buf, nil))
	require.NoError(t, d.Save(out, dataset.WithSaveLogger(logger)))

	assert.Contains(t, buf.String(), "dataset saved to "+out)
	assert.Contains(t, buf.String(), "split=train")
}

func TestLoadSavedMissing(t *testing.T) {
	_, err := dataset.LoadSaved(t.TempDir(), "train")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveUnknownFormat(t *testing.T) {
	d := loadFixture(t)
	out := filepath.Join(t.TempDir(), "out")

	err := d.Save(out, noopSave, dataset.WithFormat(dataset.Format(42)))
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
