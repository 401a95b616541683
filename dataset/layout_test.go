package dataset_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/svmdata/dataset"
)

func TestParseLabel(t *testing.T) {
	label, err := dataset.ParseLabel("7")
	require.NoError(t, err)
	assert.Equal(t, 7, label)

	for _, name := range []string{"abc", "", "1.5", "-1"} {
		_, err := dataset.ParseLabel(name)
		require.ErrorIs(t, err, dataset.ErrLabelParse, name)

		var le *dataset.LabelError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, name, le.Name)
	}
}

func TestParseFilenameLabel(t *testing.T) {
	tests := []struct {
		name  string
		label int
	}{
		{"0_000222.png", 0},
		{"1_000104.png", 1},
		{"12_a_b.jpeg", 12},
	}
	for _, tt := range tests {
		label, err := dataset.ParseFilenameLabel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.label, label, tt.name)
	}

	for _, name := range []string{"abc.png", "x_1.png", "_1.png"} {
		_, err := dataset.ParseFilenameLabel(name)
		assert.ErrorIs(t, err, dataset.ErrLabelParse, name)
	}
}

func TestDetectLayout(t *testing.T) {
	classDir := t.TempDir()
	writePNG(t, filepath.Join(classDir, "0", "a.png"), grayImage(2, 2, 0))
	writePNG(t, filepath.Join(classDir, "loose.png"), grayImage(2, 2, 0))

	layout, err := dataset.DetectLayout(classDir)
	require.NoError(t, err)
	assert.Equal(t, dataset.LayoutClassDirs, layout)

	fileDir := t.TempDir()
	writePNG(t, filepath.Join(fileDir, "0_a.png"), grayImage(2, 2, 0))

	layout, err = dataset.DetectLayout(fileDir)
	require.NoError(t, err)
	assert.Equal(t, dataset.LayoutFilename, layout)

	assert.Equal(t, "class-dirs", dataset.LayoutClassDirs.String())
	assert.Equal(t, "filename", dataset.LayoutFilename.String())
}
