package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"github.com/sw965/omw/encoding/gobx"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Format は保存形式です。
type Format int

const (
	// FormatNpy は NumPy の .npy 形式です。特徴は <f8 の (N, P)、ラベルは <i8 の (N,) で書きます。
	FormatNpy Format = iota
	// FormatGob は encoding/gob 形式です。
	FormatGob
)

func (f Format) String() string {
	switch f {
	case FormatNpy:
		return "npy"
	case FormatGob:
		return "gob"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext はファイルの拡張子です。
func (f Format) Ext() string {
	return "." + f.String()
}

// Paths は dir に保存される特徴ファイル X_<split> とラベルファイル y_<split> のパスを返します。
func Paths(dir, split string, format Format) (xPath, yPath string) {
	xPath = filepath.Join(dir, "X_"+split+format.Ext())
	yPath = filepath.Join(dir, "y_"+split+format.Ext())
	return
}

type gobMatrix struct {
	Rows int
	Cols int
	Data []float64
}

// Save は outputDir (空なら DefaultOutputDir) を必要なら作り、特徴とラベルを二つのファイルに書きます。
// 既存のファイルは上書きします。書き込みの途中で失敗した場合、ファイルは書きかけのまま残ります。
func (d *Dataset) Save(outputDir string, opts ...SaveOption) error {
	o := newSaveOptions(opts)
	logger := o.logger.WithSplit(d.split)
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	files, err := d.save(outputDir, o.format)
	logger.LogSave(outputDir, o.format, files, err)
	return err
}

func (d *Dataset) save(dir string, format Format) ([]string, error) {
	if format != FormatNpy && format != FormatGob {
		return nil, fmt.Errorf("unknown format: %v", format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	xPath, yPath := Paths(dir, d.split, format)
	switch format {
	case FormatNpy:
		if err := writeNpy(xPath, d.npyFeatures()); err != nil {
			return nil, err
		}
		if err := writeNpy(yPath, d.int64Labels()); err != nil {
			return nil, err
		}
	case FormatGob:
		x := gobMatrix{Rows: d.rows, Cols: d.cols, Data: d.data}
		if err := gobx.Save(x, xPath); err != nil {
			return nil, fmt.Errorf("%s: %w", xPath, err)
		}
		if err := gobx.Save(d.labels, yPath); err != nil {
			return nil, fmt.Errorf("%s: %w", yPath, err)
		}
	}
	return []string{xPath, yPath}, nil
}

// 空の特徴は np.array([]) と同じく (0,) の 1 次元配列として書きます。
func (d *Dataset) npyFeatures() any {
	m := d.Matrix()
	if m == nil {
		return []float64{}
	}
	return m
}

func (d *Dataset) int64Labels() []int64 {
	ls := make([]int64, len(d.labels))
	for i, l := range d.labels {
		ls[i] = int64(l)
	}
	return ls
}

func writeNpy(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := npyio.Write(f, v); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func readNpy(path string, ptr any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := npyio.Read(f, ptr); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadSaved は Save で書いた dir 内の X_<split> と y_<split> を読み戻します。
func LoadSaved(dir, split string, opts ...SaveOption) (*Dataset, error) {
	o := newSaveOptions(opts)
	xPath, yPath := Paths(dir, split, o.format)

	var d *Dataset
	var err error
	switch o.format {
	case FormatNpy:
		d, err = loadNpy(xPath, yPath)
	case FormatGob:
		d, err = loadGob(xPath, yPath)
	default:
		err = fmt.Errorf("unknown format: %v", o.format)
	}
	if err != nil {
		return nil, err
	}
	d.split = split
	return d, nil
}

func loadNpy(xPath, yPath string) (*Dataset, error) {
	var ys []int64
	if err := readNpy(yPath, &ys); err != nil {
		return nil, err
	}
	labels := make([]int, len(ys))
	for i, y := range ys {
		labels[i] = int(y)
	}

	if len(labels) == 0 {
		var xs []float64
		if err := readNpy(xPath, &xs); err != nil {
			return nil, err
		}
		if len(xs) != 0 {
			return nil, fmt.Errorf("%w: %s has %d values for 0 labels", ErrFeatureSizeMismatch, xPath, len(xs))
		}
		return &Dataset{}, nil
	}

	var m mat.Dense
	if err := readNpy(xPath, &m); err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if rows != len(labels) {
		return nil, fmt.Errorf("%w: %s has %d rows for %d labels", ErrFeatureSizeMismatch, xPath, rows, len(labels))
	}

	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, m.RawRowView(i)...)
	}
	return &Dataset{rows: rows, cols: cols, data: data, labels: labels}, nil
}

func loadGob(xPath, yPath string) (*Dataset, error) {
	x, err := gobx.Load[gobMatrix](xPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", xPath, err)
	}
	labels, err := gobx.Load[[]int](yPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", yPath, err)
	}
	if x.Rows != len(labels) || len(x.Data) != x.Rows*x.Cols {
		return nil, fmt.Errorf("%w: %s is %dx%d with %d values for %d labels",
			ErrFeatureSizeMismatch, xPath, x.Rows, x.Cols, len(x.Data), len(labels))
	}
	return &Dataset{rows: x.Rows, cols: x.Cols, data: slices.Clone(x.Data), labels: labels}, nil
}
