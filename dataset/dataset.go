package dataset

import (
	"fmt"
	"path/filepath"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Dataset は一つの split の特徴行列とラベルです。
// 読み込み後は変更されません。アクセサは全てコピーを返します。
type Dataset struct {
	split  string
	rows   int
	cols   int
	data   []float64
	labels []int
}

// Load は root/split から画像を読み込み、Dataset を作ります。
// 一枚でも読めない画像があれば、途中までの結果は捨ててエラーを返します。
func Load(root, split string, opts ...Option) (*Dataset, error) {
	o := newOptions(opts)
	o.logger = o.logger.WithSplit(split)

	dir := filepath.Join(root, split)
	d := &Dataset{split: split}
	layout, err := walk(dir, &o, d.append)
	o.logger.LogLoad(dir, layout, d.rows, d.cols, err)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) append(s Sample) error {
	if d.rows == 0 {
		d.cols = len(s.Features)
	} else if len(s.Features) != d.cols {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrFeatureSizeMismatch, s.Path, len(s.Features), d.cols)
	}
	d.data = append(d.data, s.Features...)
	d.labels = append(d.labels, s.Label)
	d.rows++
	return nil
}

func (d *Dataset) Split() string {
	return d.split
}

// Len はサンプル数です。
func (d *Dataset) Len() int {
	return d.rows
}

// Dim は特徴ベクトルの長さです。空の Dataset では 0 です。
func (d *Dataset) Dim() int {
	return d.cols
}

func (d *Dataset) Shape() (rows, cols int) {
	return d.rows, d.cols
}

// Data は特徴ベクトルとラベルを返します。
func (d *Dataset) Data() ([][]float64, []int) {
	return d.Features(), d.Labels()
}

func (d *Dataset) Features() [][]float64 {
	xs := make([][]float64, d.rows)
	for i := range xs {
		xs[i] = slices.Clone(d.row(i))
	}
	return xs
}

func (d *Dataset) Labels() []int {
	ls := make([]int, d.rows)
	copy(ls, d.labels)
	return ls
}

// Sample は i 番目のサンプルを返します。Path は空です。
func (d *Dataset) Sample(i int) Sample {
	return Sample{Features: slices.Clone(d.row(i)), Label: d.labels[i]}
}

// Matrix は特徴を rows x cols の行列として返します。
// gonum の行列は大きさ 0 を持てないので、空の Dataset では nil を返します。
func (d *Dataset) Matrix() *mat.Dense {
	if d.rows == 0 || d.cols == 0 {
		return nil
	}
	return mat.NewDense(d.rows, d.cols, slices.Clone(d.data))
}

func (d *Dataset) row(i int) []float64 {
	return d.data[i*d.cols : (i+1)*d.cols]
}
