package dataset

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Binarize は threshold 以上の画素を 1、それ以外を 0 にした新しい Dataset を返します。
func (d *Dataset) Binarize(threshold float64) *Dataset {
	data := make([]float64, len(d.data))
	for i, v := range d.data {
		if v >= threshold {
			data[i] = 1
		}
	}
	return &Dataset{
		split:  d.split,
		rows:   d.rows,
		cols:   d.cols,
		data:   data,
		labels: slices.Clone(d.labels),
	}
}

// NumClasses は最大ラベル + 1 です。空の Dataset では 0 です。
func (d *Dataset) NumClasses() int {
	if len(d.labels) == 0 {
		return 0
	}
	top := d.labels[0]
	for _, l := range d.labels[1:] {
		if l > top {
			top = l
		}
	}
	return top + 1
}

// ClassCounts はラベルごとのサンプル数です。
func (d *Dataset) ClassCounts() map[int]int {
	counts := map[int]int{}
	for _, l := range d.labels {
		counts[l]++
	}
	return counts
}

// OneHot はラベルを len x numClasses の one-hot 行列に変換します。
func (d *Dataset) OneHot(numClasses int) (*mat.Dense, error) {
	if d.rows == 0 || numClasses <= 0 {
		return nil, fmt.Errorf("one-hot needs samples and classes: rows=%d classes=%d", d.rows, numClasses)
	}

	targets := mat.NewDense(d.rows, numClasses, nil)
	for i, label := range d.labels {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("%w at index %d: %d", ErrLabelOutOfRange, i, label)
		}
		targets.Set(i, label, 1)
	}
	return targets, nil
}
