package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats は全画素値の要約です。
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Stats は全サンプルの全画素についての最小・最大・平均・標準偏差を返します。空の Dataset ではゼロ値です。
func (d *Dataset) Stats() Stats {
	if len(d.data) == 0 {
		return Stats{}
	}
	mean, std := stat.PopMeanStdDev(d.data, nil)
	return Stats{
		Min:  floats.Min(d.data),
		Max:  floats.Max(d.data),
		Mean: mean,
		Std:  std,
	}
}
