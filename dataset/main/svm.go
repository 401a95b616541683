package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sw965/svmdata/dataset"
)

const (
	datasetPath = "mnist"
	outputDir   = dataset.DefaultOutputDir
	showLabels  = 10
)

var splits = []string{"train", "test"}

func main() {
	logger := dataset.NewLogger(nil)

	for _, split := range splits {
		d, err := dataset.Load(datasetPath, split, dataset.WithLogger(logger))
		if err != nil {
			log.Fatalf("エラーが発生しました: %v", err)
		}

		printSummary(d)

		if err := d.Save(outputDir, dataset.WithSaveLogger(logger)); err != nil {
			log.Fatalf("エラーが発生しました: %v", err)
		}
	}
}

func printSummary(d *dataset.Dataset) {
	rows, cols := d.Shape()
	labels := d.Labels()
	if len(labels) > showLabels {
		labels = labels[:showLabels]
	}
	s := d.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(d.Split())
	t.AppendHeader(table.Row{"X shape", "y shape", "Labels", "Mean", "Std"})
	t.AppendRow(table.Row{
		fmt.Sprintf("(%d, %d)", rows, cols),
		fmt.Sprintf("(%d,)", d.Len()),
		fmt.Sprint(labels),
		fmt.Sprintf("%.4f", s.Mean),
		fmt.Sprintf("%.4f", s.Std),
	})
	t.Render()
}
