package utils

import (
	"encoding/csv"
	"sort"

	"github.com/facette/natsort"
)

type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

// WriteAsCSV saves the rows under path/subpath/filename.csv in natural
// order of the first column, with a header row on top.
func WriteAsCSV(data CSV, path, subpath, filename string, columns []string) error {
	file, err := OpenFile(true, path, subpath, GetFilename(filename))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return err
	}
	sort.Sort(data)
	if err := w.WriteAll(data); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
