// Package export writes a player's missed words as spreadsheet documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/example/legame/internal/catalog"
	"github.com/example/legame/pkg/models"
	"github.com/xuri/excelize/v2"
)

var header = []interface{}{"English", "French", "Gender"}

// Workbook builds an XLSX document with every missed word on the first sheet
// and one further sheet per category that has missed words
func Workbook(missed []models.Word) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheet(f, catalog.All.Title(), missed, headerStyle); err != nil {
		return nil, err
	}
	for _, c := range catalog.Named() {
		words := make([]models.Word, 0, len(missed))
		for _, w := range missed {
			if catalog.Contains(c, w) {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}
		if err := writeSheet(f, c.Title(), words, headerStyle); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet so the summary sheet comes first
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeSheet(f *excelize.File, name string, words []models.Word, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	if err := f.SetCellStyle(name, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", name, err)
	}
	if err := f.SetColWidth(name, "A", "B", 24); err != nil {
		return fmt.Errorf("failed to size columns of %s: %w", name, err)
	}

	for i, w := range words {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{w.EnglishWord, w.FrenchWord, string(w.Gender)}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
		}
	}
	return nil
}

// WriteCSV writes the missed words with the categories each belongs to
func WriteCSV(w io.Writer, missed []models.Word) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"english", "french", "gender", "categories"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, word := range missed {
		var names []string
		for _, c := range catalog.CategoriesOf(word) {
			names = append(names, string(c))
		}
		record := []string{word.EnglishWord, word.FrenchWord, string(word.Gender), strings.Join(names, ";")}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
