// Package export renders a weekly diet as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lg/diet-plan-go-api/internal/nutrition"
)

// SheetSummary is the first sheet: one row per day with its totals.
const SheetSummary = "Summary"

var dayHeader = []string{"Meal", "Time", "Food", "Quantity", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Alternatives"}

type styles struct {
	header int
	meal   int
	total  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}
	s.meal, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return s, fmt.Errorf("meal style: %w", err)
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return s, fmt.Errorf("total style: %w", err)
	}
	return s, nil
}

// Workbook builds a workbook with a summary sheet and one sheet per day.
func Workbook(w nutrition.WeeklyDiet) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, st, w); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	for _, day := range w.Days {
		if _, err := f.NewSheet(day.Day); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", day.Day, err)
		}
		if err := writeDay(f, st, day); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", day.Day, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and writes it to out.
func Write(out io.Writer, w nutrition.WeeklyDiet) error {
	f, err := Workbook(w)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(out)
}

func writeSummary(f *excelize.File, st styles, w nutrition.WeeklyDiet) error {
	sheet := SheetSummary
	if err := setRow(f, sheet, 1, "Style", w.Style, "Source", w.Source); err != nil {
		return err
	}
	if err := setRow(f, sheet, 3, "Day", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Tips"); err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A3", "F3", st.header)

	for i, d := range w.Days {
		tips := ""
		for j, t := range d.Tips {
			if j > 0 {
				tips += " "
			}
			tips += t
		}
		if err := setRow(f, sheet, i+4, d.Day, d.Totals.Calories, d.Totals.ProteinG, d.Totals.CarbsG, d.Totals.FatG, tips); err != nil {
			return err
		}
	}
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "E", 12)
	f.SetColWidth(sheet, "F", "F", 80)
	return nil
}

func writeDay(f *excelize.File, st styles, d nutrition.DailyDiet) error {
	sheet := d.Day
	row := 1
	vals := make([]any, len(dayHeader))
	for i, h := range dayHeader {
		vals[i] = h
	}
	if err := setRow(f, sheet, row, vals...); err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "I1", st.header)

	for _, m := range d.Meals {
		row++
		if err := setRow(f, sheet, row, m.Name, m.Time, "", "", m.Totals.Calories, m.Totals.ProteinG, m.Totals.CarbsG, m.Totals.FatG); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), st.meal)
		for _, food := range m.Foods {
			row++
			alts := ""
			for i, a := range food.Alternatives {
				if i > 0 {
					alts += ", "
				}
				alts += a
			}
			if err := setRow(f, sheet, row, "", "", food.Name, food.Quantity, food.Calories, food.ProteinG, food.CarbsG, food.FatG, alts); err != nil {
				return err
			}
		}
	}

	row++
	if err := setRow(f, sheet, row, "Total", "", "", "", d.Totals.Calories, d.Totals.ProteinG, d.Totals.CarbsG, d.Totals.FatG); err != nil {
		return err
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), st.total)

	f.SetColWidth(sheet, "A", "B", 16)
	f.SetColWidth(sheet, "C", "C", 30)
	f.SetColWidth(sheet, "D", "H", 12)
	f.SetColWidth(sheet, "I", "I", 50)
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
