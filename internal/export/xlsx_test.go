package export_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"lg/diet-plan-go-api/internal/dietgen"
	"lg/diet-plan-go-api/internal/export"
	"lg/diet-plan-go-api/internal/nutrition"
	"lg/diet-plan-go-api/internal/targets"
)

func TestWrite_OneSheetPerDay(t *testing.T) {
	week := dietgen.Generate(dietgen.Request{Style: targets.StyleTraditional, MealsPerDay: 3})

	var buf bytes.Buffer
	if err := export.Write(&buf, week); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := append([]string{export.SheetSummary}, nutrition.Weekdays...)
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], want[i])
		}
	}

	// Summary row for Monday carries the day's calorie total.
	got, err := f.GetCellValue(export.SheetSummary, "B4")
	if err != nil {
		t.Fatal(err)
	}
	if got != strconv.Itoa(week.Days[0].Totals.Calories) {
		t.Errorf("Monday calories = %q, want %d", got, week.Days[0].Totals.Calories)
	}

	// First meal row on a day sheet.
	meal, _ := f.GetCellValue("Tuesday", "A2")
	if meal != "Breakfast" {
		t.Errorf("Tuesday A2 = %q, want Breakfast", meal)
	}
}
