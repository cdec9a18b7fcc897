package leaderboardservice

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes a ranked leaderboard to a single-sheet workbook.
func ExportXLSX(sheet string, ranked []Ranked) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Rank", "Player", "Points"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range ranked {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{r.Rank, r.name(), r.Points}); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
