package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wordsaver/internal/domain"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Words"

// PlainList returns all saved words, one per line
func (s *VocabularyService) PlainList(ctx context.Context, userID int64) (string, error) {
	words, err := s.List(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", domain.ErrEmptyVocabulary
	}
	return strings.Join(words.Words(), "\n"), nil
}

// ExportXLSX writes the vocabulary as a spreadsheet to w
func (s *VocabularyService) ExportXLSX(ctx context.Context, userID int64, w io.Writer) error {
	words, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return domain.ErrEmptyVocabulary
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &[]interface{}{"Word", "Date", "Reviewed"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range words {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &[]interface{}{e.Word, e.Date, strconv.FormatBool(e.Reviewed)}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
