package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"blog-backend/internal/domains/post/model"
)

const (
	exportSheet     = "Posts"
	exportBatchSize = 500
)

var exportHeaders = []string{"ID", "Published", "Author", "Group", "Text", "Comments", "Image"}

// Export duyệt toàn bộ posts theo filter (từng batch 500) và ghi ra xlsx
func (s *postService) Export(ctx context.Context, filter model.Filter, w io.Writer) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return 0, fmt.Errorf("rename sheet: %w", err)
	}

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
		_ = f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle)
	}

	rows := 0
	for offset := 0; ; offset += exportBatchSize {
		posts, err := s.repo.List(ctx, filter, exportBatchSize, offset)
		if err != nil {
			return rows, fmt.Errorf("list posts: %w", err)
		}

		for _, p := range posts {
			if err := writeExportRow(f, rows+2, p); err != nil {
				return rows, err
			}
			rows++
		}

		if len(posts) < exportBatchSize {
			break
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return rows, fmt.Errorf("write xlsx: %w", err)
	}
	return rows, nil
}

func writeExportRow(f *excelize.File, rowNum int, p *model.Post) error {
	group := ""
	if p.Group != nil {
		group = p.Group.Slug
	}
	image := ""
	if p.Image != nil {
		image = *p.Image
	}

	values := []interface{}{
		p.ID,
		p.PubDate.UTC().Format("2006-01-02 15:04:05"),
		p.Author.Username,
		group,
		p.Text,
		p.CommentCount,
		image,
	}

	for colIdx, v := range values {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
		if err := f.SetCellValue(exportSheet, cell, v); err != nil {
			return fmt.Errorf("write row %d: %w", rowNum, err)
		}
	}
	return nil
}
