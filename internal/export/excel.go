// Package export writes feedback reports to spreadsheet files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

const (
	SheetSummary      = "Summary"
	SheetCategories   = "Categories"
	SheetObservations = "Observations"
	SheetExamples     = "Examples"
	SheetResources    = "Resources"

	extension   = ".xlsx"
	headerColor = "4472C4"
)

// Meta is report context that is not part of the feedback itself.
type Meta struct {
	Candidate   string
	GeneratedAt time.Time
	Narrative   string
}

// ToExcel writes fb to path and returns the path actually written, which
// always ends in .xlsx.
func ToExcel(fb *feedback.Result, meta Meta, path string) (string, error) {
	if fb == nil {
		return "", fmt.Errorf("feedback is required")
	}

	if !strings.HasSuffix(strings.ToLower(path), extension) {
		path += extension
	}
	path = filepath.Clean(path)

	f := excelize.NewFile()
	defer f.Close()

	w, err := newWriter(f)
	if err != nil {
		return "", err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return "", err
	}
	for _, name := range []string{SheetCategories, SheetObservations, SheetExamples, SheetResources} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.summary(fb, meta)
	w.categories(fb)
	w.observations(fb)
	w.examples(fb)
	w.resources(fb)

	if w.err != nil {
		return "", fmt.Errorf("fill workbook: %w", w.err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	return path, nil
}

// writer keeps the first cell error so the sheet builders stay linear.
type writer struct {
	f      *excelize.File
	err    error
	header int
	label  int
	wrap   int
	fills  map[feedback.Tier]int
}

func newWriter(f *excelize.File) (*writer, error) {
	w := &writer{f: f, fills: make(map[feedback.Tier]int)}

	var err error
	w.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	w.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	colors := map[feedback.Tier]string{
		feedback.TierExcellent:        "C6EFCE",
		feedback.TierStrong:           "E2EFDA",
		feedback.TierAdequate:         "FFEB9C",
		feedback.TierNeedsImprovement: "FFC7CE",
	}
	for tier, color := range colors {
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return nil, err
		}
		w.fills[tier] = style
	}

	return w, nil
}

func (w *writer) set(sheet string, col, row int, value any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheet, cell, value)
}

func (w *writer) style(sheet string, fromCol, toCol, row, style int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, from, to, style)
}

func (w *writer) widths(sheet string, widths ...float64) {
	for i, width := range widths {
		if w.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetColWidth(sheet, col, col, width)
	}
}

func (w *writer) headerRow(sheet string, titles ...string) {
	for i, title := range titles {
		w.set(sheet, i+1, 1, title)
	}
	w.style(sheet, 1, len(titles), 1, w.header)

	if w.err == nil {
		w.err = w.f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
}

func (w *writer) summary(fb *feedback.Result, meta Meta) {
	w.widths(SheetSummary, 25, 80)

	generated := meta.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	rows := [][2]any{
		{"Candidate", meta.Candidate},
		{"Generated", generated.Format("2006-01-02 15:04:05")},
		{"Overall Score", fb.OverallScore},
	}
	if meta.Narrative != "" {
		rows = append(rows, [2]any{"Coach Notes", meta.Narrative})
	}

	w.set(SheetSummary, 1, 1, "Interview Feedback Report")
	w.style(SheetSummary, 1, 2, 1, w.header)
	if w.err == nil {
		w.err = w.f.MergeCell(SheetSummary, "A1", "B1")
	}

	for i, row := range rows {
		r := i + 3
		w.set(SheetSummary, 1, r, row[0])
		w.set(SheetSummary, 2, r, row[1])
		w.style(SheetSummary, 1, 1, r, w.label)
		w.style(SheetSummary, 2, 2, r, w.wrap)
	}
}

func (w *writer) categories(fb *feedback.Result) {
	w.widths(SheetCategories, 25, 10, 90)
	w.headerRow(SheetCategories, "Category", "Score", "Feedback")

	for i, c := range fb.Categories {
		r := i + 2
		w.set(SheetCategories, 1, r, c.Name)
		w.set(SheetCategories, 2, r, c.Score)
		w.set(SheetCategories, 3, r, c.Feedback)
		w.style(SheetCategories, 1, 3, r, w.fills[c.Tier()])
	}
}

func (w *writer) observations(fb *feedback.Result) {
	w.widths(SheetObservations, 18, 90)
	w.headerRow(SheetObservations, "Kind", "Observation")

	r := 2
	for _, s := range fb.Strengths {
		w.set(SheetObservations, 1, r, "Strength")
		w.set(SheetObservations, 2, r, s)
		w.style(SheetObservations, 1, 2, r, w.fills[feedback.TierExcellent])
		r++
	}
	for _, s := range fb.Improvements {
		w.set(SheetObservations, 1, r, "Improvement")
		w.set(SheetObservations, 2, r, s)
		w.style(SheetObservations, 1, 2, r, w.fills[feedback.TierNeedsImprovement])
		r++
	}
}

func (w *writer) examples(fb *feedback.Result) {
	w.widths(SheetExamples, 18, 45, 60, 60)
	w.headerRow(SheetExamples, "Kind", "Question", "Answer", "Note")

	r := 2
	for _, ex := range fb.Examples.Strong {
		w.set(SheetExamples, 1, r, "Strong")
		w.set(SheetExamples, 2, r, ex.Question)
		w.set(SheetExamples, 3, r, ex.Answer)
		w.set(SheetExamples, 4, r, ex.Reason)
		w.style(SheetExamples, 1, 4, r, w.fills[feedback.TierExcellent])
		r++
	}
	for _, ex := range fb.Examples.NeedsImprovement {
		w.set(SheetExamples, 1, r, "Needs Improvement")
		w.set(SheetExamples, 2, r, ex.Question)
		w.set(SheetExamples, 3, r, ex.Answer)
		w.set(SheetExamples, 4, r, ex.BetterApproach)
		w.style(SheetExamples, 1, 4, r, w.fills[feedback.TierNeedsImprovement])
		r++
	}
}

func (w *writer) resources(fb *feedback.Result) {
	w.widths(SheetResources, 40, 70, 45)
	w.headerRow(SheetResources, "Title", "Description", "Link")

	for i, res := range fb.Resources {
		r := i + 2
		w.set(SheetResources, 1, r, res.Title)
		w.set(SheetResources, 2, r, res.Description)
		w.style(SheetResources, 1, 2, r, w.wrap)
		if res.Link == "" {
			continue
		}
		w.set(SheetResources, 3, r, res.Link)
		if w.err == nil {
			cell, _ := excelize.CoordinatesToCellName(3, r)
			w.err = w.f.SetCellHyperLink(SheetResources, cell, res.Link, "External")
		}
	}
}
