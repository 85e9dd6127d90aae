// Package excelreport exports a pipeline report as an XLSX workbook,
// one sheet per boundary document. This is the analyst deliverable;
// JSON remains the machine contract.
package excelreport

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"civitrack/app"
)

const (
	sheetScorecard = "Scorecard"
	sheetRedFlags  = "Red Flags"
	sheetInfluence = "Influence"
	sheetPromises  = "Promises"
)

// scorecardOrder keeps component rows stable across exports.
var scorecardOrder = []string{
	"promise_keeping",
	"transparency",
	"constituent_alignment",
	"attendance",
	"donor_independence",
}

// Write exports the report to path.
func Write(path string, r app.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeScorecard(f, r); err != nil {
		return err
	}
	if err := writeRedFlags(f, r); err != nil {
		return err
	}
	if err := writeInfluence(f, r); err != nil {
		return err
	}
	if err := writePromises(f, r); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on the scorecard.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeScorecard(f *excelize.File, r app.Report) error {
	if _, err := f.NewSheet(sheetScorecard); err != nil {
		return err
	}

	rows := [][]any{
		{"Official", r.OfficialID.String()},
		{"Overall score", r.Scorecard.OverallScore},
		{"Grade", string(r.Scorecard.Grade)},
		{"Trend", string(r.Scorecard.Trend)},
		{},
		{"Component", "Score", "Weight %", "Contribution"},
	}
	for _, name := range scorecardOrder {
		c, ok := r.Scorecard.Components[name]
		if !ok {
			continue
		}
		rows = append(rows, []any{strings.ReplaceAll(name, "_", " "), c.Score, c.Weight, c.WeightedContribution})
	}
	return writeRows(f, sheetScorecard, rows)
}

func writeRedFlags(f *excelize.File, r app.Report) error {
	if _, err := f.NewSheet(sheetRedFlags); err != nil {
		return err
	}

	rows := [][]any{{"Severity", "Type", "Title", "Description"}}
	for _, flag := range r.RedFlags.Flags {
		rows = append(rows, []any{string(flag.Severity), string(flag.Type), flag.Title, flag.Description})
	}
	return writeRows(f, sheetRedFlags, rows)
}

func writeInfluence(f *excelize.File, r app.Report) error {
	if _, err := f.NewSheet(sheetInfluence); err != nil {
		return err
	}

	rows := [][]any{
		{"Influence score", r.Influence.InfluenceScore},
		{"Donation concentration", r.Influence.Analysis.DonationConcentration},
		{"Avg voting alignment", r.Influence.Analysis.AvgVotingAlignment},
		{"Suspicious timing rate", r.Influence.Analysis.SuspiciousTimingRate},
		{},
		{"Industry", "Total donations", "Alignment %", "Related votes", "Suspicious votes"},
	}
	for _, ind := range r.Influence.TopIndustries {
		rows = append(rows, []any{ind.Industry, ind.TotalDonations, ind.VotingAlignment, ind.RelatedVotesCount, ind.SuspiciousVotes})
	}
	return writeRows(f, sheetInfluence, rows)
}

func writePromises(f *excelize.File, r app.Report) error {
	if _, err := f.NewSheet(sheetPromises); err != nil {
		return err
	}

	rows := [][]any{{"Status", "Category", "Promise", "Voted for", "Voted against"}}
	for _, p := range r.Promises.Promises {
		rows = append(rows, []any{string(p.Status), p.Category, p.PromiseText, p.TimesVotedFor, p.TimesVotedAgainst})
	}
	return writeRows(f, sheetPromises, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
