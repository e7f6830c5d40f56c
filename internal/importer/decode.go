package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"studentapi/internal/model"
)

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	errInvalidUTF8 = errors.New("content is not valid UTF-8 text")
	errNoSheets    = errors.New("workbook has no sheets")
)

// decodeText turns the uploaded bytes into text, dropping a leading byte order mark.
func decodeText(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return "", &DecodeError{Err: errInvalidUTF8}
	}
	return string(content), nil
}

// ParseCSV reads a comma-separated table whose first row names the fields.
// Header cells are trimmed, empty lines are skipped and rows whose column count
// differs from the header are reported together in a *ParseError.
func ParseCSV(content []byte) ([]model.RawRow, error) {
	text, err := decodeText(content)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, parseError(err)
	}
	header = trimHeader(header)

	var (
		rows   []model.RawRow
		issues []ParseIssue
	)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				issues = append(issues, issueFrom(pe))
				continue
			}
			issues = append(issues, parseError(err).Issues...)
			break
		}
		rows = append(rows, toRow(header, rec))
	}

	if len(issues) > 0 {
		return nil, &ParseError{Issues: issues}
	}
	return rows, nil
}

// ParseXLSX reads the first sheet of a workbook with the same header rules as ParseCSV.
// Rows with no content are skipped.
func ParseXLSX(content []byte) ([]model.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DecodeError{Err: errNoSheets}
	}
	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(table) == 0 {
		return nil, nil
	}

	header := trimHeader(table[0])
	rows := make([]model.RawRow, 0, len(table)-1)
	for _, rec := range table[1:] {
		if blank(rec) {
			continue
		}
		rows = append(rows, toRow(header, rec))
	}
	return rows, nil
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func toRow(header, rec []string) model.RawRow {
	row := make(model.RawRow, len(header))
	for j, h := range header {
		if j < len(rec) {
			row[h] = rec[j]
		}
	}
	return row
}

func blank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}

func issueFrom(pe *csv.ParseError) ParseIssue {
	return ParseIssue{Line: pe.StartLine, Column: pe.Column, Message: pe.Err.Error()}
}

func parseError(err error) *ParseError {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Issues: []ParseIssue{issueFrom(pe)}}
	}
	return &ParseError{Issues: []ParseIssue{{Message: err.Error()}}}
}
