package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/syncflow/syncflow/internal/contract"
	"github.com/syncflow/syncflow/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteSuggestions outputs advisory notes for an intent, dispatching on
// the configured output format.
func WriteSuggestions(suggestions []schema.Suggestion, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Suggestions []schema.Suggestion `json:"suggestions"`
			}{Suggestions: suggestions})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSuggestionCSV(w, suggestions)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSuggestionTable(w, suggestions, cfg)
		}, "Wrote table")
	}
}

// writeSuggestionTable renders suggestions as a table, or a short note
// when there is nothing to flag.
func writeSuggestionTable(w io.Writer, suggestions []schema.Suggestion, cfg *contract.Config) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "Nothing to flag. The request looks reasonable as-is.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Suggestion"})
	var data [][]string
	for _, s := range suggestions {
		data = append(data, []string{
			string(s.Type),
			truncate(s.Message, getMaxValueWidth(cfg)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSuggestionCSV writes type, message and action rows.
func writeSuggestionCSV(w io.Writer, suggestions []schema.Suggestion) error {
	header := []string{"type", "message", "action"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range suggestions {
			if err := cw.Write([]string{string(s.Type), s.Message, s.Action}); err != nil {
				return err
			}
		}
		return nil
	})
}
