package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/promptflow"
)

var (
	accent = lipgloss.Color("#00ff9f")
	dim    = lipgloss.Color("#6e7681")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	dimCellStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(dim)
	borderStyle  = lipgloss.NewStyle().Foreground(dim)
	successStyle = lipgloss.NewStyle().Foreground(accent)
)

// outputResult writes v as JSON with --json and as YAML otherwise.
func (a *app) outputResult(v any) error {
	if a.outputJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = a.out.Write(data)
	return err
}

// printSuccess prints a success message with checkmark.
func (a *app) printSuccess(format string, args ...any) {
	fmt.Fprintln(a.out, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// printDocuments renders docs as a table, or as JSON with --json.
func (a *app) printDocuments(docs []*promptflow.Document) error {
	if a.outputJSON {
		return a.outputResult(docs)
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "no documents")
		return nil
	}
	return writeTable(a.out, docs)
}

func writeTable(w io.Writer, docs []*promptflow.Document) error {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{
			string(d.Collection),
			d.ID,
			d.Title,
			strings.Join(d.Tags, ", "),
			strconv.Itoa(d.UseCount),
			d.UpdatedAt,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("COLLECTION", "ID", "TITLE", "TAGS", "USES", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == 5:
				return dimCellStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
