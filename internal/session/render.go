package session

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
)

type styles struct {
	prompt lipgloss.Style
	header lipgloss.Style
	err    lipgloss.Style
	border lipgloss.Style
	cell   lipgloss.Style
}

// newStyles binds the styles to out so color detection follows the actual
// output stream rather than the process stdout.
func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		border: r.NewStyle().Foreground(lipgloss.Color("63")),
		cell:   r.NewStyle().Padding(0, 1),
	}
}

// renderTable lays the records out as a bordered table, one row per contact.
func (s *Session) renderTable(records []*contact.Record) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		bday := ""
		if r.Birthday != nil {
			bday = contact.FormatBirthday(*r.Birthday)
		}
		rows[i] = []string{r.Name, strings.Join(r.Phones, "; "), bday, r.Email, strings.Join(r.Tags, ", ")}
	}

	head := s.styles.cell.Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return s.styles.cell
		}).
		Headers(
			s.t(config.TKeyColName, nil),
			s.t(config.TKeyColPhones, nil),
			s.t(config.TKeyColBirthday, nil),
			s.t(config.TKeyColEmail, nil),
			s.t(config.TKeyColTags, nil),
		).
		Rows(rows...)
	return t.String()
}
