package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/rosterkeeper/internal/client/roster"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
)

var (
	titleOK  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD787"))
	titleErr = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	muted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	header   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cell     = lipgloss.NewStyle().Padding(0, 1)
)

// printer serialises output from the REPL and from settling operations,
// and doubles as the roster's Notifier.
type printer struct {
	mu sync.Mutex
	w  io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w.Write(b)
}

func (p *printer) Println(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, args...)
}

func (p *printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) Notify(n roster.Notification) {
	p.Println(renderNotification(n))
}

func renderNotification(n roster.Notification) string {
	style := titleOK
	if n.Kind == roster.KindError {
		style = titleErr
	}
	return style.Render(n.Title+":") + " " + n.Message
}

// renderRoster draws the mirror as a table. Rows whose email is being sent
// are marked in the last column.
func renderRoster(list []models.Employee, sending func(id string) bool) string {
	if len(list) == 0 {
		return muted.Render("No employees found. Use 'add' to create one.")
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		mark := ""
		if sending(e.ID) {
			mark = "sending…"
		}
		rows = append(rows, []string{e.ID, e.Name, e.EmployeeNumber, e.Email, e.Phone, mark})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(muted).
		Headers("ID", "NAME", "NUMBER", "EMAIL", "PHONE", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String()
}
