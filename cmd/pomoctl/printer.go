package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pomo-lab/domain"
	"pomo-lab/domain/event"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type printer struct {
	w       io.Writer
	colours bool
}

func newPrinter(w io.Writer, colours bool) printer {
	return printer{w: w, colours: colours}
}

func (p printer) paint(style color.Style, s string) string {
	if !p.colours {
		return s
	}
	return style.Render(s)
}

func (p printer) failure(err error) string {
	return p.paint(color.New(color.FgRed, color.OpBold), "error: ") + err.Error()
}

func (p printer) success(msg string) {
	fmt.Fprintln(p.w, p.paint(color.New(color.FgGreen), msg))
}

func (p printer) table(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// clock formats seconds as mm:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (p printer) snapshot(s domain.Snapshot) {
	headline := fmt.Sprintf("%s's session · %s · %s left · %d pomodoro(s) · %d min worked",
		s.OwnerID, s.Phase, clock(s.RemainingSeconds), s.SessionCount, s.TotalWork)
	style := color.New(color.FgCyan, color.OpBold)
	if s.State == domain.Paused {
		headline += " · paused"
		style = color.New(color.FgYellow, color.OpBold)
	}
	fmt.Fprintln(p.w, p.paint(style, headline))
	fmt.Fprintf(p.w, "work %dm · short break %dm · long break %dm every %d\n",
		s.Config.WorkMinutes, s.Config.ShortBreakMinutes, s.Config.LongBreakMinutes, s.Config.LongBreakInterval)

	table := p.table("Member", "Minutes", "Role")
	for _, m := range s.Members {
		role := "participant"
		if m == s.OwnerID {
			role = "owner"
		}
		table.Append([]string{m, strconv.Itoa(s.SessionWork[m]), role})
	}
	table.Render()
}

func (p printer) sessions(list []domain.Snapshot) {
	if len(list) == 0 {
		fmt.Fprintln(p.w, "no active session")
		return
	}
	table := p.table("Owner", "Space", "Phase", "State", "Remaining", "Pomodoros", "Members")
	for _, s := range list {
		table.Append([]string{
			s.OwnerID,
			s.SpaceID,
			s.Phase.String(),
			string(s.State),
			clock(s.RemainingSeconds),
			strconv.Itoa(s.SessionCount),
			strings.Join(s.Members, ","),
		})
	}
	table.Render()
}

func (p printer) stats(r domain.StatsRecord) {
	table := p.table("User", "Minutes", "Hours", "Sessions")
	table.Append([]string{
		r.UserID,
		strconv.FormatInt(r.TotalMinutes, 10),
		fmt.Sprintf("%.1f", float64(r.TotalMinutes)/60),
		strconv.FormatInt(r.TotalSessions, 10),
	})
	table.Render()
}

func (p printer) timeline(entries []event.Notification) {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, "no notification yet")
		return
	}
	table := p.table("At", "Kind", "Phase", "Pomodoros", "Detail")
	for _, n := range entries {
		table.Append([]string{
			n.At.Local().Format("15:04:05"),
			string(n.Kind),
			n.Phase.String(),
			strconv.Itoa(n.SessionCount),
			detail(n),
		})
	}
	table.Render()
}

func detail(n event.Notification) string {
	switch n.Kind {
	case event.PhaseStarted, event.SessionStarted:
		return fmt.Sprintf("%d min", n.PhaseMinutes)
	case event.Progress:
		return fmt.Sprintf("%d min left", n.RemainingMinutes)
	case event.WorkCompleted:
		return "credited " + strings.Join(n.Credited, ",")
	case event.CreditFailed:
		return n.UserID + ": " + n.Error
	case event.ParticipantAdded, event.ParticipantLeft:
		return n.UserID
	case event.SessionStopped, event.PresenceLost:
		parts := make([]string, 0, len(n.SessionWork))
		for _, m := range n.Members {
			parts = append(parts, fmt.Sprintf("%s=%dm", m, n.SessionWork[m]))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
