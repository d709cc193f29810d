package cronjob

import (
	"fmt"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
	"github.com/paracal/paracal-backend-go/internal/pkg/webhook"
)

const displayDate = "Mon, 02 Jan 2006"

func messageEvents(events []event.LeaveEvent) []webhook.MessageEvent {
	out := make([]webhook.MessageEvent, 0, len(events))
	for _, e := range events {
		start, end := e.EffectiveRange()
		me := webhook.MessageEvent{
			EmployeeName: e.EmployeeName,
			LeaveType:    string(e.LeaveType),
			StartDate:    utils.FormatDate(start),
			EndDate:      utils.FormatDate(end),
		}
		if e.Description != nil {
			me.Description = *e.Description
		}
		out = append(out, me)
	}
	return out
}

func eventLines(events []event.LeaveEvent) string {
	var b strings.Builder
	for _, e := range events {
		start, end := e.EffectiveRange()
		fmt.Fprintf(&b, "- %s (%s)", e.EmployeeName, e.LeaveType)
		if start.Equal(end) {
			fmt.Fprintf(&b, " %s", utils.FormatDate(start))
		} else {
			fmt.Fprintf(&b, " %s to %s", utils.FormatDate(start), utils.FormatDate(end))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// DailyMessage describes who is away on target.
func DailyMessage(target time.Time, events []event.LeaveEvent, customMessage string) webhook.Message {
	title := fmt.Sprintf("Leave notification for %s", target.Format(displayDate))
	summary := fmt.Sprintf("%d employee(s) on leave on %s", len(events), utils.FormatDate(target))

	text := summary
	if len(events) > 0 {
		text += "\n" + eventLines(events)
	}

	return webhook.Message{
		Title:         title,
		Text:          text,
		Summary:       summary,
		Events:        messageEvents(events),
		CustomMessage: customMessage,
	}
}

// WeeklyMessage lists the leave overlapping [weekStart, weekEnd]. It is sent even when empty.
func WeeklyMessage(weekStart, weekEnd time.Time, events []event.LeaveEvent, customMessage string) webhook.Message {
	title := fmt.Sprintf("Weekly leave summary %s - %s", weekStart.Format(displayDate), weekEnd.Format(displayDate))

	var summary, text string
	if len(events) == 0 {
		summary = "No leave scheduled this week"
		text = summary
	} else {
		summary = fmt.Sprintf("%d leave event(s) between %s and %s", len(events), utils.FormatDate(weekStart), utils.FormatDate(weekEnd))
		text = summary + "\n" + eventLines(events)
	}

	return webhook.Message{
		Title:         title,
		Text:          text,
		Summary:       summary,
		Events:        messageEvents(events),
		CustomMessage: customMessage,
	}
}
