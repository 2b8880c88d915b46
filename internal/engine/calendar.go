package engine

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
)

// Generator turns the address book into an iCalendar birthday feed.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the console to inject localized event titles.
	FormatSummary func(name string, age int) string
}

// WriteCalendar encodes one all-day event per contact with a birthday for
// the previous, current and next year, each with a reminder the day before.
// It returns the number of contacts that produced events.
func (g *Generator) WriteCalendar(w io.Writer, book *contact.Book) (int, error) {
	cal := ical.NewCalendar()

	// Set standard iCalendar headers
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	count := 0
	for _, r := range book.All() {
		if r.Birthday == nil {
			continue
		}
		count++
		for _, e := range g.createEvents(r, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		// A calendar without components is invalid, write the stub instead.
		_, err := io.WriteString(w, config.StubVCalendar)
		return 0, err
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, err
	}

	slog.Info(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
	)
	return count, nil
}

// createEvents generates events for CurrentYear-1, CurrentYear and CurrentYear+1,
// never before the year of birth.
func (g *Generator) createEvents(r *contact.Record, now time.Time) []*ical.Event {
	birthDate := *r.Birthday
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, r.ID, y, config.ICalDomain))

		age := y - birthDate.Year()
		summary := fmt.Sprintf(config.FallbackSummary, r.Name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(r.Name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 becomes March 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		addAlarm(event, config.ICalReminderTrigger, summary)
		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
