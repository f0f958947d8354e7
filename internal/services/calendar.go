package services

import (
	"time"

	"github.com/6tail/lunar-go/HolidayUtil"
	"github.com/6tail/lunar-go/calendar"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/us"

	"github.com/praxishq/praxis/internal/models"
)

// WorkCalendar resolves work days, holiday names and each employee's
// daily-hour target. The workload engine depends on this interface only,
// so tests can substitute a fixed calendar.
type WorkCalendar interface {
	IsWorkDay(t time.Time) bool
	HolidayName(t time.Time) string
	// DailyTarget returns the employee's daily-hour target, or an error
	// when the target is missing or invalid. Callers must not default.
	DailyTarget(emp *models.Employee) (float64, error)
}

// RegionCalendar implements WorkCalendar for a configured country, built on
// statutory holiday calendars. China uses the official work/rest-day
// adjustments, everything else a business calendar; unknown regions fall
// back to plain Monday-Friday weeks.
type RegionCalendar struct {
	country   string
	calendars map[string]*cal.BusinessCalendar
}

func NewRegionCalendar(countryCode string) *RegionCalendar {
	s := &RegionCalendar{
		country:   countryCode,
		calendars: make(map[string]*cal.BusinessCalendar),
	}
	s.initCalendars()
	return s
}

func (s *RegionCalendar) initCalendars() {
	s.calendars["US"] = s.createCalendar("United States", us.Holidays...)
	s.calendars["GB"] = s.createCalendar("United Kingdom", gb.Holidays...)
	s.calendars["DE"] = s.createCalendar("Germany", de.Holidays...)
	s.calendars["FR"] = s.createCalendar("France", fr.Holidays...)
	s.calendars["JP"] = s.createCalendar("Japan", jp.Holidays...)
	s.calendars["AU"] = s.createCalendar("Australia", au.HolidaysNSW...)
	s.calendars["CA"] = s.createCalendar("Canada", ca.Holidays...)
	s.calendars["IT"] = s.createCalendar("Italy", it.Holidays...)
	s.calendars["ES"] = s.createCalendar("Spain", es.Holidays...)
	s.calendars["NL"] = s.createCalendar("Netherlands", nl.Holidays...)
}

func (s *RegionCalendar) createCalendar(name string, holidays ...*cal.Holiday) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = name
	c.AddHoliday(holidays...)
	return c
}

func (s *RegionCalendar) IsWorkDay(t time.Time) bool {
	if s.country == "CN" {
		return s.isWorkdayChina(t)
	}

	c, ok := s.calendars[s.country]
	if !ok {
		return !cal.IsWeekend(t)
	}

	return c.IsWorkday(t)
}

func (s *RegionCalendar) isWorkdayChina(t time.Time) bool {
	solar := calendar.NewSolarFromDate(t)
	holiday := HolidayUtil.GetHolidayByYmd(solar.GetYear(), solar.GetMonth(), solar.GetDay())

	if holiday != nil {
		return holiday.IsWork()
	}

	weekday := t.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

func (s *RegionCalendar) HolidayName(t time.Time) string {
	if s.country == "CN" {
		solar := calendar.NewSolarFromDate(t)
		holiday := HolidayUtil.GetHolidayByYmd(solar.GetYear(), solar.GetMonth(), solar.GetDay())
		if holiday != nil && !holiday.IsWork() {
			return holiday.GetName()
		}
		return ""
	}

	c, ok := s.calendars[s.country]
	if !ok {
		return ""
	}

	actual, observed, h := c.IsHoliday(t)
	if (actual || observed) && h != nil {
		return h.Name
	}
	return ""
}

func (s *RegionCalendar) DailyTarget(emp *models.Employee) (float64, error) {
	if emp == nil {
		return 0, &ConfigError{Reason: "employee record missing"}
	}
	if emp.DailyHourTarget <= 0 || emp.DailyHourTarget > 24 {
		return 0, &ConfigError{
			EmployeeID: emp.ID,
			Reason:     "daily hour target missing or invalid",
		}
	}
	return emp.DailyHourTarget, nil
}
