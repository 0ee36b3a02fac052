package report

import (
	"time"

	"tambua/internal/fine"
	"tambua/internal/printing"
	"tambua/validation"
)

const (
	TypeFines  = "fines"
	TypePrints = "prints"

	FormatPDF = "pdf"
	FormatCSV = "csv"

	ZoneAll = "all"
)

const (
	PeriodDaily      = "daily"
	PeriodWeekly     = "weekly"
	PeriodMonthly    = "monthly"
	PeriodQuarterly  = "quarterly"
	PeriodSemiannual = "semiannual"
	PeriodAnnual     = "annual"
)

var Periods = []string{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodSemiannual, PeriodAnnual}

var Zones = validation.Zones

type ReportRequest struct {
	Type   string `query:"type" validate:"required,oneof=fines prints"`
	Period string `query:"period" validate:"omitempty,oneof=daily weekly monthly quarterly semiannual annual"`
	Zone   string `query:"zone" validate:"omitempty,zone"`
	At     string `query:"at"`
}

type ExportReportRequest struct {
	ReportRequest
	Format string `query:"format" validate:"required,oneof=pdf csv"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Point struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

type Report struct {
	Type    string                `json:"type"`
	Period  string                `json:"period"`
	Zone    string                `json:"zone"`
	From    time.Time             `json:"from"`
	To      time.Time             `json:"to"`
	Summary []Stat                `json:"summary"`
	Pie     []Point               `json:"pie"`
	Bar     Series                `json:"bar"`
	Line    *Series               `json:"line,omitempty"`
	Fines   []fine.Fine           `json:"fines,omitempty"`
	Prints  []printing.Impression `json:"prints,omitempty"`
}

func (r Report) Len() int {
	if r.Type == TypeFines {
		return len(r.Fines)
	}
	return len(r.Prints)
}

type Export struct {
	FileName    string
	ContentType string
	Body        []byte
}
