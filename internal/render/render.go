package render

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/futstats/fixture-insights/internal/domain/summary"
)

// ChartKind selects the output produced for a set of summary rows.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartTable ChartKind = "table"
)

var ErrUnsupportedChartKind = errors.New("unsupported chart kind")

// ParseChartKind maps a request value onto a known chart kind.
func ParseChartKind(value string) (ChartKind, bool) {
	switch ChartKind(strings.ToLower(strings.TrimSpace(value))) {
	case ChartBar:
		return ChartBar, true
	case ChartLine:
		return ChartLine, true
	case ChartTable:
		return ChartTable, true
	default:
		return "", false
	}
}

// Artifact is a rendered representation of summary rows, ready to be
// written to a file or an HTTP response.
type Artifact struct {
	Kind        ChartKind `json:"kind"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"data"`
}

// Summary renders rows in their given order. Groups with no resolved
// fixtures keep their slot: charts skip their data point and the table
// prints n/a rates.
func Summary(rows []summary.Row, kind ChartKind, title string) (Artifact, error) {
	switch kind {
	case ChartBar:
		return Artifact{Kind: kind, ContentType: "image/svg+xml", Data: barSVG(rows, title)}, nil
	case ChartLine:
		return Artifact{Kind: kind, ContentType: "image/svg+xml", Data: lineSVG(rows, title)}, nil
	case ChartTable:
		return Artifact{Kind: kind, ContentType: "text/plain; charset=utf-8", Data: tableText(rows)}, nil
	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnsupportedChartKind, kind)
	}
}

const (
	chartWidth   = 960
	chartHeight  = 420
	chartPadLeft = 56
	chartPadTop  = 48
	chartPadBot  = 72
	plotHeight   = chartHeight - chartPadTop - chartPadBot
)

func barSVG(rows []summary.Row, title string) []byte {
	var b strings.Builder
	writeSVGHeader(&b, title)

	slot := plotWidth() / maxInt(len(rows), 1)
	barWidth := maxInt(slot*3/5, 4)
	for i, row := range rows {
		x := chartPadLeft + i*slot + (slot-barWidth)/2
		if row.WinRate != nil {
			h := int(float64(plotHeight) * *row.WinRate)
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#2563eb"/>`+"\n",
				x, chartPadTop+plotHeight-h, barWidth, h)
		}
		writeGroupLabel(&b, chartPadLeft+i*slot+slot/2, row.Group)
	}

	b.WriteString(`</svg>` + "\n")
	return []byte(b.String())
}

func lineSVG(rows []summary.Row, title string) []byte {
	var b strings.Builder
	writeSVGHeader(&b, title)

	slot := plotWidth() / maxInt(len(rows), 1)
	var points []string
	for i, row := range rows {
		x := chartPadLeft + i*slot + slot/2
		writeGroupLabel(&b, x, row.Group)
		if row.WinRate == nil {
			continue
		}
		y := chartPadTop + plotHeight - int(float64(plotHeight)**row.WinRate)
		points = append(points, fmt.Sprintf("%d,%d", x, y))
		fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="4" fill="#2563eb"/>`+"\n", x, y)
	}
	if len(points) > 1 {
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="#2563eb" stroke-width="2"/>`+"\n",
			strings.Join(points, " "))
	}

	b.WriteString(`</svg>` + "\n")
	return []byte(b.String())
}

func writeSVGHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		chartWidth, chartHeight, chartWidth, chartHeight)
	fmt.Fprintf(b, `<text x="%d" y="28" font-family="sans-serif" font-size="18">%s</text>`+"\n",
		chartPadLeft, escapeSVG(title))
	// Axis line plus 0%/100% gridlines for the win-rate scale.
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#94a3b8"/>`+"\n",
		chartPadLeft, chartPadTop, chartPadLeft, chartPadTop+plotHeight)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#94a3b8"/>`+"\n",
		chartPadLeft, chartPadTop+plotHeight, chartWidth-16, chartPadTop+plotHeight)
}

func writeGroupLabel(b *strings.Builder, x int, group string) {
	fmt.Fprintf(b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>`+"\n",
		x, chartPadTop+plotHeight+20, escapeSVG(group))
}

func plotWidth() int {
	return chartWidth - chartPadLeft - 16
}

func tableText(rows []summary.Row) []byte {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tPLAYED\tRESOLVED\tW\tD\tL\tGF\tGA\tWIN%\tDRAW%\tLOSS%")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			row.Group, row.Played, row.Resolved,
			row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst,
			formatRate(row.WinRate), formatRate(row.DrawRate), formatRate(row.LossRate))
	}
	_ = w.Flush()
	return buf.Bytes()
}

func formatRate(rate *float64) string {
	if rate == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*rate*100, 'f', 1, 64)
}

func escapeSVG(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return replacer.Replace(s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
