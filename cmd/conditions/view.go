package conditions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var condTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var condInfoStyle = lipgloss.NewStyle().Faint(true)
var condErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
var condLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

const predTimeLayout = "2006-01-02 15:04"

// View renders the conditions pane: a chart of today's tide predictions
// followed by the extracted wind and wave observations.
func View(data *Data) string {
	b := &strings.Builder{}
	b.WriteString(condTitleStyle.Render("Conditions"))
	b.WriteString("\n")
	if data == nil {
		b.WriteString(condInfoStyle.Render("No stations configured yet. Configure in $HOME/.surf.yaml"))
		return b.String()
	}
	if data.stations.TideStation != "" {
		b.WriteString("Tide station: ")
		b.WriteString(data.stations.TideStation)
		b.WriteString("\n")
	}
	renderTide(b, data)
	renderRecord(b, "Wind", data.wind, data.windErr)
	renderRecord(b, "Waves", data.wave, data.waveErr)
	return b.String()
}

// renderRecord prints one extractor's observations as label/value lines.
func renderRecord(b *strings.Builder, title string, rec Record, err error) {
	b.WriteString("\n")
	b.WriteString(condTitleStyle.Render(title))
	b.WriteString("\n")
	if err != nil {
		b.WriteString(condErrStyle.Render(err.Error()))
		b.WriteString("\n")
		return
	}
	if len(rec) == 0 {
		b.WriteString(condInfoStyle.Render("no observations"))
		b.WriteString("\n")
		return
	}
	for _, o := range rec {
		b.WriteString(condLabelStyle.Render(o.Label + ": "))
		b.WriteString(o.DisplayValue())
		b.WriteString("\n")
	}
}

// renderTide draws a braille timeseries of today's tide predictions with a
// current-time marker, when there are enough points to chart.
func renderTide(b *strings.Builder, data *Data) {
	if data.tideErr != nil {
		b.WriteString(condErrStyle.Render("tide error: "))
		b.WriteString(condErrStyle.Render(data.tideErr.Error()))
		b.WriteString("\n")
		return
	}
	if data.tide == nil || len(data.tide.Predictions) < 2 {
		b.WriteString(condInfoStyle.Render("Insufficient tide points"))
		b.WriteString("\n")
		return
	}
	pts := data.tide.Predictions
	var minTime, maxTime time.Time
	values := make([]float64, len(pts))
	parsedTimes := make([]time.Time, len(pts))
	n := 0
	for _, p := range pts {
		// Station-local timestamps (time_zone=lst_ldt in the query).
		tm, err := time.ParseInLocation(predTimeLayout, p.Time, time.Local)
		if err != nil {
			continue // skip malformed
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		parsedTimes[n] = tm
		values[n] = v
		if n == 0 || tm.Before(minTime) {
			minTime = tm
		}
		if n == 0 || tm.After(maxTime) {
			maxTime = tm
		}
		n++
	}
	if n < 2 {
		b.WriteString(condInfoStyle.Render("No parsable tide points"))
		b.WriteString("\n")
		return
	}
	parsedTimes = parsedTimes[:n]
	values = values[:n]
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV == maxV { // add small padding
		maxV += 0.1
		minV -= 0.1
	}
	width := 42
	height := 10
	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minTime, maxTime)
	lc.SetViewTimeAndYRange(minTime, maxTime, minV, maxV)
	// Aim for roughly one X label per hour.
	hours := int(maxTime.Sub(minTime).Hours())
	if hours <= 0 {
		hours = 1
	}
	xStep := 1
	if hours < lc.GraphWidth() {
		xStep = lc.GraphWidth() / hours
		if xStep < 1 {
			xStep = 1
		}
	}
	lc.SetXStep(xStep)
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).In(time.Local).Format("15:04")
	}
	for i, tm := range parsedTimes {
		lc.Push(timeserieslinechart.TimePoint{Time: tm, Value: values[i]})
	}
	lc.DrawBraille()
	// mark current time with a vertical line if within range
	now := time.Now()
	inRange := (now.Equal(minTime) || now.After(minTime)) && (now.Equal(maxTime) || now.Before(maxTime))
	if inRange {
		viewMin := lc.Model.ViewMinX()
		viewMax := lc.Model.ViewMaxX()
		if viewMax > viewMin {
			xRel := (float64(now.Unix()) - viewMin) / (viewMax - viewMin)
			if xRel < 0 {
				xRel = 0
			} else if xRel > 1 {
				xRel = 1
			}
			col := int(math.Round(xRel * float64(lc.GraphWidth()-1)))
			col += lc.Model.Origin().X
			if lc.Model.YStep() > 0 {
				col += 1
			}
			if col >= 0 && col < lc.Canvas.Width() {
				lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
				for y := 0; y < lc.Model.Origin().Y; y++ {
					lc.Canvas.SetCell(canvas.Point{X: col, Y: y}, canvas.NewCellWithStyle('│', lineStyle))
				}
			}
		}
	}
	b.WriteString("Tide (ft) timeseries:\n")
	b.WriteString(lc.View())
	b.WriteString("\n")
	legendStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	b.WriteString(legendStyle.Render("─"))
	b.WriteString(" ")
	b.WriteString(condInfoStyle.Render("Predicted tide"))
	b.WriteString("\n")
	if inRange {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Render("│"))
		b.WriteString(" ")
		b.WriteString(condInfoStyle.Render("Current time"))
		b.WriteString("\n")
	}
	tzName, _ := minTime.Zone()
	b.WriteString(condInfoStyle.Render(fmt.Sprintf("min %.2f ft / max %.2f ft | %s - %s %s", minV, maxV, minTime.Format("15:04"), maxTime.Format("15:04"), tzName)))
	b.WriteString("\n")
}
