package report

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jszwec/csvutil"
	isatty "github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"place-distance/internal/excel"
	"place-distance/internal/models"
)

type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

var Formats = []Format{FormatPlain, FormatTable, FormatCSV, FormatXLSX}

const (
	DefaultOutput = "distances.xlsx"
	sheetName     = "Distances"
)

func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatPlain, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format '%s', expected one of %v", s, Formats)
}

type Options struct {
	// Color is "yes", "no" or "auto".
	Color string
	// Output is the workbook path for the xlsx format.
	Output string
}

// Writer renders distance results. Rows always follow enumeration order.
type Writer struct {
	out  io.Writer
	opts Options
}

func NewWriter(out io.Writer, opts Options) *Writer {
	return &Writer{out: out, opts: opts}
}

func (w *Writer) Write(format Format, results []models.Result, summary models.Summary) error {
	switch format {
	case FormatPlain, "":
		return w.plain(results, summary)
	case FormatTable:
		return w.table(results, summary)
	case FormatCSV:
		return w.csv(results)
	case FormatXLSX:
		return w.xlsx(results)
	default:
		return fmt.Errorf("invalid format '%s'", format)
	}
}

func (w *Writer) plain(results []models.Result, summary models.Summary) error {
	width := 0
	for _, r := range results {
		width = max(width, utf8.RuneCountInString(r.Pair.A.Name), utf8.RuneCountInString(r.Pair.B.Name))
	}
	width += 2

	for _, r := range results {
		if _, err := fmt.Fprintf(w.out, "%-*s\t%-*s\t%10.1f km\n", width, r.Pair.A.Name, width, r.Pair.B.Name, r.DistanceKm); err != nil {
			return err
		}
	}

	c := summary.Closest
	_, err := fmt.Fprintf(w.out, "Average distance: %.1f km. Closest pair: %s – %s %.1f km.\n",
		summary.AverageKm, c.Pair.A.Name, c.Pair.B.Name, c.DistanceKm)
	return err
}

func shouldColorize(wantColor string, out io.Writer) bool {
	switch wantColor {
	case "yes":
		return true
	case "no":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (w *Writer) table(results []models.Result, summary models.Summary) error {
	t := table.NewWriter()
	t.SetOutputMirror(w.out)

	style := table.StyleDefault
	if shouldColorize(w.opts.Color, w.out) {
		style = table.StyleRounded
		style.Color.Header = text.Colors{text.Italic}
		style.Color.Border = text.Colors{text.FgHiBlack}
		style.Color.Separator = text.Colors{text.FgHiBlack}
	}
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)

	t.AppendHeader(table.Row{"#", "Place A", "Place B", "Distance (km)"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, r.Pair.A.Name, r.Pair.B.Name, fmt.Sprintf("%.1f", r.DistanceKm)})
	}

	c := summary.Closest
	t.AppendFooter(table.Row{"", "Average", fmt.Sprintf("closest: %s – %s", c.Pair.A.Name, c.Pair.B.Name), fmt.Sprintf("%.1f", summary.AverageKm)})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
	return nil
}

type csvRow struct {
	PlaceA     string  `csv:"place_a"`
	LatA       float64 `csv:"lat_a"`
	LonA       float64 `csv:"lon_a"`
	PlaceB     string  `csv:"place_b"`
	LatB       float64 `csv:"lat_b"`
	LonB       float64 `csv:"lon_b"`
	DistanceKm float64 `csv:"distance_km"`
}

func (w *Writer) csv(results []models.Result) error {
	rows := make([]csvRow, len(results))
	for i, r := range results {
		a, b := r.Pair.A, r.Pair.B
		rows[i] = csvRow{
			PlaceA: a.Name, LatA: a.Loc.Lat, LonA: a.Loc.Lon,
			PlaceB: b.Name, LatB: b.Loc.Lat, LonB: b.Loc.Lon,
			DistanceKm: r.DistanceKm,
		}
	}

	content, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("unable to marshal csv: %w", err)
	}

	_, err = w.out.Write(content)
	return err
}

func (w *Writer) xlsx(results []models.Result) error {
	path := w.opts.Output
	if path == "" {
		path = DefaultOutput
	}

	if err := excel.WriteResult(path, results, sheetName); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	log.Infof("%d distances written to %s", len(results), path)
	return nil
}
