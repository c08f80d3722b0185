package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	dcf77 "github.com/complex-gh/dcf77_go"
	"github.com/complex-gh/dcf77_go/lang"
)

// frameView is the printable form of a decoded frame
type frameView struct {
	Carrier string   `json:"carrier" yaml:"carrier"`
	Bits    string   `json:"bits" yaml:"bits"`
	Text    string   `json:"text" yaml:"text"`
	Year    int      `json:"year" yaml:"year"`
	Month   uint32   `json:"month" yaml:"month"`
	Day     uint32   `json:"day" yaml:"day"`
	Weekday uint32   `json:"weekday" yaml:"weekday"`
	Hour    uint32   `json:"hour" yaml:"hour"`
	Minute  uint32   `json:"minute" yaml:"minute"`
	Flags   []string `json:"flags" yaml:"flags"`
	Valid   bool     `json:"valid" yaml:"valid"`
	Problem string   `json:"problem,omitempty" yaml:"problem,omitempty"`
}

func newFrameView(c dcf77.Carrier, f dcf77.Frame, l *lang.Language, pivot int) frameView {
	year := dcf77.ExpandYear(int(f.Year), pivot)
	zone := f.Location().String()
	v := frameView{
		Carrier: c.String(),
		Bits:    c.Bits(),
		Text:    l.Format(year, int(f.Month), int(f.Day), int(f.Weekday), int(f.Hour), int(f.Minute), zone),
		Year:    year,
		Month:   f.Month,
		Day:     f.Day,
		Weekday: f.Weekday,
		Hour:    f.Hour,
		Minute:  f.Minute,
		Flags:   f.Flags.Names(),
		Valid:   true,
	}
	if err := f.Validate(pivot); err != nil {
		v.Valid = false
		v.Problem = err.Error()
	}
	return v
}

// printer writes views in the configured format
type printer struct {
	format string
	out    io.Writer
	yaml   *yaml.Encoder
	json   *json.Encoder
}

func newPrinter(format string, out io.Writer) *printer {
	p := &printer{format: format, out: out}
	switch format {
	case "yaml":
		p.yaml = yaml.NewEncoder(out)
		p.yaml.SetIndent(2)
	case "json":
		p.json = json.NewEncoder(out)
	}
	return p
}

func (p *printer) print(v any, text string) error {
	switch p.format {
	case "yaml":
		return p.yaml.Encode(v)
	case "json":
		return p.json.Encode(v)
	}
	_, err := fmt.Fprintln(p.out, text)
	return err
}

func (p *printer) close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
