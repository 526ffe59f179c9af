// Command codegen renders currency_data.go from the ISO 4217 table in
// currency_data.csv. It is run from the module root by go generate.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

// reserved codes keep fixed positions so that the zero Currency is XXX.
var reserved = []string{"XXX", "XTS"}

func main() {
	dir := filepath.Join("scripts", "currency")
	currs, err := readCurrencies(filepath.Join(dir, "currency_data.csv"))
	if err != nil {
		fail(err)
	}
	code, err := render(filepath.Join(dir, "currency_data.tmpl"), currs)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile("currency_data.go", code, 0o644); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
	os.Exit(1)
}

func readCurrencies(filename string) ([]currency, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	r := csv.NewReader(in)
	r.FieldsPerRecord = 4
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 2 {
		return nil, fmt.Errorf("%v: no currencies", filename)
	}

	seen := map[string]bool{}
	seenNum := map[string]string{}
	currs := make([]currency, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		c, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%v line %v: %w", filename, i+2, err)
		}
		if seen[c.Code] {
			return nil, fmt.Errorf("%v line %v: duplicate code %v", filename, i+2, c.Code)
		}
		if prev, ok := seenNum[c.Num]; ok {
			return nil, fmt.Errorf("%v line %v: numeric code %v of %v is already used by %v", filename, i+2, c.Num, c.Code, prev)
		}
		seen[c.Code] = true
		seenNum[c.Num] = c.Code
		currs = append(currs, c)
	}
	for _, code := range reserved {
		if !seen[code] {
			return nil, fmt.Errorf("%v: missing reserved code %v", filename, code)
		}
	}

	slices.SortFunc(currs, func(a, b currency) int {
		ra, rb := slices.Index(reserved, a.Code), slices.Index(reserved, b.Code)
		switch {
		case ra >= 0 && rb >= 0:
			return ra - rb
		case ra >= 0:
			return -1
		case rb >= 0:
			return 1
		}
		return strings.Compare(a.Code, b.Code)
	})
	if len(currs) > 256 {
		return nil, fmt.Errorf("%v: %v currencies do not fit uint8", filename, len(currs))
	}
	return currs, nil
}

func parseRecord(rec []string) (currency, error) {
	c := currency{Name: rec[0], Code: rec[1], Num: rec[2]}
	if len(c.Code) != 3 || strings.ToUpper(c.Code) != c.Code {
		return currency{}, fmt.Errorf("code %q is not 3 uppercase letters", c.Code)
	}
	if _, err := strconv.Atoi(c.Num); err != nil || len(c.Num) != 3 {
		return currency{}, fmt.Errorf("numeric code %q is not 3 digits", c.Num)
	}
	scale, err := strconv.Atoi(rec[3])
	if err != nil || scale < 0 || scale > 4 {
		return currency{}, fmt.Errorf("scale %q is not in [0, 4]", rec[3])
	}
	c.Scale = scale
	return c, nil
}

func render(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.ParseFiles(filename)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, currs); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}
