package crops

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a lexicon override workbook. The first sheet must carry
// a header row; accepted column aliases follow the same normalization as
// the rest of our config loaders.
func LoadXLSX(path string) (*Lexicon, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("lexicon sheet has no data rows")
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cKey := findAny("Keyword", "surface", "term")
	cCrop := findAny("Crop", "name", "canonical")
	cSeason := findAny("Season", "cropping_season")
	cYield := findAny("Yield", "yield_range", "expected_yield")
	if cKey == -1 || cCrop == -1 {
		return nil, errors.New("lexicon sheet missing Keyword/Crop columns")
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	var entries []Entry
	for _, rec := range rows[1:] {
		kw, name := get(rec, cKey), get(rec, cCrop)
		if kw == "" || name == "" {
			continue
		}
		season := get(rec, cSeason)
		if season == "" {
			season = "Kharif"
		}
		yield := get(rec, cYield)
		if yield == "" {
			yield = "12-18 quintals/acre"
		}
		entries = append(entries, Entry{Keyword: kw, Info: CropInfo{Name: name, Season: season, Yield: yield}})
	}
	if len(entries) == 0 {
		return nil, errors.New("lexicon sheet has no usable rows")
	}
	return New(entries), nil
}
