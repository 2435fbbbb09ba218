package crops

import (
	"sort"
	"strings"
)

// CropInfo is one lexicon entry: the canonical crop plus display metadata.
type CropInfo struct {
	Name   string `json:"name"`
	Season string `json:"season"` // Kharif|Rabi|Zaid|Annual
	Yield  string `json:"yield"`  // display range, e.g. "12-15 quintals/acre"
}

// Lexicon maps surface-form keywords (English + transliterated Hindi) to
// crop metadata. Immutable after construction; safe for concurrent use.
type Lexicon struct {
	keywords []string
	entries  map[string]CropInfo
}

// Entry binds one surface-form keyword to its crop metadata.
type Entry struct {
	Keyword string
	Info    CropInfo
}

// New builds a lexicon from keyword entries. Keywords are lowercased;
// later duplicates of the same keyword are ignored.
func New(entries []Entry) *Lexicon {
	l := &Lexicon{entries: map[string]CropInfo{}}
	for _, e := range entries {
		k := strings.ToLower(strings.TrimSpace(e.Keyword))
		if k == "" {
			continue
		}
		if _, ok := l.entries[k]; ok {
			continue
		}
		l.entries[k] = e.Info
		l.keywords = append(l.keywords, k)
	}
	return l
}

// Default returns the built-in keyword table. Multiple surface forms
// (e.g. "wheat" and "gehu") map to the same canonical crop.
func Default() *Lexicon {
	chickpea := CropInfo{Name: "Chickpea", Season: "Rabi", Yield: "12-15 quintals/acre"}
	wheat := CropInfo{Name: "Wheat", Season: "Rabi", Yield: "18-22 quintals/acre"}
	rice := CropInfo{Name: "Rice", Season: "Kharif", Yield: "25-30 quintals/acre"}
	mung := CropInfo{Name: "Green Gram (Mung)", Season: "Kharif", Yield: "8-10 quintals/acre"}
	soybean := CropInfo{Name: "Soybean", Season: "Kharif", Yield: "12-15 quintals/acre"}
	maize := CropInfo{Name: "Maize", Season: "Kharif", Yield: "20-25 quintals/acre"}
	cotton := CropInfo{Name: "Cotton", Season: "Kharif", Yield: "15-18 quintals/acre"}
	sugarcane := CropInfo{Name: "Sugarcane", Season: "Annual", Yield: "300-350 quintals/acre"}
	mustard := CropInfo{Name: "Mustard", Season: "Rabi", Yield: "8-12 quintals/acre"}
	groundnut := CropInfo{Name: "Groundnut", Season: "Kharif", Yield: "10-12 quintals/acre"}

	return New([]Entry{
		{"chickpea", chickpea},
		{"chana", chickpea},
		{"wheat", wheat},
		{"gehu", wheat},
		{"rice", rice},
		{"paddy", rice},
		{"dhaan", rice},
		{"mung", mung},
		{"moong", mung},
		{"soybean", soybean},
		{"maize", maize},
		{"corn", maize},
		{"makka", maize},
		{"cotton", cotton},
		{"kapas", cotton},
		{"sugarcane", sugarcane},
		{"ganna", sugarcane},
		{"mustard", mustard},
		{"sarson", mustard},
		{"groundnut", groundnut},
		{"peanut", groundnut},
	})
}

// DefaultRotation is the fixed fallback sequence used when no known crop
// is mentioned: legume rotation restores soil nitrogen between cereals.
func DefaultRotation() []CropInfo {
	return []CropInfo{
		{Name: "Chickpea", Season: "Rabi", Yield: "12-15 quintals/acre"},
		{Name: "Rice", Season: "Kharif", Yield: "25-30 quintals/acre"},
		{Name: "Wheat", Season: "Rabi", Yield: "18-22 quintals/acre"},
	}
}

// Lookup returns the crops whose keywords appear anywhere in rawText
// (case-insensitive substring match), deduplicated by canonical name and
// ordered by the position of the first mention in the text.
func (l *Lexicon) Lookup(rawText string) []CropInfo {
	low := strings.ToLower(rawText)

	type hit struct {
		pos  int
		info CropInfo
	}
	seen := map[string]int{} // canonical name -> index into hits
	var hits []hit
	for _, k := range l.keywords {
		pos := strings.Index(low, k)
		if pos < 0 {
			continue
		}
		info := l.entries[k]
		if i, ok := seen[info.Name]; ok {
			if pos < hits[i].pos {
				hits[i].pos = pos
			}
			continue
		}
		seen[info.Name] = len(hits)
		hits = append(hits, hit{pos: pos, info: info})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]CropInfo, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.info)
	}
	return out
}

// ByName returns the entry for a canonical crop name, if known.
func (l *Lexicon) ByName(name string) (CropInfo, bool) {
	for _, k := range l.keywords {
		if info := l.entries[k]; info.Name == name {
			return info, true
		}
	}
	return CropInfo{}, false
}

// Len reports the number of distinct keywords.
func (l *Lexicon) Len() int { return len(l.keywords) }
