// Package locale holds the fixed table of supported site languages and the
// resolver that turns a client cookie value into one of them.
package locale

import (
	"golang.org/x/text/language"
)

// Direction is the text direction a page is rendered with.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// DefaultCode is used whenever the client did not pick a supported language.
const DefaultCode = "ar"

// Locale is one supported site language.
type Locale struct {
	Code string       `json:"code"`
	Tag  language.Tag `json:"-"`
	Name string       `json:"name"`
	Dir  Direction    `json:"dir"`
}

// RTL reports whether pages in this locale are laid out right-to-left.
func (l Locale) RTL() bool { return l.Dir == RTL }

// Table is the immutable set of supported locales. Build it once with
// NewTable and share the pointer; nothing mutates it afterwards.
type Table struct {
	byCode map[string]Locale
	order  []Locale
	def    Locale
}

// NewTable returns the table of the seven supported languages, Arabic first.
func NewTable() *Table {
	entries := []struct {
		tag  language.Tag
		name string
	}{
		{language.Arabic, "العربية"},
		{language.English, "English"},
		{language.Chinese, "中文"},
		{language.Japanese, "日本語"},
		{language.German, "Deutsch"},
		{language.French, "Français"},
		{language.Spanish, "Español"},
	}

	t := &Table{byCode: make(map[string]Locale, len(entries))}
	for _, e := range entries {
		code := e.tag.String()
		l := Locale{Code: code, Tag: e.tag, Name: e.name, Dir: directionOf(code)}
		t.byCode[code] = l
		t.order = append(t.order, l)
	}
	t.def = t.byCode[DefaultCode]
	return t
}

func directionOf(code string) Direction {
	if code == DefaultCode {
		return RTL
	}
	return LTR
}

// Lookup returns the locale for an exact, case-sensitive code.
func (t *Table) Lookup(code string) (Locale, bool) {
	l, ok := t.byCode[code]
	return l, ok
}

// Supported reports whether code is a member of the table.
func (t *Table) Supported(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// All returns the locales in display order. The slice is a copy.
func (t *Table) All() []Locale {
	out := make([]Locale, len(t.order))
	copy(out, t.order)
	return out
}

// Default returns the fallback locale (Arabic).
func (t *Table) Default() Locale { return t.def }

// Resolver derives the active locale for a request.
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver over table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Table exposes the supported set the resolver validates against.
func (r *Resolver) Table() *Table { return r.table }

// Resolve maps a raw cookie value to a supported locale. An empty or unknown
// value yields the default; it never fails.
func (r *Resolver) Resolve(raw string) Locale {
	if l, ok := r.table.Lookup(raw); ok {
		return l
	}
	return r.table.Default()
}

// Cookie names the language preference is persisted under.
const (
	CookieName     = "lang"
	NameCookieName = "langName"
)
