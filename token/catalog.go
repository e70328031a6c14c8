package token

import (
	"reflect"
	"sync"

	"github.com/mabhi256/sdata/regex"
)

// Entry pairs a token category with its compiled pattern automata.
type Entry[C regex.Char] struct {
	Category Category
	Automata *regex.Automata[C]
}

// patternDef is one row of the static, width-independent pattern table.
// Order matters: the scanner tries patterns in this order and takes the
// first match, so more specific patterns (keywords, float) must precede
// more general ones (identifier, integer).
type patternDef struct {
	category Category
	pattern  string
}

var patternTable = []patternDef{
	{Empty, "_+"},
	{Separator, "','"},
	{EndSeq, "'}'"},
	{BegSeq, "'{'"},
	{Assign, "':'"},
	{Namespace, "'@' a {a|d}*"},
	{Boolean, "'true'|'false'"},
	{Float, "{'-'|'+'}? d+ '.' d+ 'f'?"},
	{Integer, "{'-'|'+'}? d+"},
	{Identifier, "a {a|d}*"},
	{Char, "q ^ q"},
	{String, "Q Q$"},
}

// catalogCache holds one compiled []Entry[C] per instantiated width,
// compiled lazily and at most once per width (sync.Once-style
// double-init protection), then shared read-only across all callers: a
// process-wide, immutable-after-init table.
var catalogCache sync.Map // map[reflect.Type]func() []Entry[C] (boxed as any)

// Catalog returns the compiled, priority-ordered token pattern table for
// width C, building it on first use.
func Catalog[C regex.Char]() []Entry[C] {
	var zero C
	key := reflect.TypeOf(zero)

	if cached, ok := catalogCache.Load(key); ok {
		return cached.(func() []Entry[C])()
	}

	build, _ := catalogCache.LoadOrStore(key, sync.OnceValue(buildCatalog[C]))
	return build.(func() []Entry[C])()
}

func buildCatalog[C regex.Char]() []Entry[C] {
	entries := make([]Entry[C], 0, len(patternTable))
	for _, def := range patternTable {
		automata, err := regex.Compile[C](def.pattern)
		if err != nil {
			// The pattern table is a fixed, compile-time constant; a
			// failure here is a programmer error in this package, not a
			// caller-facing condition.
			panic("token: static pattern table failed to compile: " + err.Error())
		}
		entries = append(entries, Entry[C]{Category: def.category, Automata: automata})
	}
	return entries
}
