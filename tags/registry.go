// Package tags holds the registry of legal markup tag names and the
// exported surface of the lisplet.dom browser runtime.
package tags

import "sort"

// TextTag and CommentTag are the pseudo-tags used to carry character
// data and comments through the form pipeline. They are legal heads
// like any element tag.
const (
	TextTag    = "%text"
	CommentTag = "%comment"
)

// legalTags is the closed set of tag names the normalizer accepts.
// It covers the current element vocabulary plus the legacy names still
// found in pages in the wild; anything outside it becomes a div.
var legalTags = map[string]bool{
	// Document structure
	"html": true, "head": true, "body": true, "title": true,
	"base": true, "link": true, "meta": true, "style": true,
	"script": true, "noscript": true, "template": true, "slot": true,

	// Sections and headings
	"article": true, "aside": true, "footer": true, "header": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hgroup": true, "main": true, "nav": true, "section": true,
	"address": true,

	// Grouping content
	"blockquote": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "hr": true, "li": true,
	"menu": true, "ol": true, "p": true, "pre": true, "ul": true,

	// Text-level semantics
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "cite": true, "code": true, "data": true, "dfn": true,
	"em": true, "i": true, "kbd": true, "mark": true, "q": true,
	"rb": true, "rp": true, "rt": true, "rtc": true, "ruby": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
	"wbr": true,

	// Edits
	"del": true, "ins": true,

	// Embedded content
	"area": true, "audio": true, "canvas": true, "embed": true,
	"iframe": true, "img": true, "map": true, "object": true,
	"param": true, "picture": true, "source": true, "track": true,
	"video": true,

	// Tables
	"caption": true, "col": true, "colgroup": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true,

	// Forms
	"button": true, "datalist": true, "fieldset": true, "form": true,
	"input": true, "label": true, "legend": true, "meter": true,
	"optgroup": true, "option": true, "output": true, "progress": true,
	"select": true, "textarea": true,

	// Interactive elements
	"details": true, "dialog": true, "summary": true,

	// Legacy and obsolete names kept for pages in the wild
	"acronym": true, "applet": true, "basefont": true, "big": true,
	"center": true, "dir": true, "font": true, "frame": true,
	"frameset": true, "marquee": true, "nobr": true, "noframes": true,
	"strike": true, "tt": true, "xmp": true,

	// Pseudo-tags
	TextTag: true, CommentTag: true,
}

// IsLegal reports whether name is a legal tag head, pseudo-tags
// included.
func IsLegal(name string) bool {
	return legalTags[name]
}

// All returns every legal tag name in sorted order. The slice is freshly
// allocated on each call.
func All() []string {
	names := make([]string, 0, len(legalTags))
	for name := range legalTags {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Count returns the number of legal tag names.
func Count() int {
	return len(legalTags)
}
