package render

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// booleanAttrs render as a bare name when their value is empty.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true, "async": true, "autofocus": true, "autoplay": true,
	"checked": true, "controls": true, "default": true, "defer": true,
	"disabled": true, "formnovalidate": true, "hidden": true, "inert": true,
	"ismap": true, "loop": true, "multiple": true, "muted": true,
	"novalidate": true, "open": true, "playsinline": true, "readonly": true,
	"required": true, "reversed": true, "selected": true,
}

// inlineElements stay on one line in pretty output.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "code": true, "em": true, "i": true,
	"label": true, "option": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "textarea": true, "time": true,
}
