// Package ui holds gomponents helpers shared by the page sections and the
// contact card.
package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders an Iconify lucide icon. name is the lucide id ("arrow-right");
// class sets size and colour.
func Icon(name, class string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes += " " + class
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+strings.TrimPrefix(name, "lucide:")),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge renders an icon inside a rounded tinted square.
func IconBadge(name, boxClass, iconClass string) g.Node {
	return Div(
		Class("flex items-center justify-center shrink-0 "+boxClass),
		Icon(name, iconClass),
	)
}

// Hx returns an htmx attribute, e.g. Hx("post", "/x") renders hx-post="/x".
func Hx(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}
