package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func Logo(b Brand) g.Node {
	return A(
		Href("#"),
		Class("flex items-center gap-2 group"),
		ui.IconBadge("activity", "w-10 h-10 bg-emerald-600 rounded-xl text-white group-hover:scale-105 transition-transform", "w-6 h-6"),
		Span(
			Class("text-xl font-bold tracking-tight text-white"),
			g.Text(b.Name),
			Span(Class("text-emerald-500"), g.Text(b.Accent)),
		),
	)
}

// sectionHeading is the centred title and lead paragraph most sections open with.
func sectionHeading(title, lead string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16 animate-on-scroll"),
		H2(Class("text-3xl md:text-5xl font-bold text-white mb-6"), g.Text(title)),
		g.If(lead != "", P(Class("text-zinc-400 text-lg leading-relaxed"), g.Text(lead))),
	)
}

func section(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("py-24 "+class),
		Div(append([]g.Node{Class("max-w-7xl mx-auto px-6")}, children...)...),
	)
}

func primaryButton(l PageLink, iconName string) g.Node {
	return A(
		Href(l.Href),
		Class("inline-flex items-center justify-center gap-2 bg-emerald-600 hover:bg-emerald-500 text-white px-8 py-4 rounded-xl font-bold transition-all shadow-lg shadow-emerald-900/20"),
		g.Text(l.Label),
		g.If(iconName != "", ui.Icon(iconName, "w-5 h-5")),
	)
}

func secondaryButton(l PageLink) g.Node {
	return A(
		Href(l.Href),
		Class("inline-flex items-center justify-center bg-zinc-900 hover:bg-zinc-800 border border-zinc-800 text-white px-8 py-4 rounded-xl font-bold transition-all"),
		g.Text(l.Label),
	)
}
