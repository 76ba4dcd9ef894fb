package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func HeroSection(h Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative pt-40 pb-24 md:pt-48 md:pb-32 overflow-hidden"),

		Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-[900px] h-[600px] bg-emerald-600/10 rounded-full blur-3xl -z-10")),

		Div(
			Class("max-w-7xl mx-auto px-6 text-center"),

			Div(
				Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-emerald-500/10 border border-emerald-500/20 text-emerald-400 text-xs font-bold uppercase tracking-wider mb-8 animate-enter"),
				ui.Icon("sparkles", "w-3.5 h-3.5"),
				g.Text(h.Eyebrow),
			),

			H1(
				Class("text-4xl md:text-6xl lg:text-7xl font-bold text-white tracking-tight leading-[1.1] max-w-5xl mx-auto animate-enter"),
				g.Text(h.TitleLead),
				Span(
					Class("bg-gradient-to-r from-emerald-400 to-teal-300 bg-clip-text text-transparent"),
					g.Text(h.TitleAccent),
				),
				g.Text(h.TitleTail),
			),

			P(
				Class("mt-8 text-lg md:text-xl text-zinc-400 max-w-3xl mx-auto leading-relaxed animate-enter"),
				g.Text(h.Lead),
			),

			Div(
				Class("mt-12 flex flex-col sm:flex-row items-center justify-center gap-4 animate-enter"),
				primaryButton(h.Primary, "arrow-right"),
				secondaryButton(h.Secondary),
			),
		),
	)
}
