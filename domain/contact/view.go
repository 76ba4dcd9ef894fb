package contact

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

// CardID is the DOM id htmx swaps on every contact response.
const CardID = "contact-card"

// ErrorBanner is the only failure text a visitor ever sees.
const ErrorBanner = "Something went wrong. Please try again later or email us directly."

const inputClass = "w-full bg-zinc-950 border border-zinc-800 rounded-xl px-4 py-3 text-white focus:border-emerald-500 focus:ring-1 focus:ring-emerald-500 outline-none transition-all"

func formPath(id, action string) string {
	if action == "" {
		return fmt.Sprintf("/contact/%s", id)
	}
	return fmt.Sprintf("/contact/%s/%s", id, action)
}

// Card renders the contact card for the given state.
func Card(id string, status Status, fields Fields) g.Node {
	attrs := []g.Node{
		ID(CardID),
		Class("bg-zinc-900 border border-zinc-800 p-8 md:p-10 rounded-[2rem]"),
		g.Attr("data-status", status.String()),
	}

	// poll until a delivery started by an earlier response resolves
	if status == StatusSubmitting {
		attrs = append(attrs,
			ui.Hx("get", formPath(id, "")),
			ui.Hx("trigger", "every 1s"),
			ui.Hx("swap", "outerHTML"),
		)
	}

	if status == StatusSuccess {
		return Div(append(attrs, successPanel(id))...)
	}
	return Div(append(attrs, form(id, status, fields))...)
}

func successPanel(id string) g.Node {
	return Div(
		Class("h-full flex flex-col items-center justify-center text-center py-12 animate-enter"),
		ui.IconBadge("check-circle-2", "w-20 h-20 bg-emerald-600 rounded-full text-white mb-6", "w-10 h-10"),
		H3(Class("text-2xl font-bold text-white mb-2"), g.Text("Message Sent!")),
		P(Class("text-zinc-400"), g.Text("Thank you for reaching out. We'll be in touch shortly.")),
		Button(
			Type("button"),
			Class("mt-8 text-emerald-500 font-bold hover:underline"),
			ui.Hx("post", formPath(id, "reset")),
			ui.Hx("target", "#"+CardID),
			ui.Hx("swap", "outerHTML"),
			g.Text("Send another message"),
		),
	)
}

func form(id string, status Status, fields Fields) g.Node {
	submitting := status == StatusSubmitting

	return Form(
		Class("space-y-6"),
		ui.Hx("post", formPath(id, "submit")),
		ui.Hx("target", "#"+CardID),
		ui.Hx("swap", "outerHTML"),
		ui.Hx("disabled-elt", "find button[type='submit']"),

		g.If(status == StatusError,
			Div(
				Class("p-4 bg-red-500/10 border border-red-500/20 rounded-xl text-red-400 text-sm"),
				Role("alert"),
				g.Text(ErrorBanner),
			),
		),

		Div(
			Class("grid md:grid-cols-2 gap-6"),
			input(id, FieldNameName, "Full Name", "text", "Your Name", fields.Name, true),
			input(id, FieldNameEmail, "Email Address", "email", "Email-Id", fields.Email, true),
		),
		Div(
			Class("grid md:grid-cols-2 gap-6"),
			input(id, FieldNamePhone, "Phone Number", "tel", "Your Contact Number", fields.Phone, false),
			input(id, FieldNameOrganization, "Organization", "text", "Organization Name", fields.Organization, false),
		),
		Div(
			Class("space-y-2"),
			Label(Class("text-xs font-bold text-zinc-500 uppercase tracking-wider"), For(inputID(FieldNameMessage)),
				g.Text("Message")),
			Textarea(
				ID(inputID(FieldNameMessage)),
				Name(string(FieldNameMessage)),
				Rows("4"),
				Required(),
				Placeholder("Tell us about your requirements..."),
				Class(inputClass+" resize-none"),
				fieldSync(id, FieldNameMessage),
				g.Text(fields.Message),
			),
		),

		Button(
			Type("submit"),
			g.If(submitting, Disabled()),
			Class("w-full bg-emerald-600 hover:bg-emerald-500 cursor-pointer disabled:bg-zinc-800 text-white font-bold py-4 rounded-xl transition-all flex items-center justify-center gap-2"),
			g.If(submitting,
				Div(Class("w-6 h-6 border-2 border-white/30 border-t-white rounded-full animate-spin"), Aria("label", "Sending")),
			),
			g.If(!submitting, g.Group([]g.Node{
				g.Text("Send Message"),
				ui.Icon("chevron-right", "w-5 h-5"),
			})),
		),
	)
}

func inputID(name FieldName) string {
	return "contact-" + string(name)
}

func input(formID string, name FieldName, label, typ, placeholder, value string, required bool) g.Node {
	return Div(
		Class("space-y-2"),
		Label(Class("text-xs font-bold text-zinc-500 uppercase tracking-wider"), For(inputID(name)), g.Text(label)),
		Input(
			ID(inputID(name)),
			Name(string(name)),
			Type(typ),
			Value(value),
			Placeholder(placeholder),
			g.If(required, Required()),
			Class(inputClass),
			fieldSync(formID, name),
		),
	)
}

// fieldSync mirrors each edit to the server copy of the form. A pending edit
// is aborted once the form itself submits.
func fieldSync(formID string, name FieldName) g.Node {
	return g.Group([]g.Node{
		ui.Hx("post", formPath(formID, "field")+"?name="+string(name)),
		ui.Hx("trigger", "input changed delay:300ms"),
		ui.Hx("sync", "closest form:abort"),
		ui.Hx("swap", "none"),
	})
}
