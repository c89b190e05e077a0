// Package widgets provides the declarative views applications describe
// their windows with.
//
// A view is a descriptor: it holds the values to display, the callbacks to
// run on user interaction and, for containers, its children. Building a
// view through a [BuildContext] creates the native control, registers the
// callbacks under a fresh identity and binds any [core.State] values so the
// control follows later changes.
//
// # Construction
//
// Views are created with XxxOf helpers or struct literals and configured
// with chained WithX and OnX methods, which set the field on the receiver
// and return it:
//
//	counter := core.NewState("Clicked: 0")
//
//	widgets.VStack[AppState](
//	    widgets.LabelOf[AppState]("").WithText(core.Bind(counter)),
//	    widgets.ButtonOf[AppState]("Press").OnClick(func(s *AppState, _ core.Window) {
//	        s.Count++
//	        counter.Set(fmt.Sprintf("Clicked: %d", s.Count))
//	    }),
//	)
//
// # Bound values
//
// Properties typed [core.Value] are either raw, applied once when the view
// is built, or bound to a State. Text a control edits itself (a text
// field's contents, a checkbox's state) is bound with the control's own
// identity as origin, so the control is not told about edits it made.
// Colors, tooltips and alignment are bound with the user origin.
//
// A view's callbacks move into the registry when it is built; building the
// same descriptor again registers a view without behavior.
package widgets
