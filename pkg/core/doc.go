// Package core provides the reactive state cells, view identities and event
// routing that connect declarative views to native controls.
//
// # State cells
//
// State is a shared, observable value. Views bind their properties to
// cells; every Set notifies the listeners in the order they were added:
//
//	title := core.NewState("Untitled")
//	title.AddListener(func(s string) { fmt.Println("title:", s) })
//	title.Set("Report") // prints "title: Report"
//
// A change is tagged with an Origin. A listener registered with an owner
// origin is skipped for changes carrying that same origin, so a control
// that writes back a value it already shows is not told about it again:
//
//	text.AddListenerWithOrigin(field.SetText, core.OwnerOrigin(id))
//	text.SetWithOrigin("typed", core.OwnerOrigin(id)) // field.SetText not called
//
// Changes with OriginUser are always delivered.
//
// # Identities and handlers
//
// Every built view gets a ViewID from the ViewTree. The callbacks the view
// declares are stored in a HandlerMap under that identity in a Registry.
// An entry is written once and never replaced; a rebuild uses a fresh
// registry.
//
// # Dispatch
//
// Native controls report user interaction as Events (Activated,
// ToggleChanged, TextChanged, MenuInvoked). A Dispatcher takes the lock of
// the SharedState, looks up the handler for the event's view and runs it
// with the state and the Window. Events for unknown views or unset handler
// slots are ignored.
//
// Handlers run under the state lock. They must not dispatch further events
// synchronously; to do work after the handler returns, post it to the UI
// thread (see backend.Host.Post and platform.Dispatch).
//
// # Constructor Conventions
//
// Long-lived mutable objects use NewX constructors returning pointers
// (NewState, NewRegistry, NewDispatcher). Values are plain structs
// (Activated{View: id}, Raw(v)).
package core
