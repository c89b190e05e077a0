package headless

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-drift/finestra/pkg/resources"
)

// maxTreeDepth limits recursion depth when serializing malformed trees.
const maxTreeDepth = 500

// ViewNode is the serialized form of a View.
type ViewNode struct {
	ID          uint32     `json:"id"`
	Kind        ViewKind   `json:"kind"`
	Title       string     `json:"title,omitempty"`
	Text        string     `json:"text,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Tooltip     string     `json:"tooltip,omitempty"`
	Checked     *bool      `json:"checked,omitempty"`
	TextColor   string     `json:"textColor,omitempty"`
	Background  string     `json:"background,omitempty"`
	Alignment   string     `json:"alignment,omitempty"`
	Image       string     `json:"image,omitempty"`
	Direction   string     `json:"direction,omitempty"`
	Constraints []string   `json:"constraints,omitempty"`
	Children    []ViewNode `json:"children,omitempty"`
}

// WindowSnapshot is the serialized state of a Host.
type WindowSnapshot struct {
	ID      string    `json:"id"`
	AppName string    `json:"appName,omitempty"`
	Title   string    `json:"title"`
	Theme   string    `json:"theme"`
	Width   float64   `json:"width,omitempty"`
	Height  float64   `json:"height,omitempty"`
	Shown   bool      `json:"shown"`
	Menus   []string  `json:"menus,omitempty"`
	Dialogs int       `json:"dialogs,omitempty"`
	Content *ViewNode `json:"content,omitempty"`
}

// Snapshot captures the window and its content view.
func (h *Host) Snapshot() WindowSnapshot {
	width, height := h.ContentSize()
	snap := WindowSnapshot{
		ID:      h.id.String(),
		AppName: h.appName,
		Title:   h.Title(),
		Theme:   h.Theme().String(),
		Width:   width,
		Height:  height,
		Shown:   h.Shown(),
		Dialogs: len(h.Dialogs()),
	}
	if bar := h.MenuBar(); bar != nil {
		for _, m := range bar.Menus {
			snap.Menus = append(snap.Menus, m.Name)
		}
	}
	if content := h.Content(); content != nil {
		node := serializeView(content, 0)
		snap.Content = &node
	}
	return snap
}

func serializeView(v *View, depth int) ViewNode {
	node := ViewNode{
		ID:          uint32(v.ID()),
		Kind:        v.Kind(),
		Tooltip:     v.Tooltip(),
		TextColor:   colorString(v.TextColor()),
		Background:  colorString(v.BackgroundColor()),
		Placeholder: v.Placeholder(),
	}
	switch v.Kind() {
	case KindButton:
		node.Title = v.Title()
	case KindCheckbox:
		node.Title = v.Title()
		checked := v.Checked()
		node.Checked = &checked
	case KindLabel, KindTextField:
		node.Text = v.Text()
	case KindTextBlock:
		node.Text = v.Text()
		if a := v.Alignment(); a != resources.AlignDefault {
			node.Alignment = a.String()
		}
	case KindImage:
		node.Image = v.Image().Path()
	case KindStack:
		node.Direction = v.Direction().String()
	}
	for _, c := range v.Constraints() {
		node.Constraints = append(node.Constraints,
			fmt.Sprintf("%s=%s.%s", c.Alignment, c.Reference, c.ReferenceAlignment))
	}
	if depth < maxTreeDepth {
		for _, child := range v.Children() {
			node.Children = append(node.Children, serializeView(child, depth+1))
		}
	}
	return node
}

func colorString(c resources.Color) string {
	if c.IsDefault() {
		return ""
	}
	return c.String()
}

// Inspector returns an HTTP handler exposing the window for debugging:
//
//	GET /view-tree   the WindowSnapshot as JSON
//	GET /health      {"status":"ok"}
func (h *Host) Inspector() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/view-tree", h.handleViewTree)
	mux.HandleFunc("/health", handleHealth)
	return mux
}

func (h *Host) handleViewTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(h.Snapshot(), "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
