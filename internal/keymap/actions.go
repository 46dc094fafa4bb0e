// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit            Action = "quit"
	ActionHelp            Action = "help"
	ActionReloadConfig    Action = "reload_config"
	ActionCycleMode       Action = "cycle_mode"       // force minimal, medium, expanded, then auto
	ActionToggleDirection Action = "toggle_direction" // swap the pane side

	// Pane actions
	ActionTogglePane Action = "toggle_pane"
	ActionOpenPane   Action = "open_pane"
	ActionClosePane  Action = "close_pane"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionExpand    Action = "expand"   // l/right - expand a parent or open its popup
	ActionCollapse  Action = "collapse" // h/left - collapse the parent of the focused row

	// Selection actions
	ActionSelect Action = "select"  // enter - tap the focused destination
	ActionGoBack Action = "go_back" // backspace - previous destination
	ActionReset  Action = "reset"   // ctrl+r - clear selection and history

	// Popup actions
	ActionClosePopup Action = "close_popup" // esc
)
