/*
Package command defines the values produced when a line of user input is
interpreted: the canonical actions and the three possible parse results.
*/
package command

// Action names the canonical behavior a command word triggers.
type Action string

// Built-in actions. Each one is also a built-in command word.
const (
	ActionAdd            Action = "add"
	ActionEdit           Action = "edit"
	ActionClear          Action = "clear"
	ActionDelete         Action = "delete"
	ActionList           Action = "list"
	ActionFind           Action = "find"
	ActionHelp           Action = "help"
	ActionExit           Action = "exit"
	ActionAddEarnings    Action = "addearnings"
	ActionDeleteCustom   Action = "deletecustom"
	ActionAddTask        Action = "addtask"
	ActionDeleteEarnings Action = "deleteearnings"
	ActionUpdateEarnings Action = "updateearnings"
	ActionFindEarnings   Action = "findearnings"
	ActionDeleteTask     Action = "deletetask"
	ActionListTasks      Action = "listtasks"
	ActionChangeTab      Action = "change"
	ActionAddNotes       Action = "addnotes"
)

// BuiltinActions returns the built-in actions in declaration order.
func BuiltinActions() []Action {
	return []Action{
		ActionAdd,
		ActionEdit,
		ActionClear,
		ActionDelete,
		ActionList,
		ActionFind,
		ActionHelp,
		ActionExit,
		ActionAddEarnings,
		ActionDeleteCustom,
		ActionAddTask,
		ActionDeleteEarnings,
		ActionUpdateEarnings,
		ActionFindEarnings,
		ActionDeleteTask,
		ActionListTasks,
		ActionChangeTab,
		ActionAddNotes,
	}
}

/*
Result is the outcome of interpreting a line or binding an alias.
It is always one of ParsedCommand, UnknownCommand or NewCommand.
*/
type Result interface {
	result()
}

// ParsedCommand is a line whose command word resolved to an action.
type ParsedCommand struct {
	Word   string // The word as typed, possibly an alias
	Action Action
	Args   string // Remainder handed to the argument parser, untouched
	Input  any    // Whatever the action's argument parser produced
}

// UnknownCommand carries a command word that resolved to nothing.
type UnknownCommand struct {
	Word string
}

// NewCommand confirms that Word is now bound to Action.
type NewCommand struct {
	Action Action
	Word   string
}

func (ParsedCommand) result()  {}
func (UnknownCommand) result() {}
func (NewCommand) result()     {}
