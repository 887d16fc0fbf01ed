// Package shell parses submitted command lines and dispatches them to the
// filesystem operations.
package shell

import "strings"

// Command identifies a supported command.
type Command int

const (
	CommandUnknown Command = iota
	CommandLS
	CommandPWD
	CommandCat
	CommandEcho
	CommandTouch
	CommandClear
	CommandMkdir
	CommandRm
	CommandRmdir
	CommandCD
	CommandExit
)

// commandNames is ordered for help output.
var commandNames = []struct {
	name    string
	command Command
	usage   string
	desc    string
}{
	{"ls", CommandLS, "ls", "List the current directory"},
	{"pwd", CommandPWD, "pwd", "Print the current directory"},
	{"cat", CommandCat, "cat <file>", "Print a file"},
	{"echo", CommandEcho, "echo [text...]", "Print the arguments"},
	{"touch", CommandTouch, "touch <file> [text...]", "Create a file, optionally with content"},
	{"clear", CommandClear, "clear", "Clear the transcript"},
	{"mkdir", CommandMkdir, "mkdir <dir>", "Create a directory"},
	{"rm", CommandRm, "rm <file>", "Delete a file"},
	{"rmdir", CommandRmdir, "rmdir <dir>", "Remove an empty directory"},
	{"cd", CommandCD, "cd <dir>", "Change directory"},
	{"exit", CommandExit, "exit", "Leave the emulator"},
}

// Lookup resolves a command name. Names are case sensitive.
func Lookup(name string) (Command, bool) {
	for _, c := range commandNames {
		if c.name == name {
			return c.command, true
		}
	}
	return CommandUnknown, false
}

func (c Command) String() string {
	for _, n := range commandNames {
		if n.command == c {
			return n.name
		}
	}
	return "unknown"
}

// target describes the argument a command cannot run without.
type target int

const (
	targetNone target = iota
	targetFile
	targetDir
)

func (c Command) target() target {
	switch c {
	case CommandCat, CommandTouch, CommandRm:
		return targetFile
	case CommandMkdir, CommandRmdir, CommandCD:
		return targetDir
	default:
		return targetNone
	}
}

// Help describes one command for usage output.
type Help struct {
	Usage       string
	Description string
}

// Commands returns usage help for every supported command.
func Commands() []Help {
	out := make([]Help, len(commandNames))
	for i, c := range commandNames {
		out[i] = Help{Usage: c.usage, Description: c.desc}
	}
	return out
}

// Invocation is a parsed command line.
type Invocation struct {
	Name    string
	Command Command
	Args    []string
}

// Arg returns the i-th argument, or "" when absent.
func (inv Invocation) Arg(i int) string {
	if i < len(inv.Args) {
		return inv.Args[i]
	}
	return ""
}

// Parse splits line on runs of whitespace. It reports false for a blank
// line.
func Parse(line string) (Invocation, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, false
	}
	cmd, _ := Lookup(fields[0])
	return Invocation{
		Name:    fields[0],
		Command: cmd,
		Args:    fields[1:],
	}, true
}
