package shell

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/unix-emulator/cli/internal/fsops"
)

// Filesystem is the set of operations the dispatcher runs commands against.
// Paths are never empty when passed in.
type Filesystem interface {
	List() ([]string, error)
	Getwd() (string, error)
	ReadFile(name string) (string, error)
	CreateFile(name, content string) error
	Mkdir(name string) error
	RemoveFile(name string) error
	RemoveDir(name string) error
	Chdir(name string) error
}

// Action tells the session loop what to do with a result besides showing it.
type Action int

const (
	ActionPrint Action = iota
	ActionClear
	ActionExit
)

// ResultKind classifies result text for styling.
type ResultKind int

const (
	ResultOutput ResultKind = iota
	ResultSuccess
	ResultError
)

// Result is the outcome of one dispatched command line.
type Result struct {
	Text   string
	Kind   ResultKind
	Action Action
}

const (
	msgFileRequired = "Error: File name is required."
	msgDirRequired  = "Error: Directory name is required."
)

// opPhrases names each failed operation in result text. Operations without
// a phrase are reported as a bare "Error: <description>".
var opPhrases = map[fsops.Op]string{
	fsops.OpRead:   "reading file",
	fsops.OpCreate: "creating file",
	fsops.OpWrite:  "writing to file",
	fsops.OpMkdir:  "creating directory",
	fsops.OpRemove: "deleting file",
	fsops.OpRmdir:  "removing directory",
	fsops.OpChdir:  "changing directory to",
}

// Dispatcher runs command lines against a Filesystem.
type Dispatcher struct {
	fs  Filesystem
	log *zap.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards output.
func NewDispatcher(fs Filesystem, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{fs: fs, log: log}
}

// Dispatch parses and runs line. Blank lines produce an empty print result;
// callers are expected to filter them out first.
func (d *Dispatcher) Dispatch(line string) Result {
	inv, ok := Parse(line)
	if !ok {
		return Result{}
	}

	res := d.run(inv)
	d.log.Debug("dispatched command",
		zap.String("command", inv.Name),
		zap.Int("args", len(inv.Args)),
		zap.Bool("failed", res.Kind == ResultError),
	)
	return res
}

func (d *Dispatcher) run(inv Invocation) Result {
	switch inv.Command.target() {
	case targetFile:
		if inv.Arg(0) == "" {
			return errorResult(msgFileRequired)
		}
	case targetDir:
		if inv.Arg(0) == "" {
			return errorResult(msgDirRequired)
		}
	}

	name := inv.Arg(0)

	switch inv.Command {
	case CommandLS:
		names, err := d.fs.List()
		if err != nil {
			return failure(err)
		}
		return output(strings.Join(names, "\n"))

	case CommandPWD:
		dir, err := d.fs.Getwd()
		if err != nil {
			return failure(err)
		}
		return output(dir)

	case CommandCat:
		content, err := d.fs.ReadFile(name)
		if err != nil {
			return failure(err)
		}
		return output(content)

	case CommandEcho:
		return output(strings.Join(inv.Args, " "))

	case CommandTouch:
		content := stripQuotes(strings.Join(inv.Args[1:], " "))
		if err := d.fs.CreateFile(name, content); err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("File '%s' created.", name))

	case CommandClear:
		return Result{Action: ActionClear}

	case CommandMkdir:
		if err := d.fs.Mkdir(name); err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Directory '%s' created.", name))

	case CommandRm:
		if err := d.fs.RemoveFile(name); err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("File '%s' deleted.", name))

	case CommandRmdir:
		if err := d.fs.RemoveDir(name); err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Directory '%s' removed.", name))

	case CommandCD:
		if err := d.fs.Chdir(name); err != nil {
			return failure(err)
		}
		return success(fmt.Sprintf("Changed directory to '%s'.", name))

	case CommandExit:
		return Result{Action: ActionExit}

	case CommandUnknown:
		return errorResult("Unknown command: " + inv.Name)
	}

	return errorResult("Unknown command: " + inv.Name)
}

// stripQuotes removes one double quote from each end of s.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func output(text string) Result {
	return Result{Text: text, Kind: ResultOutput}
}

func success(text string) Result {
	return Result{Text: text, Kind: ResultSuccess}
}

func errorResult(text string) Result {
	return Result{Text: text, Kind: ResultError}
}

func failure(err error) Result {
	var opErr *fsops.OpError
	if !errors.As(err, &opErr) {
		return errorResult("Error: " + err.Error())
	}
	phrase, ok := opPhrases[opErr.Op]
	if !ok {
		return errorResult("Error: " + opErr.Description())
	}
	return errorResult(fmt.Sprintf("Error %s '%s': %s", phrase, opErr.Path, opErr.Description()))
}
