package tree

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Exit codes returned by commands.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitHelp is returned whenever help was rendered instead of running a command.
	ExitHelp = 1
)

// ErrInitialized is the panic value raised when a command is initialised twice.
var ErrInitialized = errors.New("command already initialized")

// Node is the display contract shared by groups and commands.
type Node interface {
	Name() string
	Description() string
}

// Command is a leaf of the tree.  Init is called exactly once with the
// residual arguments before Execute; calling it twice violates the contract.
type Command interface {
	Node
	Init(args []string)
	Execute(ctx context.Context, env *Env) int
}

// Env is handed unmodified to the resolved command.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger logrus.FieldLogger
}

// NewEnv returns an Env bound to the process streams and the standard logger.
func NewEnv() *Env {
	return &Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logrus.StandardLogger(),
	}
}

// Args keeps the residual arguments of a command and enforces single
// initialisation.  Embed it to satisfy the Init half of Command.
type Args struct {
	values      []string
	initialized bool
}

// Init stores a copy of args; a second call panics with ErrInitialized.
func (a *Args) Init(args []string) {
	if a.initialized {
		panic(ErrInitialized)
	}
	a.initialized = true
	a.values = append([]string{}, args...)
}

// Initialized reports whether Init was already called.
func (a *Args) Initialized() bool { return a.initialized }

// Values returns the residual arguments.
func (a *Args) Values() []string { return a.values }
