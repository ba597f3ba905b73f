// Command clibeans-demo binds its command-line to a small struct and prints the result.
//
//	clibeans-demo -myproperty "Hello world" -uppercase -requiredProperty -a x
//	clibeans-demo -interactive
//	clibeans-demo -completion zsh
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	clibeans "github.com/jbuncle/cli-beans"
	"github.com/jbuncle/cli-beans/completion"
	"github.com/jbuncle/cli-beans/convert"
)

// Bean is the struct the demo binds to
type Bean struct {
	MyProperty       string
	Uppercase        bool
	RequiredProperty bool
	Number           int
	Aliased          string
	Date             time.Time
	ID               uuid.UUID
	Timeout          time.Duration
	Tags             []string
	Config           clibeans.Path
}

// Control holds the options steering the demo itself
type Control struct {
	Help              bool
	Interactive       bool
	Completion        string
	InstallCompletion string
}

func newBeanBinder(stdin io.Reader, stdout io.Writer) (*clibeans.Binder[Bean], error) {
	return clibeans.NewBinderWith(
		clibeans.WithStdin[Bean](stdin),
		clibeans.WithStdout[Bean](stdout),
		clibeans.WithAliasConverter[Bean](clibeans.ToKebabCase),
		clibeans.WithConverterFor[Bean](convert.Time),
		clibeans.WithConverterFor[Bean](convert.UUID),
		clibeans.WithConverterFor[Bean](convert.Duration),
		clibeans.WithConverterFor[Bean](convert.StringList(",")),
		clibeans.WithOptions(
			clibeans.NewOption("myproperty", clibeans.Setter(func(b *Bean, v string) { b.MyProperty = v }),
				clibeans.WithDescription("Basic property")),
			clibeans.NewOption("uppercase", clibeans.Setter(func(b *Bean, v bool) { b.Uppercase = v }),
				clibeans.WithDescription("Print myproperty in upper case"),
				clibeans.AsFlag()),
			clibeans.NewOption("requiredProperty", clibeans.Setter(func(b *Bean, v bool) { b.RequiredProperty = v }),
				clibeans.WithDescription("Basic required property"),
				clibeans.AsFlag(),
				clibeans.SetRequired(true)),
			clibeans.NewOption("number", clibeans.Setter(func(b *Bean, v int) { b.Number = v }),
				clibeans.WithDescription("A number"),
				clibeans.WithPattern("[0-9]*")),
			clibeans.NewOption("aliased", clibeans.Setter(func(b *Bean, v string) { b.Aliased = v }),
				clibeans.WithDescription("A required value with an alias"),
				clibeans.WithAlias("a"),
				clibeans.SetRequired(true)),
			clibeans.NewOption("date", clibeans.Setter(func(b *Bean, v time.Time) { b.Date = v }),
				clibeans.WithDescription("A date in any common layout")),
			clibeans.NewOption("id", clibeans.Setter(func(b *Bean, v uuid.UUID) { b.ID = v }),
				clibeans.WithDescription("A UUID")),
			clibeans.NewOption("timeout", clibeans.Setter(func(b *Bean, v time.Duration) { b.Timeout = v }),
				clibeans.WithDescription("How long to wait"),
				clibeans.WithDefaultValue("30s")),
			clibeans.NewOption("tags", clibeans.Setter(func(b *Bean, v []string) { b.Tags = v }),
				clibeans.WithDescription("Comma separated tags")),
			clibeans.NewOption("config", clibeans.Setter(func(b *Bean, v clibeans.Path) { b.Config = v }),
				clibeans.WithDescription("Config file")),
		),
	)
}

func newControlBinder() (*clibeans.Binder[Control], error) {
	return clibeans.NewBinderWith(clibeans.WithOptions(
		clibeans.NewOption("help", clibeans.Setter(func(c *Control, v bool) { c.Help = v }),
			clibeans.WithAlias("h"),
			clibeans.WithDescription("Show help"),
			clibeans.AsFlag()),
		clibeans.NewOption("interactive", clibeans.Setter(func(c *Control, v bool) { c.Interactive = v }),
			clibeans.WithAlias("i"),
			clibeans.WithDescription("Prompt for every option"),
			clibeans.AsFlag()),
		clibeans.NewOption("completion", clibeans.Setter(func(c *Control, v string) { c.Completion = v }),
			clibeans.WithDescription("Print a completion script for a shell: "+strings.Join(completion.Shells(), ", "))),
		clibeans.NewOption("install-completion", clibeans.Setter(func(c *Control, v string) { c.InstallCompletion = v }),
			clibeans.WithDescription("Install a completion script for a shell")),
	))
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	program := filepath.Base(argv[0])
	args := argv[1:]

	controls, err := newControlBinder()
	if err != nil {
		return fail(stderr, err)
	}
	beans, err := newBeanBinder(stdin, stdout)
	if err != nil {
		return fail(stderr, err)
	}

	control, err := controls.Bind(args)
	if err != nil {
		return fail(stderr, err)
	}

	data := completion.CompletionData{
		Options: append(beans.CompletionData().Options, controls.CompletionData().Options...),
	}

	switch {
	case control.Help:
		if err := beans.PrintHelp(stdout); err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintln(stdout, "Demo:")
		if err := controls.PrintHelp(stdout); err != nil {
			return fail(stderr, err)
		}
		return 0
	case control.Completion != "":
		generator := completion.GetGenerator(control.Completion)
		if generator == nil {
			return fail(stderr, fmt.Errorf(clibeans.FmtErrorWithString, clibeans.ErrUnsupportedShell, control.Completion))
		}
		fmt.Fprint(stdout, generator.Generate(program, data))
		return 0
	case control.InstallCompletion != "":
		manager, err := completion.NewCompletionManager(control.InstallCompletion, program)
		if err != nil {
			return fail(stderr, err)
		}
		manager.Accept(data)
		path, err := manager.SaveCompletion()
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintf(stdout, "completion script written to %s\n", path)
		return 0
	}

	var bean *Bean
	if control.Interactive {
		bean, err = beans.BindInteractive()
	} else {
		if invalid := beans.Validate(args); len(invalid) > 0 {
			errorColor.Fprintf(stderr, "Error: invalid options: %s\n", strings.Join(invalid, ", "))
			_ = beans.PrintHelp(stderr)
			return 1
		}
		bean, err = beans.Bind(args)
	}
	if err != nil {
		return fail(stderr, err)
	}

	bean.print(stdout)
	return 0
}

func (b *Bean) print(w io.Writer) {
	if b.Uppercase {
		fmt.Fprintln(w, strings.ToUpper(b.MyProperty))
	} else {
		fmt.Fprintln(w, b.MyProperty)
	}

	fmt.Fprintf(w, "aliased: %s\n", b.Aliased)
	fmt.Fprintf(w, "number: %d\n", b.Number)
	fmt.Fprintf(w, "timeout: %s\n", b.Timeout)
	if !b.Date.IsZero() {
		fmt.Fprintf(w, "date: %s\n", b.Date.Format(time.RFC3339))
	}
	if b.ID != uuid.Nil {
		fmt.Fprintf(w, "id: %s\n", b.ID)
	}
	if len(b.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(b.Tags, " "))
	}
	if b.Config != "" {
		fmt.Fprintf(w, "config: %s\n", b.Config)
	}
}

var errorColor = color.New(color.FgRed)

func fail(stderr io.Writer, err error) int {
	errorColor.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
