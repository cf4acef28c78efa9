// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const exitItem = "exit"

// menu lists the operations offered by the prompt, exit last.
func menu() []string {
	items := make([]string, 0, len(operations)+1)
	for name := range operations {
		items = append(items, name)
	}
	sort.Strings(items)
	return append(items, exitItem)
}

// prompter asks for an operation and for its input.
type prompter interface {
	Operation(items []string) (string, error)
	Input() (string, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Operation(items []string) (string, error) {
	sel := promptui.Select{
		Label: "Operation",
		Items: items,
		Size:  len(items),
	}
	_, name, err := sel.Run()
	return name, err
}

func (terminalPrompter) Input() (string, error) {
	prompt := promptui.Prompt{
		Label:    "Input",
		Validate: checkSize,
	}
	return prompt.Run()
}

func interactiveAction(ctx *cli.Context) error {
	return interact(terminalPrompter{}, ctx.App.Writer)
}

// interact runs operations until exit is picked or the prompt is closed.
// A failed operation is reported and does not end the loop.
func interact(p prompter, w io.Writer) error {
	items := menu()

	for {
		name, err := p.Operation(items)
		if err != nil {
			return promptError(err)
		}
		if name == exitItem {
			return nil
		}

		in, err := p.Input()
		if err != nil {
			return promptError(err)
		}

		out, err := operations[name](in)
		if err != nil {
			log.WithError(err).WithField("operation", name).Warnln("operation failed")
			_, _ = fmt.Fprintln(w, "error:", err)
			continue
		}
		_, _ = fmt.Fprintln(w, out)
	}
}

// promptError swallows the errors of a closed prompt.
func promptError(err error) error {
	if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
		return nil
	}
	return errors.Wrap(err, "prompt failed")
}
