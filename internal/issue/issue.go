// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

// Id identifies a well-known issue.
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigInvalidId
	InputUnavailableId
)

type (
	// MarkdownMsg is the Markdown body of an issue.
	MarkdownMsg string

	// Issue is a documented problem with guidance for the user.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the issue for the terminal. stylePath is a glamour style
// name such as "dark", "light", "notty" or "auto".
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# BootcampOS could not read its configuration

The configuration file exists but could not be loaded.

## Things you can try
- Print the file that is being used:
~~~
$ bootcamp config path
~~~
- Compare it with the schema:
~~~
$ bootcamp config dump
~~~
- Point at another file with ` + "`--config <path>`" + `.`,
	}

	configInvalidIssue = &Issue{
		id: ConfigInvalidId,
		mdMsg: `
# The configuration is not valid

The file parsed, but some values break the rules of the simulator.

## Rules
- ` + "`hostname`" + ` must not be empty.
- Every name in ` + "`packages.installed`" + ` must appear in ` + "`packages.catalog`" + `.
- Delays such as ` + "`boot.tick_delay`" + ` must not be negative.

Run ` + "`bootcamp config show --defaults`" + ` to compare with the defaults.`,
	}

	inputUnavailableIssue = &Issue{
		id: InputUnavailableId,
		mdMsg: `
# Standard input is not usable

BootcampOS reads commands from standard input, one per line.

## Things you can try
- Run it directly in a terminal: ` + "`bootcamp`" + `
- Or pipe a script into it:
~~~
$ printf 'neofetch\nexit\n' | bootcamp --no-delay
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		configInvalidIssue.Id():    configInvalidIssue,
		inputUnavailableIssue.Id(): inputUnavailableIssue,
	}
)

// Values returns every known issue ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int { return int(a.id - b.id) })
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
