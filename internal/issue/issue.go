// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	DependenciesNotSatisfiedId
	EngineLaunchFailedId
	TestsInterruptedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links for the issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your configuration file contains syntax errors or invalid values.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Wrong types for known fields (engine.python must be a non-empty string)

## Things you can try:
- Check the error message above for the offending field
- Validate the file with the cue command-line tool
- Remove the file to fall back to the built-in defaults

## Example of a valid configuration:
~~~cue
engine: {
	python:     "python3.12"
	extra_args: "--maxfail=3"
}

ui: {
	verbose: true
}
~~~`,
	}

	dependenciesNotSatisfiedIssue = &Issue{
		id: DependenciesNotSatisfiedId,
		mdMsg: `
# Required dependencies are missing!

The test suite cannot run because required tools are not available.

## Things you can try:
- Install the missing packages listed above:
~~~
$ pip install pytest pytest-cov
~~~

- Check that the tools are on your PATH
- If you use a virtual environment, make sure it is activated
- Verify which interpreter is configured:
~~~cue
engine: python: "python3"
~~~`,
	}

	engineLaunchFailedIssue = &Issue{
		id: EngineLaunchFailedId,
		mdMsg: `
# Could not launch the test engine!

The configured interpreter failed to start.

## Things you can try:
- Check that the interpreter exists and is executable:
~~~
$ python3 --version
~~~

- Point the configuration at a different interpreter:
~~~cue
engine: python: "/usr/local/bin/python3.12"
~~~

- Run with verbose mode for more details:
~~~
$ testctl --verbose --quick
~~~`,
	}

	testsInterruptedIssue = &Issue{
		id: TestsInterruptedId,
		mdMsg: `
# Test run interrupted!

The run was cancelled before the test suite finished, so the results
are incomplete.

## Things you can try:
- Re-run the same selection to get a complete result
- Narrow the selection if the full suite takes too long:
~~~
$ testctl --quick
$ testctl --test tests/test_edge_cases.py
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():         configLoadFailedIssue,
		dependenciesNotSatisfiedIssue.Id(): dependenciesNotSatisfiedIssue,
		engineLaunchFailedIssue.Id():       engineLaunchFailedIssue,
		testsInterruptedIssue.Id():         testsInterruptedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
