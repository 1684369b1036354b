package merge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Policy decides whether a merge carrying potential duplicates may
// proceed. Implementations must treat any failure to obtain an answer as
// a denial.
type Policy interface {
	Confirm(prompt string) (bool, error)
}

// PolicyFunc adapts a function to the Policy interface, for callers that
// delegate the decision to an external system.
type PolicyFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f PolicyFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

type staticPolicy bool

func (s staticPolicy) Confirm(string) (bool, error) { return bool(s), nil }

// Approve returns a policy that confirms every merge. Intended for
// scripted runs that have already reviewed the report.
func Approve() Policy { return staticPolicy(true) }

// Deny returns a policy that refuses every ambiguous merge. This is the
// safe default for non-interactive use.
func Deny() Policy { return staticPolicy(false) }

// Prompt returns a policy that asks on out and reads a yes/no answer from
// in. Anything other than "y" or "yes" denies, so an operator pressing
// enter keeps the ambiguous batch out of the store.
func Prompt(in io.Reader, out io.Writer) Policy {
	return &promptPolicy{in: bufio.NewReader(in), out: out}
}

type promptPolicy struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptPolicy) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
