// Package prompt implements the retry-until-valid input loop used by
// interactive profile setup. Each prompt blocks for one line of input and
// re-asks on a parse failure; with a single user and a single invocation
// there is nothing else for the process to do.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-delimited answers from In and writes prompts and
// parse errors to Out.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: bufio.NewReader(in), Out: out}
}

// Until prints prompt and reads lines until parse accepts one, echoing
// each parse error before re-asking. It only fails if the input stream
// itself fails.
func Until[T any](p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.Out, prompt)
		line, err := p.In.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return zero, fmt.Errorf("read input: %w", err)
		}
		v, perr := parse(strings.TrimSpace(line))
		if perr != nil {
			fmt.Fprintf(p.Out, "%v\n", perr)
			continue
		}
		return v, nil
	}
}
