package menus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// Prompter reads and validates interactive input line by line. Nothing
// reaches the core until it parses; re-prompting stays in this layer.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input stream has ended; menu loops use it to bail
// out instead of spinning on empty reads.
func (p *Prompter) EOF() bool {
	return p.eof
}

// Say writes a line to the user.
func (p *Prompter) Say(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line prompts and returns one trimmed line of input.
func (p *Prompter) Line(prompt string) string {
	if p.eof {
		return ""
	}
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Int prompts until the user enters an integer.
func (p *Prompter) Int(prompt string) int {
	for {
		s := p.Line(prompt)
		if p.eof {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n
		}
		p.Say("Invalid input. Please enter a number.")
	}
}

// Float prompts until the user enters a number.
func (p *Prompter) Float(prompt string) float64 {
	for {
		s := p.Line(prompt)
		if p.eof {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f
		}
		p.Say("Invalid input. Please enter an amount.")
	}
}

// Date prompts until the user enters a YYYY-MM-DD date.
func (p *Prompter) Date(prompt string) string {
	for {
		s := p.Line(prompt)
		if p.eof {
			return ""
		}
		if validate.Var(s, "datetime="+dateLayout) == nil {
			return s
		}
		p.Say("Invalid date format. Please use YYYY-MM-DD.")
	}
}

// YesNo prompts until the user answers y or n.
func (p *Prompter) YesNo(prompt string) bool {
	for {
		s := strings.ToLower(p.Line(prompt + " (y/n): "))
		if p.eof {
			return false
		}
		switch s {
		case "y":
			return true
		case "n":
			return false
		}
		p.Say("Invalid input. Please enter 'y' or 'n'.")
	}
}
