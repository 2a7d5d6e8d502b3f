package types

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"noteshare/internal/domain/result"
	"noteshare/internal/utils/format"
)

// ErrReported - ошибка уже выведена, команде остается только завершиться с кодом 1
var ErrReported = errors.New("reported")

type Printer struct {
	Out  io.Writer
	JSON bool
	Loc  *time.Location
}

func NewPrinter(out io.Writer, jsonOutput bool, loc *time.Location) *Printer {
	return &Printer{Out: out, JSON: jsonOutput, Loc: loc}
}

// Emit печатает v как JSON или передает вывод в human
func (p *Printer) Emit(v any, human func(w io.Writer)) error {
	if p.JSON {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human(p.Out)
	return nil
}

// Done печатает итог операции без данных
func (p *Printer) Done(res result.Result, fallback string) error {
	if !res.Success {
		return p.Fail(res)
	}
	msg := res.Message
	if msg == "" {
		msg = fallback
	}
	return p.Emit(res, func(w io.Writer) { p.Success(msg) })
}

// Fail выводит неуспешный результат
func (p *Printer) Fail(res result.Result) error {
	if p.JSON {
		_ = p.Emit(res, nil)
		return ErrReported
	}
	return res.Err()
}

func (p *Printer) Success(msg string) {
	color.New(color.FgGreen).Fprint(p.Out, "✓ ")
	fmt.Fprintln(p.Out, msg)
}

func (p *Printer) Warn(msg string) {
	color.New(color.FgYellow).Fprint(p.Out, "! ")
	fmt.Fprintln(p.Out, msg)
}

func (p *Printer) Heading(msg string) {
	color.New(color.FgCyan, color.Bold).Fprintln(p.Out, msg)
}

func (p *Printer) Time(t time.Time) string {
	return format.DateTime(t, p.Loc)
}

// PrintError печатает ошибку команды красным в stderr
func PrintError(err error) {
	color.New(color.FgRed).Fprint(os.Stderr, "Ошибка: ")
	fmt.Fprintln(os.Stderr, err)
}

// ReadSecret читает строку без эха, если stdin - терминал
func ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return ReadLine("")
}

// stdin общий для всех чтений, чтобы буфер не терял строки между вызовами
var stdin = bufio.NewReader(os.Stdin)

// ReadLine читает одну строку из stdin
func ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(os.Stderr, prompt)
	}
	line, err := stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("ошибка чтения: %w", err)
	}
	return strings.TrimSpace(line), nil
}
