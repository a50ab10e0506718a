package main

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions through a line oriented input. Answers are classified against a
// vocabulary and the question is repeated only while the answer is invalid
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints the question and returns the next line. io.EOF is returned once the input is over
func (p *Prompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskValid repeats the question until parse accepts the answer
func (p *Prompter) AskValid(question string, invalidMessage string, parse func(string) (string, bool)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		value, ok := parse(answer)
		if ok {
			return value, nil
		}
		_, _ = fmt.Fprintln(p.out, ErrorStyle.Render(invalidMessage))
	}
}

// Confirm asks a yes/no question, anything but yes is a no
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return utils.IsYes(answer), nil
}

// GetFilters asks for the city, month and day to analyze
func (p *Prompter) GetFilters() (trip.Selection, error) {
	_, _ = fmt.Fprintln(p.out, TitleStyle.Render("Hello! Let's explore some US bikeshare data!"))

	city, err := p.AskValid(
		fmt.Sprintf("Enter the city (%s): ", strings.Join(trip.Cities(), ", ")),
		"Invalid city! Try again",
		trip.ParseCity,
	)
	if err != nil {
		return trip.Selection{}, err
	}

	month, err := p.AskValid(
		fmt.Sprintf("Enter the month (%s): ", strings.Join(trip.Months(), ", ")),
		"Invalid month! Try again",
		trip.ParseMonth,
	)
	if err != nil {
		return trip.Selection{}, err
	}

	day, err := p.AskValid(
		fmt.Sprintf("Enter the day (%s): ", strings.Join(trip.Days(), ", ")),
		"Invalid day! Try again",
		trip.ParseDay,
	)
	if err != nil {
		return trip.Selection{}, err
	}

	_, _ = fmt.Fprintln(p.out, DividerStyle.Render(divider))
	return trip.NewSelection(city, month, day)
}
