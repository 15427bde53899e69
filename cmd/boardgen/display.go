package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/wippyai/boardgen/errors"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// PrintErrorMessage prints an error with a highlighted tag.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintSuccessMessage prints a completion message.
func PrintSuccessMessage(tag, msg string) {
	SuccessStyleBG.Print(tag)
	SuccessColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// printDiagnostics prints every error carried by err, one per line, then a
// count when there was more than one.
func printDiagnostics(err error) {
	errs := errors.Flatten(err)
	for _, e := range errs {
		PrintErrorMessage(errorTag(e), e)
	}
	if len(errs) > 1 {
		ErrorColorFG.Println(fmt.Sprintf("%d errors", len(errs)))
	}
}

// errorTag names an error by its kind, "Invalid Input Error" for
// invalid_input.
func errorTag(err error) string {
	var ge *errors.Error
	if !stderrors.As(err, &ge) {
		return "Error"
	}
	words := strings.Split(string(ge.Kind), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ") + " Error"
}
