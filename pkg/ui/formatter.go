package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	// BoxWidth is the standard width for display boxes
	BoxWidth = 80
)

// ColorScheme defines a set of colors for consistent UI formatting
type ColorScheme struct {
	Header   *color.Color // For box borders and section headers
	Title    *color.Color // For main titles
	Subtitle *color.Color // For section titles
	Normal   *color.Color // For normal text
	Param    *color.Color // For parameter names
	Key      *color.Color // For key material and addresses
	Result   *color.Color // For result messages
	Success  *color.Color // For success messages
	Error    *color.Color // For error messages
}

// DefaultColorScheme returns the default color scheme for the application
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:   color.New(color.FgBlue, color.Bold),
		Title:    color.New(color.FgHiWhite, color.Bold),
		Subtitle: color.New(color.FgBlue),
		Normal:   color.New(color.FgWhite),
		Param:    color.New(color.FgCyan),
		Key:      color.New(color.FgHiCyan),
		Result:   color.New(color.FgBlue),
		Success:  color.New(color.FgGreen, color.Bold),
		Error:    color.New(color.FgRed),
	}
}

// PrintHeader prints a formatted header box with the given title
func PrintHeader(cs *ColorScheme, title string) {
	padding := BoxWidth - 4 - len(title)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭─────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Title.Print(title)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰─────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintFooter prints a formatted footer box with the given message
func PrintFooter(cs *ColorScheme, message string) {
	// If message is too long, truncate it
	if len(message) > BoxWidth-6 {
		message = message[:BoxWidth-9] + "..."
	}

	padding := BoxWidth - 4 - len(message)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭──────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Result.Print(message)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰──────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintSectionHeader prints a section header
func PrintSectionHeader(cs *ColorScheme, title string) {
	cs.Subtitle.Println(title)
}

// PrintKeyValue prints an aligned label/value pair
func PrintKeyValue(cs *ColorScheme, label, value string) {
	cs.Param.Printf("  %-14s", label)
	cs.Key.Println(value)
}
