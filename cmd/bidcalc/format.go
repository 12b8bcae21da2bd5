package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gbistila/bidupgradestest/pkg/present"
	"github.com/gbistila/bidupgradestest/pkg/validation"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(18)
	amountStyle  = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	totalStyle   = amountStyle.Bold(true)
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printBid(w io.Writer, title string, v present.View) {
	heading := "Bid"
	if title != "" {
		heading = "Bid: " + title
	}
	fmt.Fprintln(w, headingStyle.Render(heading))
	fmt.Fprintln(w)

	rows := []struct {
		label, amount string
	}{
		{"Soil removal", v.SoilRemoval},
		{"Road base", v.RoadBase},
		{"Concrete", v.Concrete},
	}
	for _, row := range rows {
		fmt.Fprintln(w, labelStyle.Render(row.label)+amountStyle.Render(row.amount))
	}
	fmt.Fprintln(w, labelStyle.Render("TOTAL")+totalStyle.Render(v.Total))

	if v.HasHandoff() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Operational handoff"))
		fmt.Fprintln(w, v.Handoff)
	}
}
