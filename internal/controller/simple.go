package controller

import (
	"bytes"
	"fmt"
	"math"
	"time"

	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately, there is nothing to wait for.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo prints the run header.
func (s *SimpleUI) DisplayRunInfo(source m.Path, peaks int, threads int) {
	s.printf("Tracing %s: %d peaks with %d worker(s)\n", source, peaks, threads)
}

// DisplayStageStarted prints the stage being started.
func (s *SimpleUI) DisplayStageStarted(stage string, index, total int) {
	s.printf("[%d/%d] %s\n", index, total, stage)
}

// DisplayStageCompleted prints the stage outcome.
func (s *SimpleUI) DisplayStageCompleted(stage string, items int, elapsed time.Duration) {
	s.printf("      %s: %d in %s\n", stage, items, elapsed.Round(time.Millisecond))
}

// DisplayModel prints the chain table of the finished model or the error.
func (s *SimpleUI) DisplayModel(report m.Report, saved m.Path, err error) error {
	if err != nil {
		s.printf("trace error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Chain", "Residues", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	residues := 0

	for _, chain := range report.Chains {
		table.Append([]string{chain.ID, fmt.Sprintf("%d", chain.Residues), fmt.Sprintf("%.2f", chain.Score)})
		residues += chain.Residues
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Chains %d", len(report.Chains)),
		fmt.Sprintf("%d", residues),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if saved != "" {
		s.printf("Model saved to %s\n", saved)
	}

	return nil
}

// DisplayRankedLinks prints the ranked candidate links or the error.
func (s *SimpleUI) DisplayRankedLinks(links []m.DirectedLink, err error) error {
	if err != nil {
		s.printf("score error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rank", "From", "To", "Score", "Reverse", "Alpha"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for i, link := range links {
		table.Append(linkRow(i, link))
	}

	table.SetFooter([]string{"", "", "", "", "Total Links", fmt.Sprintf("%d", len(links))})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func linkRow(i int, link m.DirectedLink) []string {
	reverse := "-"
	if link.HasReverse {
		reverse = fmt.Sprintf("%.3f", link.Reverse)
	}

	return []string{
		fmt.Sprintf("%d", i+1),
		fmt.Sprintf("%d", link.Source),
		fmt.Sprintf("%d", link.Target),
		fmt.Sprintf("%.3f", link.SpinScore),
		reverse,
		fmt.Sprintf("%.0f", link.Alpha*180/math.Pi),
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
