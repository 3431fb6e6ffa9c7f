package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	styleNotice = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printBanner shows the program name, version and license notice.
func printBanner(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Chatlog Search v%s", version))+" Copyright (C) 2019 QueenPengu")
	fmt.Fprintln(w, styleNotice.Render(`This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it
under certain conditions (see LICENSE.txt for more information).`))
	fmt.Fprintln(w)
}
