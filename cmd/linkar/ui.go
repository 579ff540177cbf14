package main

import (
	"os"

	"github.com/pterm/pterm"
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}
}

func printSuccess(message string) {
	pterm.Success.Println(message)
}

func printError(message string) {
	pterm.Error.WithWriter(os.Stderr).Println(message)
}

func printWarning(message string) {
	pterm.Warning.Println(message)
}

func printInfo(message string) {
	pterm.Info.Println(message)
}

func printHeader(title string) {
	pterm.DefaultSection.Println(title)
}

func printTable(headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
