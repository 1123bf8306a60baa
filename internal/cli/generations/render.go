// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package generations

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/nixhaven/nixos-rebuild/internal/cli/display"
	"github.com/nixhaven/nixos-rebuild/internal/cli/printer"
	"github.com/nixhaven/nixos-rebuild/internal/model"
)

// writeGenerations emits the generation listing for the requested consumer:
// a table for humans, JSON for machines.
func writeGenerations(w io.Writer, profile model.Profile, details []model.GenerationDetail, consumer printer.Consumer) error {
	if consumer == printer.ConsumerMachine {
		return printer.NewMachineReadablePrinter[[]model.GenerationDetail](w, "json").Print(&details)
	}

	output, err := renderGenerations(profile, details)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, output)
	return err
}

func renderGenerations(profile model.Profile, details []model.GenerationDetail) (string, error) {
	if len(details) == 0 {
		return display.Gold(fmt.Sprintf("No generations found for profile %s.\n", profile.Name)), nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On, ShowHeader: tw.On}},
		})))
	table.Header(display.LightBlue("Generation"), "Date", "NixOS Version", "Kernel", "Revision", "Specialisations", "Current")

	data := make([][]string, len(details))
	for i, d := range details {
		current := ""
		gen := strconv.Itoa(d.Generation)
		if d.Current {
			current = display.Green("yes")
			gen = display.Green(gen)
		}
		data[i] = []string{
			gen,
			d.Date,
			d.NixOSVersion,
			d.KernelVersion,
			d.ConfigurationRevision,
			strings.Join(d.Specialisations, ", "),
			current,
		}
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("error rendering generations: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering generations: %v", err)
	}

	return buf.String(), nil
}
