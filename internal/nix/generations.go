// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package nix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/tidwall/gjson"

	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

// ListGenerations scans the profile's directory for <name>-<n>-link entries
// and returns them newest first. The current generation is whatever the
// profile symlink points at.
func ListGenerations(profile model.Profile) ([]model.Generation, error) {
	dir := filepath.Dir(profile.Path)
	base := filepath.Base(profile.Path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profile directory %s: %w", dir, err)
	}

	current, _ := os.Readlink(profile.Path)

	var generations []model.Generation
	for _, entry := range entries {
		rest, ok := strings.CutPrefix(entry.Name(), base+"-")
		if !ok {
			continue
		}
		idStr, ok := strings.CutSuffix(rest, "-link")
		if !ok {
			continue
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		generations = append(generations, model.Generation{
			ID:        id,
			Timestamp: info.ModTime().Format(time.DateTime),
			Current:   entry.Name() == current,
		})
	}

	sort.Slice(generations, func(i, j int) bool { return generations[i].ID > generations[j].ID })
	return generations, nil
}

// GenerationDetails enriches generations with version metadata read from the
// generation store paths. The reads are independent, so they run concurrently.
func GenerationDetails(ctx context.Context, runner process.Runner, profile model.Profile, generations []model.Generation) []model.GenerationDetail {
	details := make([]model.GenerationDetail, len(generations))

	var wg conc.WaitGroup
	for i, gen := range generations {
		wg.Go(func() {
			details[i] = describeGeneration(ctx, runner, GenerationPath(profile, gen), gen)
		})
	}
	wg.Wait()

	return details
}

// GenerationPath returns the on-disk link for one generation of a profile.
func GenerationPath(profile model.Profile, gen model.Generation) string {
	return fmt.Sprintf("%s-%d-link", profile.Path, gen.ID)
}

func describeGeneration(ctx context.Context, runner process.Runner, genPath string, gen model.Generation) model.GenerationDetail {
	detail := model.GenerationDetail{
		Generation:      gen.ID,
		Date:            gen.Timestamp,
		Current:         gen.Current,
		Specialisations: []string{},
	}

	// nixos-version --json knows both the version and the configuration
	// revision; older generations only have the plain nixos-version file.
	out, err := runner.Run(ctx, process.Command{
		Argv:    []string{filepath.Join(genPath, "sw", "bin", "nixos-version"), "--json"},
		Capture: true,
	})
	if err == nil {
		detail.NixOSVersion = gjson.Get(out, "nixosVersion").String()
		detail.ConfigurationRevision = gjson.Get(out, "configurationRevision").String()
	} else if data, readErr := os.ReadFile(filepath.Join(genPath, "nixos-version")); readErr == nil {
		detail.NixOSVersion = strings.TrimSpace(string(data))
	}

	if modules, _ := filepath.Glob(filepath.Join(genPath, "kernel-modules", "lib", "modules", "*")); len(modules) > 0 {
		detail.KernelVersion = filepath.Base(modules[0])
	}

	if entries, err := os.ReadDir(filepath.Join(genPath, "specialisation")); err == nil {
		for _, entry := range entries {
			detail.Specialisations = append(detail.Specialisations, entry.Name())
		}
	}

	return detail
}
