// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package printer

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type Consumer string

const (
	ConsumerHuman   Consumer = "human"
	ConsumerMachine Consumer = "machine"
)

// MachineReadablePrinter emits a value as JSON or YAML for scripting.
type MachineReadablePrinter[T any] struct {
	w      io.Writer
	format string
}

func NewMachineReadablePrinter[T any](w io.Writer, format string) *MachineReadablePrinter[T] {
	return &MachineReadablePrinter[T]{
		w:      w,
		format: format,
	}
}

func (p *MachineReadablePrinter[T]) Print(v *T) error {
	var data []byte
	var err error
	switch p.format {
	case "json":
		data, err = json.Marshal(v)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if _, err = p.w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
