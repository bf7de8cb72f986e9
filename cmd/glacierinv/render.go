package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/inventory"
)

type renderer string

const (
	renderText renderer = "text"
	renderJSON renderer = "json"
	renderYAML renderer = "yaml"
)

func newRenderer(style string) (renderer, error) {
	switch r := renderer(style); r {
	case renderText, renderJSON, renderYAML:
		return r, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", style)
	}
}

// inventory prints rec. The text form lists one archive per line.
func (r renderer) inventory(w io.Writer, rec *inventory.Record) error {
	switch r {
	case renderJSON:
		return writeJSON(w, rec)
	case renderYAML:
		return writeYAML(w, rec)
	}

	if _, err := fmt.Fprintf(w, "Vault ARN: %s\n", rec.VaultARN); err != nil {
		return err
	}
	if !rec.InventoryDate.IsZero() {
		fmt.Fprintf(w, "Inventory date: %s\n", rec.InventoryDate.Format(time.RFC3339))
	}
	for _, a := range rec.ArchiveList {
		if _, err := fmt.Fprintf(w, "  Size: %6d  Archive ID: %s\n", a.Size, a.ArchiveID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d archive(s), %d bytes\n", rec.Len(), rec.TotalSize())
	return err
}

func (r renderer) buckets(w io.Writer, buckets []bucket.Info) error {
	switch r {
	case renderJSON:
		return writeJSON(w, buckets)
	case renderYAML:
		return writeYAML(w, buckets)
	}

	for _, b := range buckets {
		if _, err := fmt.Fprintln(w, b.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
