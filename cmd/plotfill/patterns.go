package main

import (
	"fmt"

	"plotfill/internal/pattern"
)

func runPatterns() {
	fmt.Printf("%-14s %-22s %-18s %s\n", "NAME", "SPACING", "ANGLE", "DESCRIPTION")
	for _, p := range pattern.All() {
		md := p.Metadata()
		fmt.Printf("%-14s %-22s %-18s %s\n", p.Name(), md.SpacingLabel, md.AngleLabel, md.Description)
	}
}
