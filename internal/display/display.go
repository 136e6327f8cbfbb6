// Package display renders optimization results as markdown, either raw
// or styled for the terminal.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

// slotLabels maps armor slots to their display names, in display order.
var slotLabels = []struct {
	slot  entities.Slot
	label string
}{
	{entities.SlotHead, "Head"},
	{entities.SlotChest, "Chest"},
	{entities.SlotArms, "Arms"},
	{entities.SlotWaist, "Waist"},
	{entities.SlotLegs, "Legs"},
}

// Markdown renders a solved build as a markdown document: the chosen
// gear, the inserted jewels, and every conferred talent with its
// effective level and in-game description.
func Markdown(cat *entities.Catalog, sol *entities.Solution) (string, error) {
	if cat == nil || sol == nil {
		return "", errors.InvalidArgument("catalog and solution are required")
	}

	finals, err := cat.EffectiveLevels(sol)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Build for %s\n\n", sol.Weapon)

	sb.WriteString("## Equipment\n\n")
	sb.WriteString("| Slot | Piece | Gem slots |\n|---|---|---|\n")
	fmt.Fprintf(&sb, "| Weapon | %s | %s |\n", sol.Weapon, formatSlots(weaponSlots(cat, sol.Weapon)))
	for _, entry := range slotLabels {
		name, ok := sol.Piece(entry.slot)
		if !ok {
			fmt.Fprintf(&sb, "| %s | — | |\n", entry.label)
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", entry.label, name, formatSlots(armorSlots(cat, name)))
	}
	if sol.Charm != "" {
		fmt.Fprintf(&sb, "| Charm | %s | |\n", sol.Charm)
	}
	sb.WriteString("\n")

	if len(sol.Jewels) > 0 {
		sb.WriteString("## Jewels\n\n")
		sb.WriteString("| Jewel | Size | Count |\n|---|---|---|\n")
		names := make([]string, 0, len(sol.Jewels))
		for name := range sol.Jewels {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			var size int32
			for i := range cat.Jewels {
				if cat.Jewels[i].Name == name {
					size = cat.Jewels[i].Size
				}
			}
			fmt.Fprintf(&sb, "| %s | %d | %d |\n", name, size, sol.Jewels[name])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Talents\n\n")
	sb.WriteString("| Talent | Level | Description |\n|---|---|---|\n")
	for _, row := range talentRows(cat, finals) {
		fmt.Fprintf(&sb, "| %s | %d | %s |\n", row.name, row.level, row.description)
	}

	return sb.String(), nil
}

type talentRow struct {
	name        string
	level       int32
	description string
}

// talentRows sorts conferred talents by level descending then name, and
// attaches the description of the highest level entry not exceeding the
// effective level.
func talentRows(cat *entities.Catalog, finals map[string]int32) []talentRow {
	rows := make([]talentRow, 0, len(finals))
	for name, level := range finals {
		row := talentRow{name: name, level: level}
		if talent, ok := cat.TalentByName(name); ok {
			for _, lv := range talent.Levels {
				if lv.Level <= level {
					row.description = lv.Description
				}
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].level != rows[j].level {
			return rows[i].level > rows[j].level
		}
		return rows[i].name < rows[j].name
	})
	return rows
}

func armorSlots(cat *entities.Catalog, pieceName string) entities.GemSlots {
	for i := range cat.ArmorPieces {
		if cat.ArmorPieces[i].Name == pieceName {
			return cat.ArmorPieces[i].Slots
		}
	}
	return entities.GemSlots{}
}

func weaponSlots(cat *entities.Catalog, weaponName string) entities.GemSlots {
	if w, ok := cat.WeaponByName(weaponName); ok {
		return w.Slots
	}
	return entities.GemSlots{}
}

// formatSlots renders gem slots in the site's bracket notation,
// largest first.
func formatSlots(slots entities.GemSlots) string {
	var sb strings.Builder
	for size := entities.MaxGemSlotSize; size >= 1; size-- {
		for i := int32(0); i < slots.Count(size); i++ {
			fmt.Fprintf(&sb, "[%d]", size)
		}
	}
	return sb.String()
}

// Render styles a markdown document for the terminal. With plain set,
// the markdown is returned untouched, for piping into files.
func Render(markdown string, plain bool) (string, error) {
	if plain {
		return markdown, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(110),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to build terminal renderer")
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", errors.Wrap(err, "failed to render markdown")
	}
	return out, nil
}
