package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSestu/MH-Wilds-Tools/internal/display"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
)

func testCatalog() *entities.Catalog {
	return &entities.Catalog{
		Talents: []entities.Talent{
			{Name: "Attack Boost", Group: entities.TalentGroupEquip, Levels: []entities.TalentLevel{
				{Level: 1, Description: "Attack +3."},
				{Level: 2, Description: "Attack +5."},
				{Level: 3, Description: "Attack +7."},
			}},
			{Name: "Focus", Group: entities.TalentGroupWeapon, Levels: []entities.TalentLevel{
				{Level: 1, Description: "Gauge fills 5% faster."},
			}},
		},
		ArmorPieces: []entities.ArmorPiece{
			{Name: "Hope Helm", Slot: entities.SlotHead,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 2}},
				Slots:   entities.GemSlots{2, 1, 0, 0}},
		},
		Charms: []entities.Charm{
			{Name: "Power Charm", Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 1}}},
		},
		Weapons: []entities.Weapon{
			{Name: "Hope Blade",
				Talents: []entities.TalentGrant{{TalentName: "Focus", Level: 1}},
				Slots:   entities.GemSlots{1, 0, 0, 0}},
		},
		Jewels: []entities.Jewel{
			{Name: "Attack Jewel [1]", Size: 1,
				Talents: []entities.TalentGrant{{TalentName: "Attack Boost", Level: 1}}},
		},
	}
}

func testSolution() *entities.Solution {
	return &entities.Solution{
		Pieces: map[entities.Slot]string{entities.SlotHead: "Hope Helm"},
		Charm:  "Power Charm",
		Weapon: "Hope Blade",
		Jewels: map[string]int32{"Attack Jewel [1]": 1},
	}
}

func TestMarkdown(t *testing.T) {
	md, err := display.Markdown(testCatalog(), testSolution())
	require.NoError(t, err)

	assert.Contains(t, md, "# Build for Hope Blade")
	assert.Contains(t, md, "| Head | Hope Helm | [2][1][1] |")
	assert.Contains(t, md, "| Chest | — | |")
	assert.Contains(t, md, "| Charm | Power Charm | |")
	assert.Contains(t, md, "| Weapon | Hope Blade | [1] |")
	assert.Contains(t, md, "| Attack Jewel [1] | 1 | 1 |")

	// Helm 2 + charm 1 + jewel 1 caps at 3; description follows the level.
	assert.Contains(t, md, "| Attack Boost | 3 | Attack +7. |")
	assert.Contains(t, md, "| Focus | 1 | Gauge fills 5% faster. |")

	// Talents sort by level descending.
	assert.Less(t,
		strings.Index(md, "| Attack Boost |"),
		strings.Index(md, "| Focus |"))
}

func TestMarkdownRequiresInputs(t *testing.T) {
	_, err := display.Markdown(nil, testSolution())
	assert.Error(t, err)
	_, err = display.Markdown(testCatalog(), nil)
	assert.Error(t, err)
}

func TestRenderPlainPassesThrough(t *testing.T) {
	out, err := display.Render("# Title", true)
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestRenderStyled(t *testing.T) {
	out, err := display.Render("# Title\n\nbody text\n", false)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
