// Package kiranico fetches the Monster Hunter Wilds game catalog from
// the kiranico.com data site.
package kiranico

//go:generate mockgen -destination=mock/mock_client.go -package=kiranicomock github.com/DSestu/MH-Wilds-Tools/internal/clients/kiranico Client

import (
	"context"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
)

// Client defines the interface for fetching catalog data.
type Client interface {
	// ListTalents fetches every talent with its group and level table.
	// Returns errors.Unavailable when the site cannot be reached
	// Returns errors.Internal when a page cannot be parsed
	ListTalents(ctx context.Context, input *ListTalentsInput) (*ListTalentsOutput, error)

	// ListArmorPieces fetches every armor piece across all series.
	ListArmorPieces(ctx context.Context, input *ListArmorPiecesInput) (*ListArmorPiecesOutput, error)

	// ListCharms fetches every charm.
	ListCharms(ctx context.Context, input *ListCharmsInput) (*ListCharmsOutput, error)

	// ListJewels fetches every jewel (decoration).
	ListJewels(ctx context.Context, input *ListJewelsInput) (*ListJewelsOutput, error)

	// ListWeapons fetches every weapon with its intrinsic talents and
	// gem slots.
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)
}

// ListTalentsInput defines the input for listing talents
type ListTalentsInput struct{}

// ListTalentsOutput defines the output for listing talents
type ListTalentsOutput struct {
	Talents []entities.Talent
}

// ListArmorPiecesInput defines the input for listing armor pieces
type ListArmorPiecesInput struct{}

// ListArmorPiecesOutput defines the output for listing armor pieces
type ListArmorPiecesOutput struct {
	ArmorPieces []entities.ArmorPiece
}

// ListCharmsInput defines the input for listing charms
type ListCharmsInput struct{}

// ListCharmsOutput defines the output for listing charms
type ListCharmsOutput struct {
	Charms []entities.Charm
}

// ListJewelsInput defines the input for listing jewels
type ListJewelsInput struct{}

// ListJewelsOutput defines the output for listing jewels
type ListJewelsOutput struct {
	Jewels []entities.Jewel
}

// ListWeaponsInput defines the input for listing weapons
type ListWeaponsInput struct{}

// ListWeaponsOutput defines the output for listing weapons
type ListWeaponsOutput struct {
	Weapons []entities.Weapon
}
