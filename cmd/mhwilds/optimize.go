package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DSestu/MH-Wilds-Tools/internal/display"
	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	"github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/build"
	redisclient "github.com/DSestu/MH-Wilds-Tools/internal/redis"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
)

var (
	optimizeWeapon  string
	optimizeWishes  []string
	optimizeTimeout time.Duration
	optimizePlain   bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the best build for a weapon and wish list",
	Long: `Optimize selects one armor piece per slot, a charm, and jewels to
maximize the wished talents in priority order.

Each --wish takes the form NAME[:WEIGHT[:TARGET]]. WEIGHT ranges 0-5
(default 1); higher weights dominate lower ones. TARGET pins the talent
to an exact level instead of maximizing it.`,
	Example: `  mhwilds optimize --weapon "Lame d'espoir" \
      --wish "Attack Boost:3" --wish "Focus:2:2" --wish "Windproof"`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeWeapon, "weapon", "", "weapon name, exactly as listed by 'catalog weapons' (required)")
	optimizeCmd.Flags().StringArrayVar(&optimizeWishes, "wish", nil, "wished talent as NAME[:WEIGHT[:TARGET]] (repeatable)")
	optimizeCmd.Flags().DurationVar(&optimizeTimeout, "timeout", 2*time.Minute, "solve budget")
	optimizeCmd.Flags().BoolVar(&optimizePlain, "plain", false, "print raw markdown instead of styled output")
	_ = optimizeCmd.MarkFlagRequired("weapon")
}

// parseWish parses a --wish value of the form NAME[:WEIGHT[:TARGET]].
func parseWish(raw string) (entities.WishItem, error) {
	item := entities.WishItem{Weight: 1, TargetLevel: entities.NoTargetLevel}

	parts := strings.Split(raw, ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return item, errors.InvalidArgumentf("wish %q has no talent name", raw)
	}
	item.TalentName = parts[0]

	switch len(parts) {
	case 1:
	case 3:
		target, err := strconv.Atoi(parts[2])
		if err != nil {
			return item, errors.InvalidArgumentf("wish %q has invalid target %q", raw, parts[2])
		}
		item.TargetLevel = int32(target)
		fallthrough
	case 2:
		weight, err := strconv.Atoi(parts[1])
		if err != nil {
			return item, errors.InvalidArgumentf("wish %q has invalid weight %q", raw, parts[1])
		}
		item.Weight = int32(weight)
	default:
		return item, errors.InvalidArgumentf("wish %q has too many segments", raw)
	}
	return item, nil
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	wishes := make([]entities.WishItem, 0, len(optimizeWishes))
	for _, raw := range optimizeWishes {
		item, err := parseWish(raw)
		if err != nil {
			return err
		}
		wishes = append(wishes, item)
	}

	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	service, err := build.NewOrchestrator(&build.Config{CatalogRepo: repo})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), optimizeTimeout)
	defer cancel()

	out, err := service.OptimizeBuild(ctx, &build.OptimizeBuildInput{
		WeaponName: optimizeWeapon,
		WishList:   wishes,
	})
	if err != nil {
		return err
	}

	md, err := display.Markdown(out.Catalog, out.Solution)
	if err != nil {
		return err
	}
	rendered, err := display.Render(md, optimizePlain)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
