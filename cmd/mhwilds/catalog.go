package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DSestu/MH-Wilds-Tools/internal/orchestrators/build"
	redisclient "github.com/DSestu/MH-Wilds-Tools/internal/redis"
	"github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the stored catalog",
}

var catalogWeaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List stored weapons",
	RunE:  runCatalogWeapons,
}

var catalogTalentsCmd = &cobra.Command{
	Use:   "talents",
	Short: "List stored talents",
	RunE:  runCatalogTalents,
}

func init() {
	catalogCmd.AddCommand(catalogWeaponsCmd)
	catalogCmd.AddCommand(catalogTalentsCmd)
}

func newBuildService() (build.Service, func(), error) {
	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = client.Close() }

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	service, err := build.NewOrchestrator(&build.Config{CatalogRepo: repo})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return service, cleanup, nil
}

func runCatalogWeapons(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newBuildService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := service.ListWeapons(cmd.Context(), &build.ListWeaponsInput{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSLOTS\tTALENTS")
	for _, weapon := range out.Weapons {
		fmt.Fprintf(w, "%s\t%d\t%d\n", weapon.Name, weapon.Slots.Total(), len(weapon.Talents))
	}
	return w.Flush()
}

func runCatalogTalents(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newBuildService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := service.ListTalents(cmd.Context(), &build.ListTalentsInput{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGROUP\tMAX LEVEL")
	for i := range out.Talents {
		talent := &out.Talents[i]
		fmt.Fprintf(w, "%s\t%s\t%d\n", talent.Name, talent.Group, talent.MaxLevel())
	}
	return w.Flush()
}
