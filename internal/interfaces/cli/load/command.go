// Package load implements the CLI commands that mirror parts of the Eve
// universe into the local database.
package load

import (
	"fmt"

	"github.com/spf13/cobra"

	"eveuniverse/internal/interfaces/cli/bootstrap"
	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/universe/engine"
	"eveuniverse/internal/universe/schema"
)

var (
	env          string
	sectionNames []string
	async        bool

	categoryIDs []int64
	groupIDs    []int64
	typeIDs     []int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load universe data from ESI",
		Long:  `Mirror selected parts of the Eve Online universe into the local database.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringSliceVar(&sectionNames, "sections", nil, "Extra sections to load (e.g. dogmas,planets)")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "Dispatch child loads to background workers instead of waiting")

	cmd.AddCommand(
		newMapCommand(),
		newShipsCommand(),
		newStructuresCommand(),
		newTypesCommand(),
		newUnitsCommand(),
		newPricesCommand(),
	)

	return cmd
}

func newMapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Load all regions, constellations and solar systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				count, err := app.Engine.UpdateOrCreateAll(cmd.Context(), "EveRegion", opts)
				if err != nil {
					return err
				}
				fmt.Printf("Loaded %d regions\n", count)
				return nil
			})
		},
	}
}

func newShipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ships",
		Short: "Load all ship types with their dogma data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				opts.Sections = append(opts.Sections, schema.SectionDogmas)
				return loadCategory(cmd, app, constants.EveCategoryIDShip, opts)
			})
		},
	}
}

func newStructuresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "structures",
		Short: "Load all structure types with their dogma data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				opts.Sections = append(opts.Sections, schema.SectionDogmas)
				return loadCategory(cmd, app, constants.EveCategoryIDStructure, opts)
			})
		},
	}
}

func newTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Load selected inventory types",
		Long:  `Load inventory types by category, group or individual type ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(categoryIDs) == 0 && len(groupIDs) == 0 && len(typeIDs) == 0 {
				return errors.NewInvalidInputError("at least one of --category-id, --group-id or --type-id is required")
			}
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				for _, id := range categoryIDs {
					if err := loadCategory(cmd, app, id, opts); err != nil {
						return err
					}
				}
				for _, id := range groupIDs {
					if _, _, err := app.Engine.UpdateOrCreate(cmd.Context(), "EveGroup", id, opts); err != nil {
						return err
					}
					fmt.Printf("Loaded group %d\n", id)
				}
				for _, id := range typeIDs {
					if _, _, err := app.Engine.UpdateOrCreate(cmd.Context(), "EveType", id, opts); err != nil {
						return err
					}
					fmt.Printf("Loaded type %d\n", id)
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64SliceVar(&categoryIDs, "category-id", nil, "Category IDs to load with all their types")
	cmd.Flags().Int64SliceVar(&groupIDs, "group-id", nil, "Group IDs to load with all their types")
	cmd.Flags().Int64SliceVar(&typeIDs, "type-id", nil, "Individual type IDs to load")

	return cmd
}

func newUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Load the dogma units table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				count, err := app.Engine.LoadUnits(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Loaded %d units\n", count)
				return nil
			})
		},
	}
}

func newPricesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "Refresh market prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App, opts engine.LoadOptions) error {
				count, err := app.Engine.UpdateMarketPrices(cmd.Context(), 0)
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Println("Market prices are still fresh")
				} else {
					fmt.Printf("Updated %d market prices\n", count)
				}
				return nil
			})
		},
	}
}

func loadCategory(cmd *cobra.Command, app *bootstrap.App, categoryID int64, opts engine.LoadOptions) error {
	if _, _, err := app.Engine.UpdateOrCreate(cmd.Context(), "EveCategory", categoryID, opts); err != nil {
		return err
	}
	fmt.Printf("Loaded category %d\n", categoryID)
	return nil
}

// withApp assembles the stack, parses the shared flags into load options
// and tears everything down afterwards.
func withApp(cmd *cobra.Command, fn func(*bootstrap.App, engine.LoadOptions) error) error {
	sections, err := parseSections(sectionNames)
	if err != nil {
		return err
	}
	app, err := bootstrap.Setup(cmd.Context(), env)
	if err != nil {
		return err
	}
	defer app.Close()

	opts := engine.LoadOptions{
		Sections:        sections,
		IncludeChildren: true,
		WaitForChildren: !async,
	}
	return fn(app, opts)
}

func parseSections(names []string) ([]schema.Section, error) {
	sections := make([]schema.Section, 0, len(names))
	for _, name := range names {
		section, ok := schema.ParseSection(name)
		if !ok {
			return nil, errors.NewInvalidInputError("unknown section " + name)
		}
		sections = append(sections, section)
	}
	return sections, nil
}
