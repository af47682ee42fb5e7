package main

import (
	"github.com/go-leo/creational/builder"
	"github.com/go-leo/creational/product"
	"github.com/spf13/cobra"
)

const customRecipe = "custom"

type builtProduct struct {
	Recipe  string `json:"recipe" yaml:"recipe"`
	Product any    `json:"product" yaml:"product"`
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		custom   []string
		manifest bool
	)
	cmd := &cobra.Command{
		Use:   "build [recipe...]",
		Short: "Assemble products from recipes",
		Long: `Assemble one product per recipe, then the custom product given by --custom.
Without arguments the minimal-viable and full-featured recipes run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			director := builder.NewDirector(
				builder.WithLogger(a.logger),
				builder.WithSteps(customRecipe, custom...),
			)
			recipes := args
			if len(recipes) == 0 {
				recipes = []string{builder.MinimalViable, builder.FullFeatured}
			}
			if len(custom) > 0 {
				recipes = append(recipes, customRecipe)
			}

			var lines []string
			var built []builtProduct
			for _, recipe := range recipes {
				var (
					p   interface{ String() string }
					err error
				)
				if manifest {
					p, err = builder.Construct[*product.Manifest](cmd.Context(), director, builder.NewManifestAssembler(), recipe)
				} else {
					p, err = builder.Construct[*product.Product](cmd.Context(), director, builder.NewListAssembler(), recipe)
				}
				if err != nil {
					return err
				}
				lines = append(lines, recipe+": "+p.String())
				built = append(built, builtProduct{Recipe: recipe, Product: p})
			}
			return render(cmd.OutOrStdout(), a.output, lines, built)
		},
	}
	cmd.Flags().StringSliceVar(&custom, "custom", []string{"PartA1", "PartC1"}, "parts of the custom product, empty to skip it")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "tally parts into a manifest instead of a list")
	return cmd
}

func newRecipesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List the built-in recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := builder.NewDirector().Recipes()
			return render(cmd.OutOrStdout(), a.output, names, names)
		},
	}
}
