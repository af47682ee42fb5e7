package main

import (
	"fmt"

	"github.com/go-leo/creational/prototype"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCloneCmd(a *app) *cobra.Command {
	var values []float64
	cmd := &cobra.Command{
		Use:   "clone [tag...]",
		Short: "Clone prototypes from the registry and apply a value to each clone",
		Long: `Clone each tag (all tags without arguments) and apply --value to the clone.
Values are used in turn; the last one repeats when there are more tags than values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := prototype.Default(prototype.WithLogger[prototype.Tag](a.logger))
			tags := registry.Tags()
			if len(args) > 0 {
				tags = tags[:0]
				for _, arg := range args {
					tag, err := prototype.ParseTag(arg)
					if err != nil {
						return err
					}
					tags = append(tags, tag)
				}
			}

			var lines []string
			var snapshots []prototype.Snapshot
			for i, tag := range tags {
				p, err := registry.Create(cmd.Context(), tag)
				if err != nil {
					return err
				}
				if len(values) > 0 {
					p.Apply(values[min(i, len(values)-1)])
				}
				a.logger.Debug("prototype cloned", zap.Stringer("tag", tag), zap.Float64("field", p.Field()))
				lines = append(lines, fmt.Sprintf("Call Method from %s with field : %g", p.Name(), p.Field()))
				snapshots = append(snapshots, prototype.Describe(p))
			}
			return render(cmd.OutOrStdout(), a.output, lines, snapshots)
		},
	}
	cmd.Flags().Float64SliceVar(&values, "value", []float64{90, 10}, "values applied to the clones in turn")
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the registered prototype tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			for _, tag := range prototype.Default().Tags() {
				names = append(names, tag.String())
			}
			return render(cmd.OutOrStdout(), a.output, names, names)
		},
	}
}
