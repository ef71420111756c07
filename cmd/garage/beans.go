package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ARTM2000/acorn"
	"github.com/ARTM2000/acorn/internal/garage"
)

func newBeansCmd(a *app) *cobra.Command {
	var carsOnly bool

	cmd := &cobra.Command{
		Use:   "beans",
		Short: "List registered beans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.ctx.Names()
			if carsOnly {
				names = names[:0]
				for name := range acorn.GetAll[garage.Car](a.ctx) {
					names = append(names, name)
				}
				slices.Sort(names)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tNAMESPACE")
			for _, name := range names {
				typ, _ := a.ctx.TypeOf(name)
				ns, _ := a.ctx.Namespace(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, typ, ns)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&carsOnly, "cars", false, "only list beans that are cars")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show one bean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			car, err := acorn.GetNamed[garage.Car](a.ctx, args[0])
			if err != nil {
				return err
			}
			typ, _ := a.ctx.TypeOf(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", args[0], car.Name(), typ)
			return nil
		},
	}
}
