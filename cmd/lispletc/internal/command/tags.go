package command

import (
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/vcrobe/lisplet/tags"
)

func NewTagsCommand(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the legal markup tags",
		Long: Highlight("lispletc tags") + "\n\n" +
			"List every tag name the compiler accepts as an element head,\n" +
			"including the pseudo-tags carrying character data and comments.\n" +
			"Anything outside this registry renders as a div.\n",
		Args: ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			headerFmt := color.New(color.FgGreen, color.Bold).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()

			tbl := table.New("Tag", "Kind").WithWriter(cli.Writer)
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

			for _, name := range tags.All() {
				kind := "element"
				if strings.HasPrefix(name, "%") {
					kind = "pseudo"
				}
				tbl.AddRow(name, kind)
			}

			tbl.Print()
			cli.Printf("\n%d tags\n", tags.Count())
		},
	}

	return cmd
}
