package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/prog/internal/core/domain/invocation"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/AntonioJCosta/prog/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// runList prints the aliases of the configuration as a table, sorted by name.
func runList(out io.Writer, req invocation.Request, svc ports.ConfigFileService) error {
	cfg, err := svc.Load(req.Path, req.Format)
	if err != nil {
		return err
	}

	if !cfg.Exists {
		fmt.Fprintln(out, ui.InfoColor("No configuration file found. Run 'prog --generate' to create one."))
		return nil
	}
	if len(cfg.Aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases defined in %s.", cfg.Path)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases in %s:", cfg.Path)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range cfg.Sorted() {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
	return nil
}
