package main

import (
	"encoding/json"
	"fmt"

	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/internal/query"
	"github.com/Payphone-Digital/roster/internal/repository"
	"github.com/Payphone-Digital/roster/internal/service"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/Payphone-Digital/roster/pkg/render"
	"github.com/spf13/cobra"
)

const pageTemplate = `Page {{ .Page }} of {{ .TotalPages }} ({{ .Total }} matching)
{{ printf "%-12s %-14s %3s %5s %-16s %4s  %s" "FIRST" "LAST" "AGE" "VISITS" "STATUS" "PROG" "CREATED" }}
{{ range .Items -}}
{{ printf "%-12s %-14s %3d %5d %-16s %3d%%  %s" (.FirstName | trunc 12) (.LastName | trunc 14) .Age .Visits (toString .Status) .Progress (.CreatedAt.Format "2006-01-02") }}
{{ end -}}
`

const metaTemplate = `statuses:        {{ join ", " .Statuses }}
sort fields:     {{ join ", " .SortFields }}
sort directions: {{ join ", " .SortDirections }}
page size:       {{ .DefaultPageSize }} (max {{ .MaxPageSize }})
`

type datasetFlags struct {
	seed int64
	size int
}

func newRootCmd() *cobra.Command {
	var logLevel string
	ds := &datasetFlags{}

	root := &cobra.Command{
		Use:           "personctl",
		Short:         "Query the generated person directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitConsoleLogger(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", constants.LogLevelWarn, "log level written to stderr")
	root.PersistentFlags().Int64Var(&ds.seed, "seed", constants.DefaultDatasetSeed, "dataset seed")
	root.PersistentFlags().IntVar(&ds.size, "size", constants.DefaultDatasetSize, "number of generated persons")

	root.AddCommand(newQueryCmd(ds), newMetaCmd(ds))
	return root
}

func newService(ds *datasetFlags) (*service.PersonService, error) {
	store, err := repository.NewSeededMemoryStore(ds.seed, ds.size, 0)
	if err != nil {
		return nil, err
	}
	return service.NewPersonService(store), nil
}

func newQueryCmd(ds *datasetFlags) *cobra.Command {
	req := query.DefaultRequest()
	var output string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print one page of persons",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(ds)
			if err != nil {
				return err
			}

			res, err := svc.Query(cmd.Context(), req)
			if err != nil {
				return err
			}

			return write(cmd, output, pageTemplate, res)
		},
	}

	f := cmd.Flags()
	f.IntVar(&req.Page, "page", req.Page, "page number, clamped to the last page")
	f.IntVar(&req.PageSize, "page-size", req.PageSize, "records per page")
	f.StringVar(&req.Search, "query", req.Search, "case-insensitive first or last name substring")
	f.StringVar(&req.Status, "status", req.Status, "status filter or \"all\"")
	f.StringVar(&req.SortField, "sort", req.SortField, "sort field")
	f.StringVar(&req.SortDirection, "order", req.SortDirection, "sort direction (asc or desc)")
	f.StringVarP(&output, "output", "o", "table", "output format (table or json)")

	return cmd
}

func newMetaCmd(ds *datasetFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "List accepted statuses, sort fields and directions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(ds)
			if err != nil {
				return err
			}
			return write(cmd, output, metaTemplate, svc.Meta())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table or json)")
	return cmd
}

func write(cmd *cobra.Command, output, tmplStr string, data any) error {
	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "table":
		tmpl, err := render.Parse(cmd.Name(), tmplStr)
		if err != nil {
			return err
		}
		return render.Write(cmd.OutOrStdout(), tmpl, data)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
