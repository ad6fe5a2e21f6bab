package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newQueryCommand creates the query command.
func newQueryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <gremlin-query>",
		Short: "Send a traversal query and print the JSON result",
		Long: `Send a serialized traversal query to the database's query endpoint
and print the decoded JSON reply, e.g.:

  graphley query "g.V('alice').Out('follows').All()"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Query(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, resp.Body, "", "  "); err != nil {
				return fmt.Errorf("format response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}
