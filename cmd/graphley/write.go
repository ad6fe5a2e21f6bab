package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/graphley"
	"github.com/syssam/graphley/quad"
)

// newWriteCommand creates the write command.
func newWriteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "write <quads.json>",
		Short: "Write a JSON array of quads to the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuads(cmd, opts, args[0], func(ctx context.Context, c *graphley.Client, s *quad.Set) ([]byte, error) {
				return c.Write(ctx, s)
			})
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quads.json>",
		Short: "Delete a JSON array of quads from the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuads(cmd, opts, args[0], func(ctx context.Context, c *graphley.Client, s *quad.Set) ([]byte, error) {
				return c.Delete(ctx, s)
			})
		},
	}
}

// runQuads loads and validates a quad file, sends it with send, and prints
// the raw server reply.
func runQuads(
	cmd *cobra.Command,
	opts *rootOptions,
	path string,
	send func(context.Context, *graphley.Client, *quad.Set) ([]byte, error),
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read quads: %w", err)
	}
	set, err := quad.ParseSet(data)
	if err != nil {
		return err
	}

	client, err := opts.newClient()
	if err != nil {
		return err
	}
	body, err := send(cmd.Context(), client, set)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return nil
}
