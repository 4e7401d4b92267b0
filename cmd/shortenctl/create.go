package main

import (
	"github.com/spf13/cobra"

	"github.com/sundayezeilo/linkshort/internal/shortener"
)

const createExample = `  shortenctl create --url https://go.dev
  shortenctl create --url https://go.dev/doc --custom docs`

func newCreateCmd(e *env) *cobra.Command {
	var (
		target string
		custom string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a short link",
		Example: createExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withService(cmd.Context(), func(svc shortener.Service) error {
				link, err := svc.Create(cmd.Context(), shortener.CreateLinkRequest{
					TargetURL:  target,
					CustomCode: custom,
				})
				if err != nil {
					return err
				}
				printf(cmd, "%s\t%s\n", link.Short, link.Target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&target, "url", "u", "", "target URL (required)")
	cmd.Flags().StringVarP(&custom, "custom", "c", "", "custom short code")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
