package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewDocsCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage documents stored for this session",
	}

	cmd.AddCommand(newDocsListCmd(deps))
	cmd.AddCommand(newDocsDeleteCmd(deps))
	return cmd
}

func newDocsListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter

			docs, err := a.Client.ListDocuments(cmd.Context())
			if err != nil {
				f.Error(err.Error())
				return err
			}

			f.DocumentListHeader(len(docs))
			for _, d := range docs {
				f.DocumentListItem(d)
			}
			return nil
		},
	}
}

func newDocsDeleteCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <doc_id>",
		Short: "Delete one stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter

			removed, err := a.Client.DeleteDocument(cmd.Context(), args[0])
			if err != nil {
				f.Error(err.Error())
				return err
			}

			f.Success(fmt.Sprintf("Document deleted (%d chunks removed)", removed))
			return nil
		},
	}
}
