package patient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Manage your health record and documents",
	}

	cmd.AddCommand(newHealthShowCommand())
	cmd.AddCommand(newHealthUpdateCommand())
	cmd.AddCommand(newHealthHistoryCommand())
	cmd.AddCommand(newHealthDocsCommand())

	return cmd
}

func newHealthShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print your full health record as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionRead); err != nil {
				return err
			}

			record, err := env.Client.GetHealthRecord(cmd.Context(), id.Username)
			if err != nil {
				if api.IsNotFound(err) {
					fmt.Println("No health record yet.")
					return nil
				}
				return err
			}

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	return cmd
}

func newHealthUpdateCommand() *cobra.Command {
	var section, file string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one section of the health record from a JSON file",
		Long: `Update one section of the health record from a JSON file.

Sections: demographics, lifestyle, current-health, consent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionUpdate); err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var data any
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			if _, err := env.Client.UpdateHealthRecordSection(cmd.Context(), id.Username, section, data); err != nil {
				return fmt.Errorf("update %s: %w", section, err)
			}
			fmt.Printf("Section %s updated.\n", section)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "record section to replace")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the section contents")
	cmd.MarkFlagRequired("section")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newHealthHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage medical history entries",
	}

	var file string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a medical history entry from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionUpdate); err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var item api.MedicalHistoryItem
			if err := json.Unmarshal(raw, &item); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			created, err := env.Client.AddMedicalHistoryItem(cmd.Context(), id.Username, item)
			if err != nil {
				return fmt.Errorf("add history item: %w", err)
			}
			fmt.Printf("History entry %s added.\n", created.ID)
			return nil
		},
	}
	add.Flags().StringVar(&file, "file", "", "JSON file with the history item")
	add.MarkFlagRequired("file")

	remove := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a medical history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionUpdate); err != nil {
				return err
			}

			if err := env.Client.DeleteMedicalHistoryItem(cmd.Context(), id.Username, args[0]); err != nil {
				return fmt.Errorf("delete history item: %w", err)
			}
			fmt.Println("History entry deleted.")
			return nil
		},
	}

	cmd.AddCommand(add)
	cmd.AddCommand(remove)

	return cmd
}

func newHealthDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage uploaded health documents",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your health documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionRead); err != nil {
				return err
			}

			docs, err := env.Client.ListHealthDocuments(cmd.Context(), id.Username)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No documents.")
				return nil
			}
			for _, d := range docs {
				fmt.Printf("%s  %-12s  %s  (%s)\n", d.ID, d.Type, d.Name, d.UploadDate)
			}
			return nil
		},
	}

	var docType string
	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a health document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionUpdate); err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			doc, err := env.Client.UploadHealthDocument(cmd.Context(), id.Username, docType, filepath.Base(args[0]), content)
			if err != nil {
				return fmt.Errorf("upload document: %w", err)
			}
			fmt.Printf("Document %s uploaded.\n", doc.ID)
			return nil
		},
	}
	upload.Flags().StringVar(&docType, "type", "other", "document type: lab-report, prescription, scan, other")

	remove := &cobra.Command{
		Use:   "delete <document-id>",
		Short: "Delete a health document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionUpdate); err != nil {
				return err
			}

			if err := env.Client.DeleteHealthDocument(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete document: %w", err)
			}
			fmt.Println("Document deleted.")
			return nil
		},
	}

	var out string
	download := &cobra.Command{
		Use:   "download <filename>",
		Short: "Download a health document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceHealthRecord, authorize.ActionRead); err != nil {
				return err
			}

			data, contentType, err := env.Client.DownloadHealthDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			target := out
			if target == "" {
				target = filepath.Base(args[0])
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			fmt.Printf("Saved %d bytes (%s) to %s.\n", len(data), contentType, target)
			return nil
		},
	}
	download.Flags().StringVar(&out, "out", "", "output path (defaults to the document name)")

	cmd.AddCommand(list)
	cmd.AddCommand(upload)
	cmd.AddCommand(remove)
	cmd.AddCommand(download)

	return cmd
}
