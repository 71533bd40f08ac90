package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptflow"
)

func (a *app) listCommand() *cobra.Command {
	var collection string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long: `List documents in directory order.

Without -C both collections are listed, favorites first. Files that
cannot be read are skipped (see --verbose).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				docs []*promptflow.Document
				err  error
			)
			if collection == "" {
				docs, err = a.store.ListAll()
			} else {
				var c promptflow.Collection
				if c, err = parseCollection(collection); err != nil {
					return err
				}
				docs, err = a.store.ListCollection(c)
			}
			if err != nil {
				return err
			}
			return a.printDocuments(docs)
		},
	}
	cmd.Flags().StringVarP(&collection, "collection", "C", "", "collection to list (favorites or templates)")
	return cmd
}

func (a *app) showCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <collection> <id>",
		Short: "Print one document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCollection(args[0])
			if err != nil {
				return err
			}
			d, err := a.store.Get(c, args[1])
			if err != nil {
				return err
			}
			if raw {
				_, err := io.WriteString(a.out, promptflow.EncodeDocument(d)+"\n")
				return err
			}
			return a.outputResult(d)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the file as stored")
	return cmd
}

func (a *app) searchCommand() *cobra.Command {
	var (
		opts       promptflow.SearchOptions
		collection string
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search titles, tags, descriptions and content",
		Long: `Search documents. The query matches case-insensitively unless
--case-sensitive is set. With --regex it is a regular expression.
--match filters by id glob, e.g. 'starter-*'. Results are ordered by use
count, most used first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if collection != "" {
				c, err := parseCollection(collection)
				if err != nil {
					return err
				}
				opts.Collection = c
			}
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			docs, err := a.store.Search(query, opts)
			if err != nil {
				return err
			}
			return a.printDocuments(docs)
		},
	}
	cmd.Flags().BoolVar(&opts.Regex, "regex", false, "treat the query as a regular expression")
	cmd.Flags().BoolVar(&opts.CaseSensitive, "case-sensitive", false, "match case exactly")
	cmd.Flags().StringVar(&opts.Match, "match", "", "glob over document ids")
	cmd.Flags().StringVarP(&collection, "collection", "C", "", "restrict to one collection")
	return cmd
}

func (a *app) createCommand() *cobra.Command {
	var (
		collection  string
		title       string
		tags        []string
		description string
		content     string
		file        string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a document",
		Long: `Create a document. The id is derived from the title; creating a
second document whose title maps to the same id replaces the first.

The body comes from --content, from -f, or from standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCollection(collection)
			if err != nil {
				return err
			}
			body, err := readBody(cmd, content, file)
			if err != nil {
				return err
			}
			in := promptflow.CreateInput{
				Title:      title,
				Content:    body,
				Tags:       tags,
				Collection: c,
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}
			d, err := a.store.Create(in)
			if err != nil {
				return err
			}
			if a.outputJSON {
				return a.outputResult(d)
			}
			a.printSuccess("created %s/%s", d.Collection, d.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&collection, "collection", "C", string(promptflow.Favorites), "target collection")
	cmd.Flags().StringVar(&title, "title", "", "document title (required)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag, repeatable")
	cmd.Flags().StringVar(&description, "description", "", "short description")
	cmd.Flags().StringVar(&content, "content", "", "document body")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the body from a file")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	return cmd
}

func (a *app) updateCommand() *cobra.Command {
	var (
		title       string
		tags        []string
		clearTags   bool
		description string
		content     string
		file        string
	)
	cmd := &cobra.Command{
		Use:   "update <collection> <id>",
		Short: "Change fields of a document",
		Long: `Change fields of a document. Only the flags given are applied;
every other field keeps its value. The id never changes, even when the
title does.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCollection(args[0])
			if err != nil {
				return err
			}
			var p promptflow.Patch
			flags := cmd.Flags()
			if flags.Changed("title") {
				p.Title = &title
			}
			if flags.Changed("description") {
				p.Description = &description
			}
			if flags.Changed("content") || flags.Changed("file") {
				body, err := readBody(cmd, content, file)
				if err != nil {
					return err
				}
				p.Content = &body
			}
			switch {
			case clearTags:
				p.Tags = []string{}
			case flags.Changed("tag"):
				p.Tags = tags
			}

			d, err := a.store.Update(c, args[1], p)
			if err != nil {
				return err
			}
			if a.outputJSON {
				return a.outputResult(d)
			}
			a.printSuccess("updated %s/%s", d.Collection, d.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "replace tags, repeatable")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "remove all tags")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&content, "content", "", "new body")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the new body from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")
	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a document",
		Long:  "Delete a document file. Deleting a document that does not exist succeeds.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCollection(args[0])
			if err != nil {
				return err
			}
			if err := a.store.Delete(c, args[1]); err != nil {
				return err
			}
			if a.outputJSON {
				return a.outputResult(map[string]string{"collection": string(c), "id": args[1]})
			}
			a.printSuccess("deleted %s/%s", c, args[1])
			return nil
		},
	}
}

func (a *app) useCommand() *cobra.Command {
	var copyContent bool
	cmd := &cobra.Command{
		Use:   "use <collection> <id>",
		Short: "Record a use and print or copy the content",
		Long: `Increment the use count of a document, stamp its last use, and
print its body. With --copy the body goes to the clipboard instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCollection(args[0])
			if err != nil {
				return err
			}
			d, err := a.store.RecordUse(c, args[1])
			if err != nil {
				return err
			}
			if copyContent {
				if err := writeClipboard(d.Content); err != nil {
					return fmt.Errorf("clipboard: %w", err)
				}
			}
			switch {
			case a.outputJSON:
				return a.outputResult(d)
			case copyContent:
				a.printSuccess("copied %s/%s (used %d times)", d.Collection, d.ID, d.UseCount)
				return nil
			default:
				_, err := io.WriteString(a.out, d.Content+"\n")
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&copyContent, "copy", false, "copy the body to the clipboard")
	return cmd
}

func parseCollection(s string) (promptflow.Collection, error) {
	c, err := promptflow.ParseCollection(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (want favorites or templates)", err, s)
	}
	return c, nil
}

// readBody picks the document body from --content, -f or stdin.
func readBody(cmd *cobra.Command, content, file string) (string, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("content"):
		return content, nil
	case file == "-":
		return readAll(cmd.InOrStdin())
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %w", promptflow.ErrIO, file, err)
		}
		return string(data), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read stdin: %w", promptflow.ErrIO, err)
	}
	return string(data), nil
}
