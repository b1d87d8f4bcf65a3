package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"blogapi/internal/editor"
	"blogapi/internal/feed"
)

const (
	cardTags      = 3
	excerptLength = 60
)

func newPostsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post"},
		Short:   "List, read and manage posts",
	}
	cmd.AddCommand(
		newPostsListCmd(o),
		newPostsShowCmd(o),
		newPostsCreateCmd(o),
		newPostsEditCmd(o),
		newPostsDeleteCmd(o),
	)
	return cmd
}

func newPostsListCmd(o *options) *cobra.Command {
	var query, tag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List posts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := feed.NewView(o.api)
			if err := view.Refresh(cmd.Context()); err != nil {
				return err
			}
			view.SetQuery(query)
			view.SetTag(tag)
			posts := view.Visible()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(posts)
			}

			if len(posts) == 0 {
				if view.Filtering() {
					o.printer.Info("No posts match the current filter.")
				} else {
					o.printer.Info("No posts yet.")
				}
				return nil
			}

			table := o.printer.Table([]string{"ID", "TITLE", "TAGS", "UPDATED", "EXCERPT"})
			for _, p := range posts {
				table.AddRow(
					strconv.FormatInt(p.ID, 10),
					o.printer.Bold(p.Title),
					strings.Join(feed.TopTags(p, cardTags), ", "),
					humanize.Time(p.UpdatedAt),
					feed.Excerpt(p.Content, excerptLength),
				)
			}
			if err := table.Render(); err != nil {
				return err
			}
			o.printer.Print("%s", o.printer.Dim(fmt.Sprintf("%d of %d posts", len(posts), len(view.Posts()))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text in title, subtitle or content")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "case-insensitive text in tags")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func newPostsShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one post as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			post, err := o.api.GetPost(cmd.Context(), id)
			if err != nil {
				return err
			}

			o.printer.Header(post.Title)
			if subtitle := post.SubtitleText(); subtitle != "" {
				o.printer.Print("%s", o.printer.Dim(subtitle))
			}
			o.printer.Print("Created %s, updated %s",
				humanize.Time(post.CreatedAt), humanize.Time(post.UpdatedAt))
			if tags := post.TagList(); len(tags) > 0 {
				o.printer.Print("Tags: %s", strings.Join(tags, ", "))
			}
			o.printer.Print("")
			o.printer.Print("%s", feed.PlainText(post.Content))
			if links := post.LinkList(); len(links) > 0 {
				o.printer.Print("")
				o.printer.Print("Links:")
				for _, link := range links {
					o.printer.Print("  %s", link)
				}
			}
			return nil
		},
	}
}

func addFieldFlags(cmd *cobra.Command, fields *editor.Fields) {
	cmd.Flags().StringVar(&fields.Title, "title", "", "post title")
	cmd.Flags().StringVar(&fields.Subtitle, "subtitle", "", "post subtitle")
	cmd.Flags().StringVar(&fields.Content, "content", "", "post body (HTML)")
	cmd.Flags().StringVar(&fields.Tags, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&fields.Links, "links", "", "comma-separated links")
}

func newPostsCreateCmd(o *options) *cobra.Command {
	var fields editor.Fields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := o.login(ctx); err != nil {
				return err
			}

			ed, err := editor.NewCreate(o.api, o.session)
			if err != nil {
				return err
			}
			if err := ed.Edit(func(f *editor.Fields) { *f = fields }); err != nil {
				return err
			}
			post, err := ed.Submit(ctx)
			if err != nil {
				return err
			}

			o.printer.Success("Created post %d: %s", post.ID, post.Title)
			return nil
		},
	}
	addFieldFlags(cmd, &fields)
	return cmd
}

func newPostsEditCmd(o *options) *cobra.Command {
	var fields editor.Fields

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace fields of a post (admin)",
		Long: `Loads the post, applies the given flags and saves all fields back.
Fields without a flag keep their current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := o.login(ctx); err != nil {
				return err
			}

			ed, err := editor.Open(ctx, o.api, o.session, id)
			if err != nil {
				return err
			}
			if ed.State() == editor.StateLoadFailed {
				return ed.Err()
			}

			changed := cmd.Flags().Changed
			err = ed.Edit(func(f *editor.Fields) {
				if changed("title") {
					f.Title = fields.Title
				}
				if changed("subtitle") {
					f.Subtitle = fields.Subtitle
				}
				if changed("content") {
					f.Content = fields.Content
				}
				if changed("tags") {
					f.Tags = fields.Tags
				}
				if changed("links") {
					f.Links = fields.Links
				}
			})
			if err != nil {
				return err
			}

			post, err := ed.Submit(ctx)
			if err != nil {
				return err
			}
			o.printer.Success("Updated post %d: %s", post.ID, post.Title)
			return nil
		},
	}
	addFieldFlags(cmd, &fields)
	return cmd
}

func newPostsDeleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a post (admin)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := o.login(ctx); err != nil {
				return err
			}
			if err := o.session.Require(); err != nil {
				return err
			}

			view := feed.NewView(o.api)
			if err := view.Delete(ctx, id); err != nil {
				return err
			}
			o.printer.Success("Deleted post %d", id)
			return nil
		},
	}
}
