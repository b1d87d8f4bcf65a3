package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"blogapi/internal/client"
	"blogapi/internal/config"
	"blogapi/internal/editor"
	"blogapi/internal/session"
)

var errInvalidID = errors.New("invalid post id")

// options is shared by every subcommand. The client, session flag and
// printer are built once flags are parsed.
type options struct {
	cfg      *config.Config
	apiURL   string
	username string
	password string
	admin    bool
	noColor  bool
	timeout  time.Duration

	api     *client.Client
	session *session.Flag
	printer *printer
}

func newRootCmd(cfg *config.Config, out, errOut io.Writer) *cobra.Command {
	o := &options{cfg: cfg}

	root := &cobra.Command{
		Use:   "blogctl",
		Short: "Operator CLI for the blog API",
		Long: `blogctl reads and manages posts through the blog REST API.

Example usage:
  blogctl posts list --tag go        # Posts tagged "go"
  blogctl posts show 3               # One post as plain text
  blogctl posts create --admin \
    --title "Hello" --content "<p>First post</p>"
  blogctl health                     # API liveness
  blogctl doctor                     # Direct database check`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.api = client.New(o.apiURL, &http.Client{Timeout: o.timeout})
			o.session = session.New()
			o.printer = newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorsEnabled(o.noColor))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.session != nil {
				o.session.Close(o.api)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&o.apiURL, "api-url", cfg.APIURL, "blog API base URL (env BLOG_API_URL)")
	flags.StringVarP(&o.username, "username", "u", "", "admin username; logs in before write commands")
	flags.StringVarP(&o.password, "password", "p", os.Getenv("BLOG_ADMIN_PASSWORD"), "admin password (env BLOG_ADMIN_PASSWORD)")
	flags.BoolVar(&o.admin, "admin", false, "act as admin without logging in (for APIs without AUTH_REQUIRED)")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.DurationVar(&o.timeout, "timeout", 15*time.Second, "HTTP timeout per request")

	root.AddCommand(
		newPostsCmd(o),
		newTagsCmd(o),
		newHealthCmd(o),
		newStatsCmd(o),
		newDoctorCmd(o),
		newHashPasswordCmd(),
	)
	return root
}

// login turns the session flag on, either through the API or locally
// with --admin.
func (o *options) login(ctx context.Context) error {
	switch {
	case o.username != "":
		return o.session.Authenticate(ctx, o.api, o.username, o.password)
	case o.admin:
		o.session.Login()
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return id, nil
}

// userMessage picks the text shown for a failed command.
func userMessage(err error) string {
	var apiErr *client.APIError
	var urlErr *url.Error

	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return "Admin login required. Pass --username and --password, or --admin."
	case errors.Is(err, editor.ErrInvalid),
		errors.Is(err, editor.ErrLoadFailed),
		errors.Is(err, editor.ErrSaveFailed),
		errors.Is(err, editor.ErrNotEditable):
		return editor.Message(err)
	case errors.As(err, &apiErr), errors.As(err, &urlErr):
		return client.UserMessage(err)
	default:
		return err.Error()
	}
}
