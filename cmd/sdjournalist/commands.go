package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dmitrijs2005/securedrop/data"
	"github.com/dmitrijs2005/securedrop/internal/filex"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "user",
			Usage: "Show the logged-in journalist's account",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				user, err := client.User(ctx)
				if err != nil {
					return err
				}
				return printJSON(user.Profile)
			},
		},
		{
			Name:  "sources",
			Usage: "List all sources",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				sources, err := client.Sources(ctx)
				if err != nil {
					return err
				}
				return printJSON(sources)
			},
		},
		{
			Name:      "source",
			Usage:     "Show one source",
			ArgsUsage: "<source-uuid>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				source, err := client.Source(ctx, sourceID)
				if err != nil {
					return err
				}
				return printJSON(source)
			},
		},
		{
			Name:      "submissions",
			Usage:     "List all submissions of a source",
			ArgsUsage: "<source-uuid>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				submissions, err := client.Submissions(ctx, sourceID)
				if err != nil {
					return err
				}
				return printJSON(submissions)
			},
		},
		{
			Name:      "submission",
			Usage:     "Show one submission",
			ArgsUsage: "<source-uuid> <submission-uuid>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				submissionID, err := argUUID(cmd, 1)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				submission, err := client.Submission(ctx, sourceID, submissionID)
				if err != nil {
					return err
				}
				return printJSON(submission)
			},
		},
		{
			Name:      "download",
			Usage:     "Download a submission's encrypted payload",
			ArgsUsage: "<source-uuid> <submission-uuid>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "destination file (defaults to stdout)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				submissionID, err := argUUID(cmd, 1)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				output := cmd.String("output")
				if output == "" {
					return client.DownloadSubmission(ctx, sourceID, submissionID, os.Stdout)
				}
				return filex.WriteAtomic(output, func(w io.Writer) error {
					return client.DownloadSubmission(ctx, sourceID, submissionID, w)
				})
			},
		},
		{
			Name:      "reply",
			Usage:     "Send a pre-encrypted reply to a source",
			ArgsUsage: "<source-uuid>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "file holding the armored PGP message (defaults to stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				armored, err := readPayload(cmd.String("file"))
				if err != nil {
					return err
				}
				reply, err := data.NewReply(armored)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				resp, err := client.ReplyToSource(ctx, sourceID, reply)
				if err != nil {
					return err
				}
				fmt.Println(resp.Message)
				return nil
			},
		},
		{
			Name:      "star",
			Usage:     "Star a source",
			ArgsUsage: "<source-uuid>",
			Action:    starAction(true),
		},
		{
			Name:      "unstar",
			Usage:     "Remove the star from a source",
			ArgsUsage: "<source-uuid>",
			Action:    starAction(false),
		},
		{
			Name:      "delete-submission",
			Usage:     "Delete one submission",
			ArgsUsage: "<source-uuid> <submission-uuid>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				submissionID, err := argUUID(cmd, 1)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				deleted, err := client.DeleteSubmission(ctx, sourceID, submissionID)
				if err != nil {
					return err
				}
				return printJSON(deleted)
			},
		},
		{
			Name:      "delete-submissions",
			Usage:     "Delete all submissions of a source",
			ArgsUsage: "<source-uuid>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				sourceID, err := argUUID(cmd, 0)
				if err != nil {
					return err
				}
				client, err := newClient(ctx, cmd)
				if err != nil {
					return err
				}
				resp, err := client.DeleteSubmissions(ctx, sourceID)
				if err != nil {
					return err
				}
				fmt.Println(resp.Message)
				return nil
			},
		},
	}
}

func starAction(star bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		sourceID, err := argUUID(cmd, 0)
		if err != nil {
			return err
		}
		client, err := newClient(ctx, cmd)
		if err != nil {
			return err
		}
		var resp *data.Response
		if star {
			resp, err = client.StarSource(ctx, sourceID)
		} else {
			resp, err = client.UnstarSource(ctx, sourceID)
		}
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	}
}

func argUUID(cmd *cli.Command, n int) (uuid.UUID, error) {
	raw := cmd.Args().Get(n)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing argument: %s", cmd.ArgsUsage)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", raw, err)
	}
	return id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readPayload reads the armored message from path, or stdin when path is
// empty. The trailing newline most editors append would fail the armor
// framing check, so trailing whitespace is stripped.
func readPayload(path string) (string, error) {
	var payload []byte
	var err error
	if path != "" {
		payload, err = os.ReadFile(path)
	} else {
		payload, err = io.ReadAll(bufio.NewReader(os.Stdin))
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(payload), " \t\r\n"), nil
}
