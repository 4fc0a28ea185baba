package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

// session is what a command needs once connected.
type session struct {
	store    *storage.Storage
	service  *service.Service
	operator *operator.OperatorDelegator
}

func (s *session) close() {
	s.operator.Stop()
	_ = s.store.Close()
}

type connector func(ctx context.Context) (*session, error)

func newApp(logger *logrus.Logger) *cli.App {
	return buildApp(logger, connectFromConfig, defaultSigningKey)
}

func connectFromConfig(ctx context.Context) (*session, error) {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()

	return &session{
		store:    store,
		service:  service.NewService(store, delegator),
		operator: delegator,
	}, nil
}

func defaultSigningKey() (string, error) {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return "", err
	}
	return cfg.JWTSigningKey, nil
}

func buildApp(logger *logrus.Logger, connect connector, signingKey func() (string, error)) *cli.App {
	withSession := func(fn func(c *cli.Context, s *session) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			s, err := connect(c.Context)
			if err != nil {
				return err
			}
			defer s.close()
			return fn(c, s)
		}
	}

	return &cli.App{
		Name:  "admin",
		Usage: "administer the expense server database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "apply pending migrations",
				Action: withSession(func(_ *cli.Context, s *session) error {
					return storage.Migrate(s.store.DB, logger)
				}),
			},
			{
				Name:  "category",
				Usage: "manage categories",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "print every category",
						Action: withSession(func(c *cli.Context, s *session) error {
							categories, err := s.service.Category.ListCategories(c.Context)
							if err != nil {
								return err
							}
							for _, category := range categories {
								fmt.Fprintf(c.App.Writer, "%d\t%s\n", category.ID, category.Name)
							}
							return nil
						}),
					},
					{
						Name:      "add",
						Usage:     "create a category",
						ArgsUsage: "NAME",
						Action: withSession(func(c *cli.Context, s *session) error {
							name, err := requireArg(c, 0, "NAME")
							if err != nil {
								return err
							}
							id, err := s.service.Category.CreateCategory(c.Context, name)
							if err != nil {
								return err
							}
							logger.WithField("categoryID", id).Info("Category created")
							fmt.Fprintln(c.App.Writer, id)
							return nil
						}),
					},
					{
						Name:      "rename",
						Usage:     "rename a category",
						ArgsUsage: "ID NAME",
						Action: withSession(func(c *cli.Context, s *session) error {
							id, err := requireID(c, 0)
							if err != nil {
								return err
							}
							name, err := requireArg(c, 1, "NAME")
							if err != nil {
								return err
							}
							return s.service.Category.RenameCategory(c.Context, id, name)
						}),
					},
					{
						Name:      "delete",
						Usage:     "delete a category and every expense filed under it",
						ArgsUsage: "ID",
						Action: withSession(func(c *cli.Context, s *session) error {
							id, err := requireID(c, 0)
							if err != nil {
								return err
							}
							if err := s.service.Category.DeleteCategory(c.Context, id); err != nil {
								return err
							}
							logger.WithField("categoryID", id).Info("Category deleted")
							return nil
						}),
					},
				},
			},
			{
				Name:  "user",
				Usage: "manage users",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "create a user",
						ArgsUsage: "EMAIL",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "first", Usage: "first name"},
							&cli.StringFlag{Name: "last", Usage: "last name"},
						},
						Action: withSession(func(c *cli.Context, s *session) error {
							email, err := requireArg(c, 0, "EMAIL")
							if err != nil {
								return err
							}
							id, err := s.service.User.CreateUser(c.Context, service.User{
								Email:     email,
								FirstName: c.String("first"),
								LastName:  c.String("last"),
							})
							if err != nil {
								return err
							}
							logger.WithField("userID", id).Info("User created")
							fmt.Fprintln(c.App.Writer, id)
							return nil
						}),
					},
					{
						Name:      "delete",
						Usage:     "delete a user and all of their expenses",
						ArgsUsage: "ID",
						Action: withSession(func(c *cli.Context, s *session) error {
							id, err := requireID(c, 0)
							if err != nil {
								return err
							}
							if err := s.service.User.DeleteUser(c.Context, id); err != nil {
								return err
							}
							logger.WithField("userID", id).Info("User deleted")
							return nil
						}),
					},
				},
			},
			{
				Name:  "token",
				Usage: "development access tokens",
				Subcommands: []*cli.Command{
					{
						Name:  "issue",
						Usage: "sign an access token with the configured key",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "user", Usage: "user id", Required: true},
							&cli.DurationFlag{Name: "ttl", Usage: "token lifetime", Value: 24 * time.Hour},
						},
						Action: func(c *cli.Context) error {
							key, err := signingKey()
							if err != nil {
								return err
							}
							return issueToken(c.App.Writer, key, c.Int64("user"), c.Duration("ttl"))
						},
					},
				},
			},
		},
	}
}

func issueToken(w io.Writer, key string, userID int64, ttl time.Duration) error {
	if userID < 1 {
		return fmt.Errorf("invalid user id %d", userID)
	}
	token, err := auth.IssueToken(key, userID, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func requireArg(c *cli.Context, index int, name string) (string, error) {
	value := c.Args().Get(index)
	if value == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return value, nil
}

func requireID(c *cli.Context, index int) (int64, error) {
	raw, err := requireArg(c, index, "ID")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q", raw)
	}
	return id, nil
}
