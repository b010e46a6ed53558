package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blog-service/internal/domain"
	"blog-service/internal/infrastructure/database"
	"blog-service/internal/repository"
	"blog-service/internal/service"
	"blog-service/internal/validator"
)

func authorCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Manage post authors",
	}

	var author domain.Author
	add := &cobra.Command{
		Use:   "add",
		Short: "Register an author and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			svc := service.NewBlogService(
				repository.NewPostgresPostRepository(pool),
				repository.NewPostgresAuthorRepository(pool),
				validator.NewValidator(),
				cfg.PageSize,
			)
			return addAuthor(ctx, cmd, svc, &author)
		},
	}
	add.Flags().StringVar(&author.Name, "name", "", "Display name")
	add.Flags().StringVar(&author.Email, "email", "", "Email address")
	add.Flags().StringVar(&author.Username, "username", "", "Username")

	cmd.AddCommand(add)
	return cmd
}

func addAuthor(ctx context.Context, cmd *cobra.Command, svc service.BlogServiceInterface, author *domain.Author) error {
	if err := svc.RegisterAuthor(ctx, author); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), author.ID)
	return nil
}
