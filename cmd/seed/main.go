// Command seed populates the database with demo data: a batch of users
// with a shared known password, a random number of posts per user, and a
// random number of comments per post. Safe to re-run; duplicate emails
// are skipped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkline/blog/api/internal/config"
	"github.com/inkline/blog/api/internal/database"
	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/repository"
)

var firstNames = []string{
	"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Tony", "Leslie", "John", "Margaret",
}

var lastNames = []string{
	"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Hoare", "Lamport", "Backus", "Hamilton",
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	userCount := flag.Int("users", 10, "number of users to create")
	maxPerParent := flag.Int("max", 9, "maximum posts per user and comments per post")
	password := flag.String("password", "password", "password shared by all seeded users")
	seed := flag.Int64("seed", 0, "random seed; 0 uses a nondeterministic source")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		slog.Error("failed to ensure schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	slog.Info("seeder started", slog.Int("users", *userCount))

	users := repository.NewUserRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var seeded []*model.User
	for i := 0; i < *userCount; i++ {
		user := &model.User{
			Name:  firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			Email: fmt.Sprintf("author%d@example.com", i+1),
			Hash:  string(hash),
		}
		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				slog.Info("user already exists, skipping", slog.String("email", user.Email))
				continue
			}
			slog.Error("failed to create user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		seeded = append(seeded, user)
	}

	// Each user's posts and comments are inserted in one transaction, so an
	// interrupted run never leaves a user with half their content.
	var postCount, commentCount int
	for _, user := range seeded {
		err := database.WithTx(ctx, pool, func(tx database.DB) error {
			posts := repository.NewPostRepository(tx)
			comments := repository.NewCommentRepository(tx)

			for i := 0; i < rng.Intn(*maxPerParent+1); i++ {
				post := &model.Post{
					Title:    fmt.Sprintf("Notes from %s, part %d", user.Name, i+1),
					Content:  "Seeded post content for local development.",
					AuthorID: user.ID,
				}
				if err := posts.Create(ctx, post); err != nil {
					return err
				}
				postCount++

				for j := 0; j < rng.Intn(*maxPerParent+1); j++ {
					commenter := seeded[rng.Intn(len(seeded))]
					comment := &model.Comment{
						Content: fmt.Sprintf("Comment %d on %q", j+1, post.Title),
						PostID:  post.ID,
						UserID:  commenter.ID,
					}
					if err := comments.Create(ctx, comment); err != nil {
						return err
					}
					commentCount++
				}
			}
			return nil
		})
		if err != nil {
			slog.Error("failed to seed content", slog.String("user", user.ID), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("seeder completed",
		slog.Int("users", len(seeded)),
		slog.Int("posts", postCount),
		slog.Int("comments", commentCount),
	)
}
