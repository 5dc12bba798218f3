// Package main is a small CLI client for the posting service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/postboard/postboard/internal/client/api"
	"github.com/postboard/postboard/internal/client/session"
	pkgapi "github.com/postboard/postboard/pkg/api"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	sessionPath := flag.String("session", "postboard-session.db", "Path to local session file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	store, err := session.Open(*sessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.NewClient(*serverURL)
	if token, err := store.Token(); err == nil && token != "" {
		client.SetToken(token)
	}

	ctx := context.Background()

	if err := runCommand(ctx, client, store, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, client *api.Client, store *session.Store, args []string) error {
	switch command := args[0]; command {
	case "signup":
		return signup(ctx, client, args[1:])
	case "login":
		return login(ctx, client, store, args[1:])
	case "logout":
		return store.Clear()
	case "posts":
		return listPosts(ctx, client)
	case "post":
		return createPost(ctx, client, args[1:])
	case "update":
		return updatePost(ctx, client, args[1:])
	case "delete":
		return deletePost(ctx, client, args[1:])
	case "like":
		return react(ctx, client, args[1:], client.Like)
	case "dislike":
		return react(ctx, client, args[1:], client.Dislike)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func signup(ctx context.Context, client *api.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: signup <username>")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	resp, err := client.Signup(ctx, args[0], password)
	if err != nil {
		return err
	}

	fmt.Printf("Registered as %s (id %s)\n", args[0], resp.UserID)
	return nil
}

func login(ctx context.Context, client *api.Client, store *session.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <username>")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	resp, err := client.Login(ctx, args[0], password)
	if err != nil {
		return err
	}

	if err := store.SaveToken(resp.Token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Logged in as %s (token valid %ds)\n", args[0], resp.ExpiresIn)
	return nil
}

func listPosts(ctx context.Context, client *api.Client) error {
	posts, err := client.ListPosts(ctx)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts yet.")
		return nil
	}

	for _, p := range posts {
		fmt.Printf("%s  [%s] %s (+%d/-%d)\n    %s\n",
			p.ID, p.Author, p.Title, p.Likes, p.Dislikes, p.Content)
	}
	return nil
}

func createPost(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: post <title> <content>")
	}

	post, err := client.CreatePost(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Printf("Created post %s\n", post.ID)
	return nil
}

func updatePost(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: update <id> <title> <content>")
	}

	post, err := client.UpdatePost(ctx, args[0], args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}

	fmt.Printf("Updated post %s\n", post.ID)
	return nil
}

func deletePost(ctx context.Context, client *api.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}

	if err := client.DeletePost(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted.")
	return nil
}

func react(ctx context.Context, client *api.Client, args []string, fn func(context.Context, string) (*pkgapi.Post, error)) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: like|dislike <id>")
	}

	post, err := fn(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Post %s: +%d/-%d\n", post.ID, post.Likes, post.Dislikes)
	return nil
}

// readPassword prompts for a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pwBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pwBytes), nil
}

func printUsage() {
	fmt.Println(`Usage: client [flags] <command>

Commands:
  signup <username>              register a new account
  login <username>               log in and cache the token locally
  logout                         drop the cached token
  posts                          list all posts
  post <title> <content>         create a post
  update <id> <title> <content>  edit an owned post
  delete <id>                    delete an owned post
  like <id>                      like a post
  dislike <id>                   dislike a post

Flags:
  -server   server URL (default http://localhost:8080)
  -session  path to the local session file`)
}
