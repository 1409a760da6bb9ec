package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/ufood/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// usageError is returned by a command called with the wrong arguments.
type usageError string

func (u usageError) Error() string {
	return "Usage: " + string(u)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Every command receives the words that followed it on the line.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error

	Restaurants(ctx context.Context, args []string) error
	Restaurant(ctx context.Context, args []string) error
	Similar(ctx context.Context, args []string) error

	Lists(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	NewList(ctx context.Context, args []string) error
	RenameList(ctx context.Context, args []string) error
	DeleteList(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Unfav(ctx context.Context, args []string) error

	Visits(ctx context.Context, args []string) error
	Visit(ctx context.Context, args []string) error

	Users(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error

	Stats(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, restaurants [query], restaurant <id>, similar <id>, stats, exit"
	helpUser  = "Available commands: whoami, logout, restaurants [query], restaurant <id>, similar <id>, " +
		"lists, list [id], newlist <name>, renamelist <id> <name>, deletelist <id>, select <id>, " +
		"fav <restaurantId> [listId], unfav <restaurantId> [listId], visits [userId], " +
		"visit <restaurantId> <rating> <date> [comment], users [query], user <id>, follow <id>, unfollow <id>, stats, exit"
)

// describeError turns a command error into the line shown to the user.
func describeError(err error) string {
	var usage usageError
	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, client.ErrUnauthenticated):
		return "Please log in first."
	case errors.Is(err, client.ErrUnauthorized):
		return "Access denied: " + err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable: " + err.Error()
	case errors.Is(err, client.ErrNoFavoriteList):
		return "No favorite list selected (use 'lists' and 'select <id>')."
	default:
		return "Error: " + err.Error()
	}
}

// runREPL starts a simple read-eval-print loop for the UFood CLI.
//
// It reads a line from reader, parses the first word as the command and
// dispatches to methods on 'a' with the remaining words. Errors returned by
// handlers are printed and the loop goes on. The loop exits on EOF or when
// the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ufood %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx, args)
		case "login":
			cmdErr = a.Login(ctx, args)
		case "logout":
			cmdErr = a.Logout(ctx, args)
		case "whoami":
			cmdErr = a.WhoAmI(ctx, args)

		case "restaurants":
			cmdErr = a.Restaurants(ctx, args)
		case "restaurant":
			cmdErr = a.Restaurant(ctx, args)
		case "similar":
			cmdErr = a.Similar(ctx, args)

		case "lists":
			cmdErr = a.Lists(ctx, args)
		case "list":
			cmdErr = a.List(ctx, args)
		case "newlist":
			cmdErr = a.NewList(ctx, args)
		case "renamelist":
			cmdErr = a.RenameList(ctx, args)
		case "deletelist":
			cmdErr = a.DeleteList(ctx, args)
		case "select":
			cmdErr = a.Select(ctx, args)
		case "fav":
			cmdErr = a.Fav(ctx, args)
		case "unfav":
			cmdErr = a.Unfav(ctx, args)

		case "visits":
			cmdErr = a.Visits(ctx, args)
		case "visit":
			cmdErr = a.Visit(ctx, args)

		case "users":
			cmdErr = a.Users(ctx, args)
		case "user":
			cmdErr = a.User(ctx, args)
		case "follow":
			cmdErr = a.Follow(ctx, args)
		case "unfollow":
			cmdErr = a.Unfollow(ctx, args)

		case "stats":
			cmdErr = a.Stats(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
		if err != nil {
			return
		}
	}
}
