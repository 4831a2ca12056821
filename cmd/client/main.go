// Command client is a small CLI for exercising the authkeeper server:
//
//	client -address http://localhost:8080 register -u alice -p 'Password1'
//	client -address http://localhost:8080 login    -u alice -p 'Password1'
//
// login prints the issued session token; logout and session accept it via
// the -token flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mignatov/authkeeper/internal/adapter"
	"github.com/mignatov/authkeeper/models"
)

const requestTimeout = 15 * time.Second

func main() {
	address := flag.String("address", "http://localhost:8080", "base URL of the authkeeper server")
	username := flag.String("u", "", "username")
	password := flag.String("p", "", "password")
	token := flag.String("token", "", "session token issued by login")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	client := adapter.NewHTTPClient(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: requestTimeout,
	})
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := run(ctx, client, flag.Arg(0), *username, *password); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.Client, command, username, password string) error {
	switch command {
	case "register":
		status, err := client.Register(ctx, models.RegisterRequest{
			Username:        username,
			Password:        password,
			ConfirmPassword: password,
		})
		if err != nil {
			return err
		}
		fmt.Println(status.Message)

	case "login":
		status, err := client.Login(ctx, models.LoginRequest{
			Username: username,
			Password: password,
		})
		if err != nil {
			return err
		}
		fmt.Println(status.Message)
		fmt.Printf("token: %s\n", client.Token())

	case "logout":
		status, err := client.Logout(ctx)
		if err != nil {
			return err
		}
		fmt.Println(status.Message)

	case "session":
		session, err := client.Session(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("user_id: %d username: %s\n", session.UserID, session.Username)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: client [flags] register|login|logout|session")
	flag.PrintDefaults()
}
