package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *app) cmdRegister(ctx context.Context, args []string) {
	a.requireAnonymous()

	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name")
	password := fs.String("password", "", "password (prompted when omitted)")
	fs.Parse(args)

	if *email == "" || *name == "" {
		log.Fatal("❌ --email and --name are required")
	}
	pw := *password
	if pw == "" {
		pw = promptPassword()
	}

	user, err := a.session.Register(ctx, *email, *name, pw)
	if err != nil {
		log.Fatalf("❌ Registration failed: %v", err)
	}
	//registration does not log you in
	log.Printf("✅ Account created for %s (%s). Run `jobtrack login` to sign in.", user.FullName, user.Email)
}

func (a *app) cmdLogin(ctx context.Context, args []string) {
	a.requireAnonymous()

	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password (prompted when omitted)")
	fs.Parse(args)

	if *email == "" {
		log.Fatal("❌ --email is required")
	}
	pw := *password
	if pw == "" {
		pw = promptPassword()
	}

	user, err := a.session.Login(ctx, *email, pw)
	if err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	log.Printf("✅ Logged in as %s (%s)", user.FullName, user.Email)
}

func (a *app) cmdLogout() {
	a.session.Logout()
	log.Println("✅ Logged out.")
}

func (a *app) cmdWhoami() {
	a.requireAuthenticated()

	snap := a.session.Snapshot()
	user := snap.User
	fmt.Printf("%s <%s>\n", user.FullName, user.Email)
	fmt.Printf("Member since: %s\n", user.CreatedAt)
}

func promptPassword() string {
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("❌ Failed to read password: %v", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		log.Fatal("❌ Password must not be empty")
	}
	return pw
}
