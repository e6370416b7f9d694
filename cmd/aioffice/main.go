// Command aioffice is the HTTP client for a running aiofficed daemon.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aioffice/aioffice/internal/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aioffice [flags] <command> [args]

Commands:
  login <username> <password>          obtain an API token
  submit <title> <description>         submit a website project
  task <title> <description>           create a standalone task
  tasks                                list tasks
  agents                               list the roster
  status                               show daemon status
  watch                                stream live events
  version                              print version

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "daemon base URL")
	token := flag.String("token", os.Getenv("AIOFFICE_TOKEN"), "API bearer token")
	priority := flag.String("priority", "medium", "task priority (low, medium, high, critical)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	c := &client{base: strings.TrimRight(*addr, "/"), token: *token}
	var err error
	switch args[0] {
	case "login":
		err = c.login(args[1:])
	case "submit":
		err = c.submit(args[1:], *priority)
	case "task":
		err = c.createTask(args[1:], *priority)
	case "tasks":
		err = c.get("/api/tasks")
	case "agents":
		err = c.get("/api/agents")
	case "status":
		err = c.get("/api/status")
	case "watch":
		err = c.watch()
	case "version":
		fmt.Println("aioffice", version.String())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type client struct {
	base  string
	token string
}

func (c *client) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return http.DefaultClient.Do(req)
}

func (c *client) print(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()
	var pretty bytes.Buffer
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(raw.String()))
	}
	if err := json.Indent(&pretty, raw.Bytes(), "", "  "); err != nil {
		fmt.Println(raw.String())
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func (c *client) get(path string) error {
	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *client) login(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <username> <password>")
	}
	resp, err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": args[0],
		"password": args[1],
	})
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *client) submit(args []string, priority string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: submit <title> <description>")
	}
	resp, err := c.do(http.MethodPost, "/api/projects", map[string]string{
		"title":       args[0],
		"description": args[1],
		"priority":    priority,
	})
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *client) createTask(args []string, priority string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: task <title> <description>")
	}
	resp, err := c.do(http.MethodPost, "/api/tasks", map[string]string{
		"title":       args[0],
		"description": args[1],
		"priority":    priority,
	})
	if err != nil {
		return err
	}
	return c.print(resp)
}

// watch tails the daemon's event stream and prints the data lines.
func (c *client) watch() error {
	resp, err := c.do(http.MethodGet, "/events", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", resp.Status)
	}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			fmt.Println(data)
		}
	}
	return scanner.Err()
}
