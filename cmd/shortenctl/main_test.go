package main

import (
	"bytes"
	"strings"
	"testing"
)

func setDBEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"DB_HOST":      "localhost",
		"DB_PORT":      "5432",
		"DB_USER":      "user",
		"DB_PASSWORD":  "pass",
		"DB_NAME":      "links",
		"DB_SSLMODE":   "disable",
		"DB_MAX_CONNS": "2",
		"DB_MIN_CONNS": "1",
	} {
		t.Setenv(k, v)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "create", "list"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestCreateCmd_RequiresURL(t *testing.T) {
	setDBEnv(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"create", "--custom", "docs"})

	err := root.Execute()
	if err == nil {
		t.Fatal("Execute() should fail without --url")
	}
	if !strings.Contains(err.Error(), `"url"`) {
		t.Errorf("error = %v, want it to mention the url flag", err)
	}
}

func TestRootCmd_RequiresDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate"})

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() should fail without database configuration")
	}
}

func TestListCmd_DefaultLimit(t *testing.T) {
	cmd := newListCmd(&env{})

	flag := cmd.Flags().Lookup("limit")
	if flag == nil {
		t.Fatal("limit flag not defined")
	}
	if flag.DefValue != "100" {
		t.Errorf("limit default = %s, want 100", flag.DefValue)
	}
}
