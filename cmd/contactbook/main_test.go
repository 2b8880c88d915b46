package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/storage"
)

func TestRun_PersistsAcrossSessions(t *testing.T) {
	home := t.TempDir()
	opts := &options{home: home, noColor: true}

	var out bytes.Buffer
	input := "add Carol 380501234567\nadd-tag Carol work\nexit\n"
	require.NoError(t, run(context.Background(), opts, strings.NewReader(input), &out))

	path := filepath.Join(home, config.DataFileName)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, config.FilePermUserRW, info.Mode().Perm())

	out.Reset()
	require.NoError(t, run(context.Background(), opts, strings.NewReader("show Carol\n"), &out))
	assert.Contains(t, out.String(), "Contact name: Carol, phones: 380501234567, tags: work")
}

func TestRun_CorruptBookStartsEmpty(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, config.DataFileName)
	original := []byte("contacts: [\n")
	require.NoError(t, os.WriteFile(path, original, config.FilePermUserRW))

	var out bytes.Buffer
	err := run(context.Background(), &options{home: home}, strings.NewReader("all\nexit\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "The address book is empty.")

	backups, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Contains(t, out.String(), "was moved to "+backups[0])

	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, original, data)

	book, err := storage.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestRun_WritesDefaultSettingsOnce(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, config.ConfigFileName)

	require.NoError(t, run(context.Background(), &options{home: home, lang: "fr"}, strings.NewReader("exit\n"), io.Discard))
	settings, err := config.LoadSettings(home)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)

	custom := []byte("language: fr\n")
	require.NoError(t, os.WriteFile(path, custom, config.FilePermUserRW))
	require.NoError(t, run(context.Background(), &options{home: home}, strings.NewReader("exit\n"), io.Discard))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}

func TestRun_Flags(t *testing.T) {
	home := t.TempDir()
	data := filepath.Join(t.TempDir(), "book.yaml")

	var out bytes.Buffer
	opts := &options{home: home, data: data, lang: "fr-CA"}
	require.NoError(t, run(context.Background(), opts, strings.NewReader("add Carol 380501234567\n"), &out))

	assert.Contains(t, out.String(), "Au revoir !")
	assert.FileExists(t, data)
	assert.NoFileExists(t, filepath.Join(home, config.DataFileName))
}

func TestRun_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		config string
		lang   string
	}{
		{"BadRatios", "resolver:\n  auto_accept: 0.5\n  suggest: 0.8\n", ""},
		{"UnsupportedFlagLanguage", "", "de"},
		{"MalformedFlagLanguage", "", "not a tag!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			if tt.config != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, config.ConfigFileName), []byte(tt.config), config.FilePermUserRW))
			}
			err := run(context.Background(), &options{home: home, lang: tt.lang}, strings.NewReader(""), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var closer io.Closer
	cmd := newRootCmd(&closer)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), config.AppName+" version "+config.Version)
	assert.Contains(t, out.String(), "commit "+config.Commit)
}

func TestRootCmd_RunsSession(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	home := t.TempDir()

	var closer io.Closer
	cmd := newRootCmd(&closer)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("hello\nclose\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--" + config.FlagHome, home, "--" + config.FlagNoColor})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	if closer != nil {
		require.NoError(t, closer.Close())
	}
	assert.Contains(t, out.String(), "Hello! How can I help you?")
	assert.FileExists(t, filepath.Join(home, config.DataFileName))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var closer io.Closer
	cmd := newRootCmd(&closer)
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)

	assert.Error(t, cmd.Execute())
}
