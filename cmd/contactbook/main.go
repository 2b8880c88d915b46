package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/contactbook/internal/config"
	"github.com/tartampluch/contactbook/internal/contact"
	"github.com/tartampluch/contactbook/internal/i18n"
	"github.com/tartampluch/contactbook/internal/session"
	"github.com/tartampluch/contactbook/internal/storage"
)

// options holds the parsed command-line flags.
type options struct {
	home    string
	data    string
	lang    string
	debug   bool
	noColor bool
}

// main is the application entry point.
// It delegates execution to runMain so deferred calls (closing the log file)
// run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle and maps errors to exit codes.
func runMain() int {
	var logCloser io.Closer
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close() // Best effort close
		}
	}()

	// Cancel on SIGINT (Ctrl+C) or SIGTERM. An interrupted session is not saved.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd(&logCloser).ExecuteContext(ctx)
	switch {
	case err == nil:
		slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
		return config.ExitCodeSuccess

	case errors.Is(err, context.Canceled):
		slog.Warn(config.MsgInterrupted, config.LogKeyComponent, config.CompMain)
		return config.ExitCodeInterrupted

	default:
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.BinaryName, err)
		return config.ExitCodeError
	}
}

// newRootCmd builds the cobra command. The log file opened by the pre-run
// hook is handed back through logCloser.
func newRootCmd(logCloser *io.Closer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           config.BinaryName,
		Short:         config.CmdShort,
		Long:          config.CmdLong,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			*logCloser = setupLogging(opts.debug)
			logStartupInfo()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput+"\n",
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	))

	flags := cmd.Flags()
	flags.StringVar(&opts.home, config.FlagHome, "", config.FlagDescHome)
	flags.StringVar(&opts.data, config.FlagData, "", config.FlagDescData)
	flags.StringVar(&opts.lang, config.FlagLang, "", config.FlagDescLang)
	flags.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.BoolVar(&opts.noColor, config.FlagNoColor, false, config.FlagDescNoColor)
	return cmd
}

// run resolves settings, loads the book and drives the session until it ends
// or ctx is cancelled.
func run(ctx context.Context, opts *options, in io.Reader, out io.Writer) error {
	home := opts.home
	if home == "" {
		home = config.Home()
	}

	settings, err := config.LoadSettings(home)
	if err != nil {
		return err
	}
	writeDefaultSettings(home, settings)
	if opts.data != "" {
		// Flag paths are relative to the working directory, not to home.
		abs, err := filepath.Abs(opts.data)
		if err != nil {
			return err
		}
		settings.DataFile = abs
	}
	if opts.lang != "" {
		lang, err := i18n.ParseLanguage(opts.lang)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrUnsupportedLang, err)
		}
		settings.Language = lang
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	tr := i18n.New(settings.Language)
	store := storage.NewFileStore(settings.DataPath(home))
	var saver session.Saver = store
	book, err := store.Load()
	if err != nil {
		// An unreadable file must not prevent the session from starting.
		slog.Warn(config.MsgBookLoadFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyFile, store.Path,
			config.LogKeyError, err,
		)
		book = contact.NewBook()

		// The original bytes survive aside; if they cannot be moved, the
		// session never writes over them.
		backup, qerr := store.Quarantine(time.Now())
		if qerr != nil {
			slog.Error(config.ErrQuarantine,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, qerr,
			)
			saver = nil
			fmt.Fprintln(out, tr.T(config.TKeyBookUnsaved, nil))
		} else {
			fmt.Fprintln(out, tr.T(config.TKeyBookMoved, map[string]any{"Path": backup}))
		}
	}

	sess := session.New(session.Options{
		Book:       book,
		Store:      saver,
		In:         in,
		Out:        out,
		Translator: tr,
		Settings:   settings,
		NoColor:    opts.noColor,
	})

	// Reads block, so the loop runs aside and the signal wins the race.
	done := make(chan error, 1)
	go func() {
		done <- sess.Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// writeDefaultSettings stores settings as config.yaml on first run so the
// user has a file to edit. Failure only costs that convenience.
func writeDefaultSettings(home string, settings config.Settings) {
	path := filepath.Join(home, config.ConfigFileName)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := settings.Save(home); err != nil {
		slog.Warn(config.ErrConfigWrite,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyFile, path,
			config.LogKeyError, err,
		)
	}
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Stdout belongs to the
// session, so records go to a file in the user's cache directory and, in
// debug mode, to stderr.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
