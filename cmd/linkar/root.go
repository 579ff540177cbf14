package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dan-strohschein/linkar-go/client"
	"github.com/dan-strohschein/linkar-go/config"
	"github.com/dan-strohschein/linkar-go/format"
	"github.com/dan-strohschein/linkar-go/keychain"
	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport"
	"github.com/dan-strohschein/linkar-go/transport/dump"
)

type globalFlags struct {
	configFile string
	host       string
	entryPoint string
	port       int
	username   string
	password   string
	language   string
	freeText   string
	profile    string

	format     string
	timeout    int
	customVars string
	logLevel   string

	dryRun  bool
	async   bool
	visible bool
}

var globals globalFlags

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	globals = globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "linkar",
		Short: "Run Linkar MultiValue operations",
		Long: `linkar sends one Linkar operation per invocation and prints the raw
server response. Connection settings come from flags, LINKAR_* environment
variables or a config file; passwords can be kept in the OS keychain with
"linkar login".`,
		Version:       client.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&globals.configFile, "config", "", "config file (yaml, json or toml)")
	f.StringVar(&globals.host, "host", "", "Linkar server host")
	f.StringVar(&globals.entryPoint, "entry-point", "", "Linkar entry point")
	f.IntVar(&globals.port, "port", 0, "Linkar server port")
	f.StringVarP(&globals.username, "username", "u", "", "user name")
	f.StringVar(&globals.password, "password", "", "password (prefer the keychain or LINKAR_PASSWORD)")
	f.StringVar(&globals.language, "language", "", "session language")
	f.StringVar(&globals.freeText, "free-text", "", "free text sent with the credential")
	f.StringVar(&globals.profile, "profile", "", "keychain profile")

	f.StringVarP(&globals.format, "format", "f", "", "XML, XML_DICT, XML_SCH, JSON, JSON_DICT or JSON_SCH")
	f.IntVar(&globals.timeout, "timeout", -1, "receive timeout in seconds, 0 waits indefinitely")
	f.StringVar(&globals.customVars, "custom-vars", "", "custom variables passed to the server hooks")
	f.StringVar(&globals.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")

	f.BoolVar(&globals.dryRun, "dry-run", false, "print the request instead of sending it")
	f.BoolVar(&globals.async, "async", false, "run the operation through the async executor")
	f.BoolVar(&globals.visible, "visible", false, "print delimiter marks as ^ ] \\")

	rootCmd.AddCommand(
		newReadCmd(), newUpdateCmd(), newUpdatePartialCmd(), newNewCmd(), newDeleteCmd(),
		newSelectCmd(), newSubroutineCmd(), newConversionCmd(), newFormatCmd(),
		newDictionariesCmd(), newExecuteCmd(), newVersionCmd(), newSchemasCmd(),
		newPropertiesCmd(), newResetCommonBlocksCmd(),
		newEncodeCmd(), newLoginCmd(), newLogoutCmd(),
	)
	return rootCmd
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

// loadConfig merges the config file and environment with explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(globals.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	set("host", &cfg.Host, globals.host)
	set("entry-point", &cfg.EntryPoint, globals.entryPoint)
	set("username", &cfg.Username, globals.username)
	set("password", &cfg.Password, globals.password)
	set("language", &cfg.Language, globals.language)
	set("free-text", &cfg.FreeText, globals.freeText)
	set("profile", &cfg.Profile, globals.profile)
	set("custom-vars", &cfg.CustomVars, globals.customVars)
	set("log-level", &cfg.LogLevel, globals.logLevel)

	if flags.Changed("port") {
		cfg.Port = globals.port
	}
	if flags.Changed("timeout") {
		cfg.ReceiveTimeout = globals.timeout
	}
	if flags.Changed("format") {
		if cfg.Format, err = format.Parse(globals.format); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// session is what every operation command needs.
type session struct {
	client     *client.Client
	cred       protocol.Credential
	format     format.Format
	customVars string
	timeout    int
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.Password == "" && cfg.Username != "" && !globals.dryRun {
		cfg.Password = keychainPassword(cfg)
	}
	cred := cfg.Credential()

	var t transport.Transport
	if globals.dryRun {
		t = dump.New(cmd.ErrOrStderr())
	} else {
		t, err = transport.Open(cfg.Transport, cred)
		if err != nil {
			return nil, fmt.Errorf("%w (registered: %s)", err, strings.Join(transport.Registered(), ", "))
		}
	}

	logger := client.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	opts := cfg.ClientOptions(logger)
	return &session{
		client:     client.New(t, &opts),
		cred:       cred,
		format:     cfg.Format,
		customVars: cfg.CustomVars,
		timeout:    cfg.ReceiveTimeout,
	}, nil
}

func keychainPassword(cfg *config.Config) string {
	store, err := openKeychain()
	if err != nil {
		return ""
	}
	pw, err := store.LoadPassword(cfg.Profile, cfg.Username)
	if err != nil && !errors.Is(err, keychain.ErrNotFound) {
		printWarning(err.Error())
	}
	return pw
}

type syncCall func(ctx context.Context, s *session) (string, error)
type asyncCall func(ctx context.Context, s *session) *client.Future

// run executes one operation either directly or through a future and
// prints the response.
func run(cmd *cobra.Command, build func(s *session) (syncCall, asyncCall, error)) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	call, callAsync, err := build(s)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var resp string
	if globals.async {
		fut := callAsync(ctx, s)
		label := fmt.Sprintf("%s %s", fut.Operation(), fut.ID())
		if !isTerminal(cmd.ErrOrStderr()) {
			resp, err = fut.Get(ctx)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", label, fut.State())
		} else {
			spinner, _ := pterm.DefaultSpinner.WithWriter(cmd.ErrOrStderr()).Start(label)
			resp, err = fut.Get(ctx)
			if spinner != nil {
				if err != nil {
					spinner.Fail(fut.State().String())
				} else {
					spinner.Success(fut.State().String())
				}
			}
		}
	} else {
		resp, err = call(ctx, s)
	}
	if err != nil {
		return err
	}

	if globals.visible {
		resp = protocol.Visible(resp)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp)
	return err
}

// isTerminal reports whether w is an interactive terminal. The spinner is
// only drawn there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// payload returns arg, or standard input when arg is "-".
func payload(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
