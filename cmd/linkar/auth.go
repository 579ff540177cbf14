package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/keyring"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dan-strohschein/linkar-go/keychain"
)

func openKeychain() (*keychain.Store, error) {
	dir := os.Getenv("LINKAR_KEYCHAIN_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".linkar", "keys")
	}
	return keychain.Open(keychain.Config{
		FileDir: dir,
		Passphrase: func(prompt string) (string, error) {
			return readSecret(prompt + ": ")
		},
	})
}

// readSecret prompts on stderr and reads without echo when stdin is a
// terminal.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(b), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store the password of --username in the OS keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Username == "" {
				return errors.New("a username is required (--username or LINKAR_USERNAME)")
			}

			password := cfg.Password
			if password == "" {
				if password, err = readSecret(fmt.Sprintf("Password for %s@%s: ", cfg.Username, cfg.Host)); err != nil {
					return err
				}
			}
			if password == "" {
				return errors.New("empty password")
			}

			store, err := openKeychain()
			if err != nil {
				return err
			}
			if err := store.SavePassword(cfg.Profile, cfg.Username, password); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Saved password for %s", keychain.Key(cfg.Profile, cfg.Username)))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored password of --username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := openKeychain()
			if errors.Is(err, keyring.ErrNoAvailImpl) {
				printWarning("No keychain available on this system")
				return nil
			}
			if err != nil {
				return err
			}
			if err := store.Delete(cfg.Profile, cfg.Username); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Removed %s", keychain.Key(cfg.Profile, cfg.Username)))
			return nil
		},
	}
}
