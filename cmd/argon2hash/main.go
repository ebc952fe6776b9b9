// Command argon2hash generates and verifies Argon2id PHC strings with the
// parameters pinned by the client application (v=19, m=7168, t=5, p=1,
// 16-byte key).
//
// Generate with a random 16-character salt:
//
//	argon2hash -password 'Aa@12345'
//
// Generate with a given salt (UTF-8):
//
//	argon2hash -password 'Aa@12345' -salt MySalt123456789
//
// Verify a PHC string:
//
//	argon2hash verify -password 'Aa@12345' -phc '$argon2id$v=19$m=7168,t=5,p=1$...$...'
//
// When -password is omitted in generate mode the password is read from the
// terminal without echo, or from the first line of standard input.
//
// Exit status is 0 on success or match, 1 on mismatch and 2 on invalid input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hasbyte1/argon2-phc/hashing"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitInvalid  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "argon2hash: ", 0)

	params := hashing.AppParams()
	h, err := hashing.NewArgon2idHasher(params)
	if err != nil {
		logger.Printf("configure hasher: %v", err)
		return exitInvalid
	}

	if len(args) > 0 && args[0] == "verify" {
		return runVerify(h, params, args[1:], stdout, stderr, logger)
	}
	return runGenerate(h, args, stdin, stdout, stderr, logger)
}

func runGenerate(h hashing.Hasher, args []string, stdin io.Reader, stdout, stderr io.Writer, logger *log.Logger) int {
	fs := flag.NewFlagSet("argon2hash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	password := fs.String("password", "", "password to hash (prompted for if omitted)")
	salt := fs.String("salt", "", "salt string (UTF-8, ≥ 8 bytes); a random 16-character salt is used if omitted")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Argon2id hash generator (%s)\n\n", hashing.AppParams())
		fmt.Fprintf(stderr, "Usage:\n  argon2hash [-password P] [-salt S]\n  argon2hash verify -password P -phc HASH\n\n")
		fs.PrintDefaults()
	}
	if code, done := parseFlags(fs, args); done {
		return code
	}

	if *password == "" {
		pw, err := readPassword(stdin, stderr)
		if err != nil {
			logger.Printf("read password: %v", err)
			return exitInvalid
		}
		*password = pw
	}

	if *salt == "" {
		s, err := hashing.RandomSalt(hashing.DefaultSaltLen)
		if err != nil {
			logger.Print(err)
			return exitInvalid
		}
		*salt = s
	}

	phc, err := h.MakeWithSalt(*password, *salt)
	if err != nil {
		logger.Print(err)
		return exitInvalid
	}

	fmt.Fprintf(stdout, "salt: %s\n%s\n", *salt, phc)
	return exitOK
}

func runVerify(h hashing.Hasher, params hashing.Params, args []string, stdout, stderr io.Writer, logger *log.Logger) int {
	fs := flag.NewFlagSet("argon2hash verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	password := fs.String("password", "", "password to verify (required)")
	phc := fs.String("phc", "", "PHC string to verify against (required)")
	pinned := fs.Bool("pinned", false, fmt.Sprintf("reject hashes whose parameters differ from %s", params))
	if code, done := parseFlags(fs, args); done {
		return code
	}
	if *password == "" || *phc == "" {
		logger.Print("verify: -password and -phc are required")
		fs.Usage()
		return exitInvalid
	}

	var (
		ok  bool
		err error
	)
	if *pinned {
		ok, err = hashing.VerifyPinned([]byte(*password), *phc, params)
	} else {
		ok, err = h.Check(*password, *phc)
	}
	switch {
	case err != nil:
		logger.Printf("verify: %v", err)
		return exitInvalid
	case !ok:
		fmt.Fprintln(stdout, "MISMATCH")
		return exitMismatch
	}
	fmt.Fprintln(stdout, "OK")
	return exitOK
}

// parseFlags parses args into fs. done is true when the caller should return
// code immediately (help requested, bad flag, or stray arguments).
func parseFlags(fs *flag.FlagSet, args []string) (code int, done bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, true
		}
		return exitInvalid, true
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return exitInvalid, true
	}
	return exitOK, false
}

// readPassword prompts on stderr and reads a password from stdin. A terminal
// is read without echo; any other reader supplies its first line.
func readPassword(stdin io.Reader, stderr io.Writer) (string, error) {
	fmt.Fprint(stderr, "Password: ")

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
