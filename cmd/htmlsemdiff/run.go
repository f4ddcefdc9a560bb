package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dannyswat/htmlsemdiff"
	"github.com/scott-cotton/cli"
)

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 inputs, got %d", cli.ErrUsage, len(args))
	}
	oldText, newText, err := readInputs(os.Stdin, args[0], args[1])
	if err != nil {
		return err
	}

	var res *htmlsemdiff.Result
	if cfg.Markdown {
		res, err = htmlsemdiff.CompareMarkdown(oldText, newText, cfg.diffOpts()...)
	} else {
		res, err = htmlsemdiff.Compare(oldText, newText, cfg.diffOpts()...)
	}
	if err != nil {
		return err
	}

	if cfg.Term {
		err = writeTerm(cc.Out, res.HTML, cfg.useColor(cc.Out))
	} else {
		_, err = fmt.Fprintln(cc.Out, res.HTML)
	}
	if err != nil {
		return fmt.Errorf("unable to write diff: %w", err)
	}
	if res.Changed() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// readInputs reads the old and new inputs. At most one of them may be "-",
// which reads stdin.
func readInputs(stdin io.Reader, oldPath, newPath string) (string, string, error) {
	if oldPath == "-" && newPath == "-" {
		return "", "", fmt.Errorf("%w: only one input can be read from stdin", cli.ErrUsage)
	}
	oldText, err := readInput(stdin, oldPath)
	if err != nil {
		return "", "", err
	}
	newText, err := readInput(stdin, newPath)
	if err != nil {
		return "", "", err
	}
	return oldText, newText, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		d, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(d), nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", cli.ErrUsage, path)
		}
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(d), nil
}
