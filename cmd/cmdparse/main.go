// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/diff"
	diffwrite "github.com/pkg/diff/write"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"mvdan.cc/editorconfig"

	"mvdan.cc/cmdline/fileutil"
	"mvdan.cc/cmdline/syntax"
)

var (
	showVersion = flag.Bool("version", false, "")

	list    = flag.Bool("l", false, "")
	write   = flag.Bool("w", false, "")
	diffOut = flag.Bool("d", false, "")
	source  = flag.Bool("s", false, "")
	find    = flag.Bool("f", false, "")
	toJSON  = flag.Bool("tojson", false, "")

	filename = flag.String("filename", "", "")

	indent   = flag.Uint("i", 2, "")
	maxArgs  = flag.Int("maxargs", 0, "")
	maxToken = flag.Int("maxtoken", 0, "")
	maxLine  = flag.Int("maxline", 0, "")
	maxDepth = flag.Int("maxdepth", 0, "")

	// useEditorConfig will be false if any parser or printer flags were used.
	useEditorConfig = true

	in     io.Reader = os.Stdin
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
	color  bool

	version = "(devel)" // to match the default from runtime/debug
)

var parserFree = sync.Pool{
	New: func() interface{} { return syntax.NewParser() },
}

func main() {
	os.Exit(main1())
}

func main1() int {
	flag.Usage = func() {
		fmt.Fprint(errOut, `usage: cmdparse [flags] [path ...]

Each line of the input is parsed as a command line. Empty lines and lines
starting with '#' are skipped. If the only argument is a dash ('-') or no
arguments are given, standard input will be used; if it is a terminal, lines
are read interactively. If a given path is a directory, it will be recursively
searched for command files: those ending in .cmds, and those without an
extension starting with a cmdparse shebang such as "#!/usr/bin/env cmdparse".

  -version  show version and exit

  -s        print the canonical command line instead of the parsed structure
  -l        list files whose canonical form differs
  -w        write the canonical form to the file instead of stdout
  -d        error with a diff when the canonical form differs
  -f        recursively find all command files and print the paths
  -tojson   print the parsed structure as JSON; standard input only

Parser options:

  -maxargs int   maximum number of words per command (default 2048)
  -maxtoken int  maximum length of a word in bytes (default 1023)
  -maxline int   maximum length of a line in bytes (default 4096)
  -maxdepth int  maximum subshell nesting (default 100)
  -filename str  provide a name for the standard input file

Printer options:

  -i uint   spaces per subshell level in the parsed structure (default 2)

Unless any parser or printer option is given, they are read from the
max_args, max_token_length, max_line_length, max_nesting and indent_size
properties of .editorconfig files.
`)
	}
	flag.Parse()

	if *showVersion {
		// don't overwrite the version if it was set by -ldflags=-X
		if info, ok := debug.ReadBuildInfo(); ok && version == "(devel)" {
			mod := &info.Main
			if mod.Replace != nil {
				mod = mod.Replace
			}
			version = mod.Version
		}
		fmt.Fprintln(out, version)
		return 0
	}
	if os.Getenv("CMDPARSE_NO_EDITORCONFIG") == "true" {
		useEditorConfig = false
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maxargs", "maxtoken", "maxline", "maxdepth", "i":
			useEditorConfig = false
		}
	})

	if os.Getenv("FORCE_COLOR") == "true" {
		// Undocumented way to force color; used in the tests.
		color = true
	} else if os.Getenv("TERM") == "dumb" {
		// Equivalent to forcing color to be turned off.
	} else if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color = true
	}

	if flag.NArg() == 0 || (flag.NArg() == 1 && flag.Arg(0) == "-") {
		name := "<standard input>"
		if *filename != "" {
			name = *filename
		}
		if err := formatStdin(name); err != nil {
			if err != errChangedWithDiff {
				fmt.Fprintln(errOut, err)
			}
			return 1
		}
		return 0
	}
	if *filename != "" {
		fmt.Fprintln(errOut, "-filename can only be used with stdin")
		return 1
	}
	if *toJSON {
		fmt.Fprintln(errOut, "-tojson can only be used with stdin")
		return 1
	}

	status := 0
	var jobs []*job
	for _, path := range flag.Args() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() && !*find {
			// When given paths to files directly, always parse
			// them, no matter their extension or shebang.
			//
			// The only exception is the -f flag; in that case, we
			// do want to report whether the file holds commands.
			j, err := newJob(path, false)
			if err != nil {
				fmt.Fprintln(errOut, err)
				return 1
			}
			jobs = append(jobs, j)
			continue
		}
		if err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			j, err := walkPath(path, d)
			switch {
			case err == filepath.SkipDir:
				return err
			case err != nil:
				fmt.Fprintln(errOut, err)
				status = 1
			case j != nil:
				jobs = append(jobs, j)
			}
			return nil
		}); err != nil {
			// Something went wrong walking the filesystem; stop.
			fmt.Fprintln(errOut, err)
			return 1
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			j.run()
			return nil
		})
	}
	g.Wait()
	for _, j := range jobs {
		out.Write(j.out.Bytes())
		errOut.Write(j.errOut.Bytes())
		if j.failed {
			status = 1
		}
	}
	return status
}

var errChangedWithDiff = fmt.Errorf("")

// options holds what the parser and printer need for one input.
type options struct {
	maxArgs, maxToken, maxLine, maxDepth int

	indent uint
}

func flagOptions() options {
	return options{
		maxArgs:  *maxArgs,
		maxToken: *maxToken,
		maxLine:  *maxLine,
		maxDepth: *maxDepth,
		indent:   *indent,
	}
}

var ecQuery = editorconfig.Query{
	FileCache:   make(map[string]*editorconfig.File),
	RegexpCache: make(map[string]*regexp.Regexp),
}

// propsOptions reads the options for a path from .editorconfig files.
// Properties which are missing or malformed keep their default.
func propsOptions(props editorconfig.Section) options {
	atoi := func(name string) int {
		n, _ := strconv.Atoi(props.Get(name))
		return n
	}
	opts := options{
		maxArgs:  atoi("max_args"),
		maxToken: atoi("max_token_length"),
		maxLine:  atoi("max_line_length"),
		maxDepth: atoi("max_nesting"),
		indent:   2,
	}
	if n := props.IndentSize(); n > 0 {
		opts.indent = uint(n)
	}
	return opts
}

func optionsFor(path string) (options, error) {
	if !useEditorConfig {
		return flagOptions(), nil
	}
	props, err := ecQuery.Find(path)
	if err != nil {
		return options{}, err
	}
	return propsOptions(props), nil
}

// apply sets every limit, so that a parser taken from the pool keeps
// nothing from its previous use.
func (o options) apply(p *syntax.Parser) {
	syntax.MaxArgs(o.maxArgs)(p)
	syntax.MaxTokenLen(o.maxToken)(p)
	syntax.MaxLineLen(o.maxLine)(p)
	syntax.MaxDepth(o.maxDepth)(p)
}

func (o options) printer() *syntax.Printer {
	return syntax.NewPrinter(syntax.Indent(o.indent), syntax.LineLimit(o.maxLine))
}

func formatStdin(name string) error {
	if *write {
		return fmt.Errorf("-w cannot be used on standard input")
	}
	opts, err := optionsFor(name)
	if err != nil {
		return err
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return interactive(opts)
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return formatBytes(out, src, name, opts)
}

var vcsDir = regexp.MustCompile(`^\.(git|svn|hg)$`)

// walkPath returns the job for a path found while walking a directory,
// or nil if the path does not hold command lines.
func walkPath(path string, d fs.DirEntry) (*job, error) {
	if d.IsDir() && vcsDir.MatchString(d.Name()) {
		return nil, filepath.SkipDir
	}
	if useEditorConfig {
		props, err := ecQuery.Find(path)
		if err != nil {
			return nil, err
		}
		if props.Get("ignore") == "true" {
			if d.IsDir() {
				return nil, filepath.SkipDir
			}
			return nil, nil
		}
	}
	info, err := d.Info()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	conf := fileutil.CouldHoldCommands(info)
	if conf == fileutil.ConfNotCommands {
		return nil, nil
	}
	return newJob(path, conf == fileutil.ConfIfShebang)
}

// job is the work on a single file. Jobs run concurrently, so each one
// collects its output to be written in order afterwards.
type job struct {
	path         string
	checkShebang bool
	opts         options

	out, errOut bytes.Buffer
	failed      bool
}

func newJob(path string, checkShebang bool) (*job, error) {
	opts, err := optionsFor(path)
	if err != nil {
		return nil, err
	}
	return &job{path: path, checkShebang: checkShebang, opts: opts}, nil
}

func (j *job) run() {
	switch err := j.format(); err {
	case nil:
	case errChangedWithDiff:
		j.failed = true
	default:
		fmt.Fprintln(&j.errOut, err)
		j.failed = true
	}
}

func (j *job) format() error {
	src, err := os.ReadFile(j.path)
	if err != nil {
		if j.checkShebang && os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if j.checkShebang && !fileutil.HasShebang(src) {
		return nil
	}
	if *find {
		fmt.Fprintln(&j.out, j.path)
		return nil
	}
	return formatBytes(&j.out, src, j.path, j.opts)
}

// parseLines parses every line of src which is not empty nor a comment.
// It writes the canonical form of src to canon and the bracket form of
// each parsed line to structure, skipping either if it is nil.
func parseLines(p *syntax.Parser, printer *syntax.Printer, src []byte, name string,
	canon, structure io.Writer,
) ([]*syntax.Command, error) {
	var cmds []*syntax.Command
	lines := strings.SplitAfter(string(src), "\n")
	for i, line := range lines {
		text := strings.TrimRight(line, "\r\n")
		if trimmed := strings.TrimSpace(text); trimmed == "" || trimmed[0] == '#' {
			if canon != nil {
				io.WriteString(canon, line)
			}
			continue
		}
		lineName := name + ":" + strconv.Itoa(i+1)
		cmd, err := p.Parse(text, lineName)
		if err != nil {
			return nil, err
		}
		if structure != nil {
			if err := printer.Print(structure, cmd); err != nil {
				return nil, err
			}
		}
		if canon != nil {
			if err := printer.PrintSource(canon, cmd); err != nil {
				return nil, fmt.Errorf("%s: %w", lineName, err)
			}
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func formatBytes(w io.Writer, src []byte, path string, opts options) error {
	p := parserFree.Get().(*syntax.Parser)
	defer parserFree.Put(p)
	opts.apply(p)
	printer := opts.printer()

	// only build the canonical form when it is needed
	var canon, structure bytes.Buffer
	var canonOut io.Writer
	needCanon := *source || *list || *write || *diffOut
	if needCanon && !*toJSON {
		canonOut = &canon
	}
	cmds, err := parseLines(p, printer, src, path, canonOut, &structure)
	if err != nil {
		return err
	}
	if *toJSON {
		// must be standard input; fine to return
		return writeJSON(w, cmds, true)
	}
	res := canon.Bytes()
	if needCanon && !bytes.Equal(src, res) {
		if *list {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}
		if *write {
			info, err := os.Lstat(path)
			if err != nil {
				return err
			}
			if err := writeFile(path, res, info.Mode().Perm()); err != nil {
				return err
			}
		}
		if *diffOut {
			opts := []diffwrite.Option{}
			if color {
				opts = append(opts, diffwrite.TerminalColor())
			}
			if err := diff.Text(path+".orig", path, src, res, w, opts...); err != nil {
				return fmt.Errorf("computing diff: %s", err)
			}
			return errChangedWithDiff
		}
	}
	if !*list && !*write && !*diffOut {
		if *source {
			_, err = w.Write(res)
		} else {
			_, err = w.Write(structure.Bytes())
		}
	}
	return err
}

// interactive reads lines from a terminal one at a time, printing the
// parsed structure of each or the error found in it.
func interactive(opts options) error {
	p := syntax.NewParser()
	opts.apply(p)
	printer := opts.printer()

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "$ ")
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			if cmd, err := p.Parse(line, ""); err != nil {
				fmt.Fprintln(errOut, err)
			} else if *source {
				if err := printer.PrintSource(out, cmd); err != nil {
					fmt.Fprintln(errOut, err)
				}
			} else {
				printer.Print(out, cmd)
			}
		}
		fmt.Fprint(out, "$ ")
	}
	fmt.Fprintln(out)
	return sc.Err()
}
