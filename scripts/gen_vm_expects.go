// gen_vm_expects writes function forms of every vmTestCase builder method
// that takes arguments, so that table tests may apply them as a group:
//
//	vmTest("name").apply(expectVMStack(1, 2))
//
// Usage: go run scripts/gen_vm_expects.go -- [in.go [out.go]]
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	receiver = flag.String("receiver", "vmt vmTestCase", "builder method receiver")
	timeout  = flag.Duration("timeout", 5*time.Second, "generation time limit")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	// goimports adds any imports needed by argument types
	eg.Go(func() error {
		fmtCmd := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := fmtCmd.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		fmtCmd.Stdout = out
		fmtCmd.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := fmtCmd.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func builderMethod(recvName, recvType string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`func \(%s %s\) (expect|with)(.+?)\((.+?)\) %s`,
		regexp.QuoteMeta(recvName), regexp.QuoteMeta(recvType), regexp.QuoteMeta(recvType)))
}

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_vm_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	recv := strings.Fields(*receiver)
	if len(recv) != 2 {
		return fmt.Errorf("invalid -receiver %q, expected a name and a type", *receiver)
	}
	recvName, recvType := recv[0], recv[1]
	pattern := builderMethod(recvName, recvType)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := pattern.FindSubmatch(sc.Bytes()); len(match) > 0 {
			var (
				baseName = match[1]
				whatName = match[2]
				args     = match[3]
			)
			fmt.Fprintf(&buf, "func %sVM%s(%s) func(%s) %s {\n", baseName, whatName, args, recvType, recvType)
			fmt.Fprintf(&buf, "\treturn func(%s %s) %s {\n", recvName, recvType, recvType)
			fmt.Fprintf(&buf, "\t\treturn %s.%s%s(%s)\n", recvName, baseName, whatName, callArgs(args))
			buf.WriteString("\t}\n}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// callArgs turns a parameter list like "a, b int, rest ...string" into the
// argument list "a, b, rest...".
func callArgs(params []byte) []byte {
	var args bytes.Buffer
	for i, part := range bytes.Split(params, []byte(",")) {
		if i > 0 {
			args.WriteString(", ")
		}
		fields := bytes.Fields(part)
		if len(fields) == 0 {
			continue
		}
		args.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			args.WriteString("...")
		}
	}
	return args.Bytes()
}
