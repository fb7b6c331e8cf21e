package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c2fo/ftpsession"
	"github.com/c2fo/ftpsession/types"
)

const timeLayout = "2006-01-02 15:04"

var errRejected = errors.New("command rejected by server")

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory with sizes, modes and modification times (MLSD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			entries, err := conn.Ls(argOr(args, 0, ""))
			if err != nil {
				return err
			}
			for i := range entries {
				a.printf("%s\n", formatEntry(&entries[i]))
			}
			return nil
		}),
	}
}

func formatEntry(e *ftpsession.Entry) string {
	size := "-"
	if e.Size >= 0 {
		size = strconv.FormatInt(e.Size, 10)
	}
	modified := "-"
	if !e.ModifyTime.IsZero() {
		modified = e.ModifyTime.Format(timeLayout)
	}
	mode := e.Mode
	if mode == "" {
		mode = "-"
	}
	name := e.Name
	if e.IsDir() {
		name = dirColor.Sprint(name + "/")
	}
	return fmt.Sprintf("%-4s %10s  %s  %s", mode, size, modified, name)
}

func (a *app) nlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nlist [dir]",
		Short: "List the names in a directory (NLST)",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			names, err := conn.Nlist(argOr(args, 0, ""))
			if err != nil {
				return err
			}
			for _, name := range names {
				a.printf("%s\n", name)
			}
			return nil
		}),
	}
}

func (a *app) pwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the working directory",
		Args:  cobra.NoArgs,
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, _ []string) error {
			dir, err := conn.Pwd()
			if err != nil {
				return err
			}
			a.printf("%s\n", dir)
			return nil
		}),
	}
}

func (a *app) mkdirCmd() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: "Create directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			for _, dir := range args {
				if err := conn.Mkdir(dir, parents); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	return cmd
}

func (a *app) rmdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rmdir <dir>...",
		Short: "Remove empty directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			for _, dir := range args {
				if err := conn.Rmdir(dir); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file>...",
		Short: "Delete files",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			for _, p := range args {
				if err := conn.Delete(p); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func (a *app) mvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Rename a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			return conn.Rename(args[0], args[1])
		}),
	}
}

func (a *app) chmodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chmod <octal-mode> <path>",
		Short: "Change permissions with SITE CHMOD",
		Args:  cobra.ExactArgs(2),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			mode, err := strconv.ParseUint(args[0], 8, 32)
			if err != nil {
				return fmt.Errorf("invalid mode %q: %w", args[0], err)
			}
			return conn.Chmod(args[1], os.FileMode(mode))
		}),
	}
}

func (a *app) sizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <file>",
		Short: "Print the size of a file in bytes",
		Args:  cobra.ExactArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			n, err := conn.Size(args[0])
			if err != nil {
				return err
			}
			a.printf("%d\n", n)
			return nil
		}),
	}
}

func (a *app) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the MLST entry of a path",
		Args:  cobra.ExactArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			entry, err := conn.Stat(args[0])
			if err != nil {
				return err
			}
			a.printf("name: %s\ntype: %s\nsize: %d\nmode: %s\n", entry.Name, entry.Type, entry.Size, entry.Mode)
			if !entry.ModifyTime.IsZero() {
				a.printf("modify: %s\n", entry.ModifyTime.Format(timeLayout))
			}
			return nil
		}),
	}
}

func (a *app) testCmd() *cobra.Command {
	var dir, file bool
	cmd := &cobra.Command{
		Use:   "test <path>",
		Short: "Print whether a path exists, optionally as a directory (-d) or file (-f)",
		Args:  cobra.ExactArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			var ok bool
			var err error
			switch {
			case dir:
				ok, err = conn.IsDir(args[0])
			case file:
				ok, err = conn.IsFile(args[0])
			default:
				ok, err = conn.FileExists(args[0])
			}
			if err != nil {
				return err
			}
			if ok {
				a.printf("%s\n", okColor.Sprint("true"))
			} else {
				a.printf("%s\n", errorColor.Sprint("false"))
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "test for a directory")
	cmd.Flags().BoolVarP(&file, "file", "f", false, "test for a regular file")
	cmd.MarkFlagsMutuallyExclusive("dir", "file")
	return cmd
}

func (a *app) putCmd() *cobra.Command {
	var appendData, ascii bool
	cmd := &cobra.Command{
		Use:   "put <local> <remote>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(2),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			if appendData {
				return conn.Append(args[1], args[0], transferMode(ascii))
			}
			return conn.Upload(args[0], args[1])
		}),
	}
	cmd.Flags().BoolVarP(&appendData, "append", "a", false, "append to the remote file (APPE)")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "append in ASCII mode")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <remote> <local>",
		Short: "Download a file, replacing the local copy",
		Args:  cobra.ExactArgs(2),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			return conn.Download(args[0], args[1])
		}),
	}
}

func (a *app) catCmd() *cobra.Command {
	var limit int64
	var ascii bool
	cmd := &cobra.Command{
		Use:   "cat <remote>",
		Short: "Print a remote file",
		Args:  cobra.ExactArgs(1),
		RunE: a.withConn(func(cmd *cobra.Command, conn *ftpsession.Connection, args []string) error {
			var data []byte
			var err error
			if cmd.Flags().Changed("bytes") {
				data, err = conn.GetN(args[0], transferMode(ascii), limit)
			} else {
				data, err = conn.Get(args[0], transferMode(ascii))
			}
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		}),
	}
	cmd.Flags().Int64VarP(&limit, "bytes", "n", 0, "print at most this many bytes")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "transfer in ASCII mode")
	return cmd
}

func (a *app) writeCmd() *cobra.Command {
	var appendData, ascii bool
	cmd := &cobra.Command{
		Use:   "write <remote>",
		Short: "Store standard input as a remote file",
		Args:  cobra.ExactArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			data, err := io.ReadAll(a.in)
			if err != nil {
				return err
			}
			return conn.Put(args[0], data, appendData, transferMode(ascii))
		}),
	}
	cmd.Flags().BoolVarP(&appendData, "append", "a", false, "append instead of replacing")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "transfer in ASCII mode")
	return cmd
}

func (a *app) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <verb> [arg]...",
		Short: "Send a raw command; arguments are quoted as needed",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withConn(func(_ *cobra.Command, conn *ftpsession.Connection, args []string) error {
			command, err := conn.Execute(args...)
			if err != nil {
				return err
			}
			if command.IsError() {
				a.errorf("%s\n", command.ErrorMessage())
				return fmt.Errorf("%s: %w", strings.ToUpper(args[0]), errRejected)
			}
			a.printf("%s\n", command.Output())
			return nil
		}),
	}
}

func transferMode(ascii bool) types.TransferMode {
	if ascii {
		return types.ModeASCII
	}
	return types.ModeBinary
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}
