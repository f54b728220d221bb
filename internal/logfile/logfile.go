// Package logfile appends to and reads back newline-delimited text logs.
//
// Lines are stored verbatim: AppendLine writes exactly the string it is
// given, and the reader returns each line with its trailing newline.
package logfile

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FilePerm is the permission used when a log file is created.
const FilePerm os.FileMode = 0o644

// AppendLine appends line to the file at path, creating it if necessary.
// No newline is added.
func AppendLine(fs afero.Fs, path, line string) (err error) {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return errors.Wrapf(err, "failed to open log %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close log %s", path)
		}
	}()

	if _, err := io.WriteString(f, line); err != nil {
		return errors.Wrapf(err, "failed to append to log %s", path)
	}
	return nil
}

// Lines is a single-pass iterator over the lines of a log file.
//
//	lines, err := logfile.Open(fs, path)
//	if err != nil { ... }
//	defer lines.Close()
//	for lines.Next() {
//		use(lines.Line())
//	}
//	if err := lines.Err(); err != nil { ... }
//
// A Lines cannot be rewound; open the file again to restart.
type Lines struct {
	f    afero.File
	r    *bufio.Reader
	line string
	err  error
	done bool
}

// Open opens the log at path for reading.
func Open(fs afero.Fs, path string) (*Lines, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log %s", path)
	}
	return &Lines{f: f, r: bufio.NewReader(f)}, nil
}

// Next advances to the next line. It returns false at end of file or on
// error.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}

	line, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = errors.Wrap(err, "failed to read log")
			return false
		}
		if line == "" {
			return false
		}
	}
	l.line = line
	return true
}

// Line returns the current line, including its newline if it had one.
func (l *Lines) Line() string {
	return l.line
}

// Err returns the first read error, if any.
func (l *Lines) Err() error {
	return l.err
}

// Close releases the underlying file.
func (l *Lines) Close() error {
	l.done = true
	return l.f.Close()
}

// ReadAll returns every line of the log at path.
func ReadAll(fs afero.Fs, path string) ([]string, error) {
	lines, err := Open(fs, path)
	if err != nil {
		return nil, err
	}
	defer lines.Close()

	var out []string
	for lines.Next() {
		out = append(out, lines.Line())
	}
	return out, lines.Err()
}
