// Package session runs a line-oriented box-name editing session: one record,
// edited a box at a time, with the active version and language held by the
// session and passed explicitly into every codec call.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/view"
	"github.com/provide-io/boxnames/go/boxnames/pkg/utils/shellparse"
)

// ErrUnknownCommand is returned for a command the session does not know.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  set N NAME          encode NAME into box N (1-14)
  clear N             empty box N
  bytes N HEX         overwrite box N with 9 raw bytes
  load HEX            overwrite all boxes with 126 raw bytes
  show                list the decoded names
  hex                 show the raw bytes
  view KIND [ENDIAN]  raw, u16, u32, codegen or paste
  version V           RS, FRLG or E
  lang L              JPN, ENG, FRA, ITA, GER or SPA
  mask on|off         show unwritable bytes as □
  help                this text
  quit                leave the session`

// Session owns one record. It is meant to be driven by a single goroutine.
type Session struct {
	record   *boxname.Record
	version  charset.Version
	language charset.Language
	decode   codec.DecodeOptions
	out      io.Writer
	logger   hclog.Logger
}

// New starts a session on an empty record.
func New(v charset.Version, l charset.Language, out io.Writer, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Session{
		record:   boxname.New(),
		version:  v,
		language: l,
		out:      out,
		logger:   logger,
	}
}

// Record returns the record being edited.
func (s *Session) Record() *boxname.Record {
	return s.record
}

// Version returns the active game version.
func (s *Session) Version() charset.Version {
	return s.version
}

// Language returns the active language.
func (s *Session) Language() charset.Language {
	return s.language
}

// Run executes commands read from in until EOF or quit. Command errors are
// reported to the output and do not stop the session.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.Exec(scanner.Text())
		if err != nil {
			s.logger.Debug("❌ Command failed", "line", scanner.Text(), "error", err)
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs a single command line.
func (s *Session) Exec(line string) (quit bool, err error) {
	words, err := shellparse.Split(line)
	if err != nil {
		return false, err
	}
	if len(words) == 0 {
		return false, nil
	}
	s.logger.Trace("⌨️ Command", "words", shellparse.Join(words))

	cmd, args := strings.ToLower(words[0]), words[1:]
	switch cmd {
	case "set":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: set N NAME")
		}
		return false, s.setName(args[0], args[1])
	case "clear":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: clear N")
		}
		return false, s.setName(args[0], "")
	case "bytes":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: bytes N HEX")
		}
		return false, s.setBytes(args[0], strings.Join(args[1:], ""))
	case "load":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: load HEX")
		}
		return false, s.load(strings.Join(args, ""))
	case "show":
		s.show()
		return false, nil
	case "hex":
		fmt.Fprintln(s.out, view.FormatHex(s.record.Bytes()))
		return false, nil
	case "view":
		return false, s.render(args)
	case "version":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: version V")
		}
		v, err := charset.ParseVersion(args[0])
		if err != nil {
			return false, err
		}
		s.version = v
		s.show()
		return false, nil
	case "lang", "language":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: lang L")
		}
		l, err := charset.ParseLanguage(args[0])
		if err != nil {
			return false, err
		}
		s.language = l
		s.show()
		return false, nil
	case "mask":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return false, fmt.Errorf("usage: mask on|off")
		}
		s.decode.MaskUnwritable = args[0] == "on"
		return false, nil
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, words[0])
	}
}

// parseBox converts a 1-based box number into a slot index.
func parseBox(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid box number %q", s)
	}
	return n - 1, nil
}

func (s *Session) setName(box, name string) error {
	index, err := parseBox(box)
	if err != nil {
		return err
	}
	if err := codec.Encode(s.record, index, name, s.version, s.language); err != nil {
		return err
	}
	s.printBox(index)
	return nil
}

func (s *Session) setBytes(box, hexDigits string) error {
	index, err := parseBox(box)
	if err != nil {
		return err
	}
	data, err := view.DecodeHex(hexDigits)
	if err != nil {
		return err
	}
	if err := s.record.SetSlotBytes(index, data); err != nil {
		return err
	}
	s.printBox(index)
	return nil
}

func (s *Session) load(hexDigits string) error {
	data, err := view.ParseHex(hexDigits)
	if err != nil {
		return err
	}
	if err := s.record.SetBytes(data); err != nil {
		return err
	}
	s.show()
	return nil
}

func (s *Session) render(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: view KIND [ENDIAN]")
	}
	kind, err := view.ParseKind(args[0])
	if err != nil {
		return err
	}
	endian := ""
	if len(args) == 2 {
		endian = args[1]
	}
	order, err := view.ParseByteOrder(endian)
	if err != nil {
		return err
	}
	out, err := view.Render(s.record, view.Options{
		Kind:     kind,
		Order:    order,
		Version:  s.version,
		Language: s.language,
		Decode:   s.decode,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, out)
	return nil
}

func (s *Session) show() {
	names := codec.DecodeRecord(s.record, s.version, s.language, s.decode)
	for i, name := range names {
		fmt.Fprintf(s.out, "Box %2d: %s\n", i+1, name)
	}
}

func (s *Session) printBox(index int) {
	slot, _ := s.record.Slot(index)
	fmt.Fprintf(s.out, "Box %2d: %s\n", index+1, codec.DecodeWithOptions(slot, s.version, s.language, s.decode))
}
