package salad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fruit-salad/config"
	"fruit-salad/datastruct/list"

	"github.com/sirupsen/logrus"
)

// Session 一次交互会话, 独占一个 Sequence
type Session struct {
	seq  list.Sequence
	rng  list.Source
	in   *bufio.Reader
	out  io.Writer
	opts *Options
	log  *logrus.Entry
}

func NewSession(seq list.Sequence, rng list.Source, in io.Reader, out io.Writer, opts ...Option) *Session {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Session{
		seq:  seq,
		rng:  rng,
		in:   bufio.NewReader(in),
		out:  out,
		opts: options,
		log:  options.Log.WithField("mode", options.Mode),
	}
}

func (s *Session) deque() bool {
	return s.opts.Mode == config.ModeDeque
}

// Run 执行开场流程, 然后进入菜单循环, 直到选择退出或者输入结束
func (s *Session) Run() error {
	s.Prepare()
	for {
		s.printMenu()
		choice, err := s.readLine("\nChoice (1-4): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("input closed")
				s.Exit()
				return nil
			}
			return err
		}
		switch choice {
		case "1":
			err = s.Add()
		case "2":
			err = s.Remove()
		case "3":
			s.Pick()
		case "4":
			s.Exit()
			return nil
		default:
			s.fail("Invalid choice! Please enter 1-4.")
		}
		if errors.Is(err, io.EOF) {
			s.Exit()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Prepare 展示初始沙拉, 打乱, 再往两端各加入水果
func (s *Session) Prepare() {
	title := "=== Linked Fruit Salad Challenge ==="
	if s.deque() {
		title = "=== Deque Fruit Salad Challenge ==="
	}
	s.println(paint(s.opts.Color, title, AttrBold))
	s.println("Initial fruits added to the back:")
	s.Render()

	s.seq.Shuffle(s.rng)
	s.ok("\n✓ Fruits shuffled!")
	s.Render()

	_ = s.seq.InsertAt(0, "Pomegranate")
	_ = s.seq.InsertAt(s.seq.Len(), "Fig")
	_ = s.seq.InsertAt(s.seq.Len(), "Cherry")
	s.ok("\n✓ Added Pomegranate to front, Fig and Cherry to back!")
	s.Render()
	s.log.WithField("op", "prepare").Debugf("salad ready with %d fruits", s.seq.Len())
}

func (s *Session) printMenu() {
	s.println("\n=== Menu ===")
	if s.deque() {
		s.println("1. Add a fruit to either end")
		s.println("2. Remove a fruit from either end")
	} else {
		s.println("1. Add a fruit at any position")
		s.println("2. Remove a fruit from any position")
	}
	s.println("3. Pick a random fruit")
	s.println("4. Exit")
}

// Add 读取水果名和位置后插入
func (s *Session) Add() error {
	s.println("\n--- Add Fruit to Salad ---")
	name, err := s.readLine("Enter fruit name: ")
	if err != nil {
		return err
	}
	if name == "" {
		s.fail("Fruit name cannot be empty!")
		return nil
	}

	n := s.seq.Len()
	var position int
	if s.deque() {
		position, err = s.chooseEnd("Add to (1) Front or (2) Back? (Enter 1 or 2): ", n)
	} else {
		s.println("\nChoose position:")
		s.println("  0 - Front")
		for i := 1; i < n; i++ {
			s.printf("  %d - After position %d\n", i, i)
		}
		s.printf("  %d - Back (end)\n", n)
		position, err = s.readPosition()
	}
	if err != nil {
		return s.invalid(err)
	}

	if err := s.seq.InsertAt(position, name); err != nil {
		s.log.WithField("op", "add").Errorf("insert %q: %v", name, err)
		s.fail(fmt.Sprintf("Cannot add: %v", err))
		return nil
	}
	switch {
	case position <= 0:
		s.ok(fmt.Sprintf("✓ Added '%s' to the front!", name))
	case position >= n:
		s.ok(fmt.Sprintf("✓ Added '%s' to the back!", name))
	default:
		s.ok(fmt.Sprintf("✓ Added '%s' at position %d!", name, position))
	}
	s.log.WithField("op", "add").Debugf("inserted %q at %d, len %d", name, position, s.seq.Len())
	s.Render()
	return nil
}

// Remove 读取位置后删除, 空沙拉直接提示
func (s *Session) Remove() error {
	s.println("\n--- Remove Fruit from Salad ---")
	n := s.seq.Len()
	if n == 0 {
		s.fail("Cannot remove: Salad is empty!")
		return nil
	}

	var (
		position int
		err      error
	)
	if s.deque() {
		position, err = s.chooseEnd("Remove from (1) Front or (2) Back? (Enter 1 or 2): ", n)
	} else {
		s.println("\nChoose position to remove from:")
		s.println("  0 - Front")
		for i := 1; i < n-1; i++ {
			s.printf("  %d - Position %d\n", i, i)
		}
		if n > 1 {
			s.printf("  %d - Back (end)\n", n-1)
		}
		position, err = s.readPosition()
	}
	if err != nil {
		return s.invalid(err)
	}

	removed, err := s.seq.RemoveAt(position)
	if err != nil {
		s.log.WithField("op", "remove").Errorf("remove at %d: %v", position, err)
		s.fail("Cannot remove: Salad is empty!")
		return nil
	}
	switch {
	case position <= 0:
		s.ok(fmt.Sprintf("✓ Removed '%s' from the front!", removed))
	case position >= n-1:
		s.ok(fmt.Sprintf("✓ Removed '%s' from the back!", removed))
	default:
		s.ok(fmt.Sprintf("✓ Removed '%s' from position %d!", removed, position))
	}
	s.log.WithField("op", "remove").Debugf("removed %q at %d, len %d", removed, position, s.seq.Len())
	s.Render()
	return nil
}

func (s *Session) Pick() {
	s.println("\n--- Pick a Random Fruit ---")
	fruit, err := s.seq.PickRandom(s.rng)
	if err != nil {
		s.fail("Cannot pick: Salad is empty!")
		return
	}
	s.printf("🎲 Randomly selected: '%s'\n", paint(s.opts.Color, fruit, AttrYellow))
	s.log.WithField("op", "pick").Debugf("picked %q", fruit)
}

func (s *Session) Exit() {
	s.println("\n👋 Final Fruit Salad:")
	s.Render()
	s.println("\nGoodbye!")
	s.log.WithField("op", "exit").Debugf("final salad has %d fruits", s.seq.Len())
}

// Render 打印当前沙拉, 链表模式额外打印数量
func (s *Session) Render() {
	s.println("\n🥗 Current Fruit Salad:")
	s.printf("   %s\n", Format(s.seq))
	if s.seq.Len() > 0 && !s.deque() {
		s.printf("   Total fruits: %d\n", s.seq.Len())
	}
}

// Format 逗号分隔的水果列表, 为空时返回 "(empty)"
func Format(seq list.Sequence) string {
	if seq.Len() == 0 {
		return "(empty)"
	}
	var b strings.Builder
	seq.ForEach(func(value string, index int) bool {
		if index > 0 {
			b.WriteString(", ")
		}
		b.WriteString(value)
		return true
	})
	return b.String()
}

var errInvalidInput = errors.New("invalid input")

// chooseEnd 1 表示头部, 2 表示尾部, back 为尾部对应的位置 (会被钳制到最后一个元素)
func (s *Session) chooseEnd(prompt string, back int) (int, error) {
	choice, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	switch choice {
	case "1":
		return 0, nil
	case "2":
		return back, nil
	}
	return 0, fmt.Errorf("%w: %q, please enter 1 or 2", errInvalidInput, choice)
}

func (s *Session) readPosition() (int, error) {
	text, err := s.readLine("> ")
	if err != nil {
		return 0, err
	}
	position, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q", errInvalidInput, text)
	}
	return position, nil
}

// invalid 输入错误只提示, 读取错误继续向上返回
func (s *Session) invalid(err error) error {
	if !errors.Is(err, errInvalidInput) {
		return err
	}
	s.log.Debug(err)
	if s.deque() {
		s.fail("Invalid choice! Please enter 1 or 2.")
	} else {
		s.fail("Invalid position!")
	}
	s.Render()
	return nil
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if s.opts.Echo {
			s.println("")
		}
		return "", err
	}
	if s.opts.Echo {
		s.println(strings.TrimRight(line, "\r\n"))
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) ok(text string) {
	s.println(paint(s.opts.Color, text, AttrGreen))
}

func (s *Session) fail(text string) {
	s.println(paint(s.opts.Color, text, AttrRed))
}

func (s *Session) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
