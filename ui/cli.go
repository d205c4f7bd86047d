package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scicalc/core/evaluator"
	"scicalc/core/history"
	"scicalc/core/interpreter"
	"scicalc/core/persistence"
)

// ConsoleInterface представляет консольный интерфейс
type ConsoleInterface struct {
	interpreter *interpreter.Interpreter
	scanner     *bufio.Scanner
	out         io.Writer
}

// NewConsoleInterface создает новый консольный интерфейс
func NewConsoleInterface(i *interpreter.Interpreter, in io.Reader, out io.Writer) *ConsoleInterface {
	return &ConsoleInterface{
		interpreter: i,
		scanner:     bufio.NewScanner(in),
		out:         out,
	}
}

// Run запускает главный цикл интерфейса
func (c *ConsoleInterface) Run() error {
	c.showWelcome()
	c.loadHistory()

	for {
		fmt.Fprint(c.out, "calc> ")

		if !c.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(c.scanner.Text())
		if input == "" {
			continue
		}

		// Проверяем команды выхода
		if input == "/quit" || input == "/exit" {
			break
		}

		c.processCommand(input)
	}

	fmt.Fprintln(c.out, "До свидания!")
	return c.scanner.Err()
}

// showWelcome показывает приветственное сообщение
func (c *ConsoleInterface) showWelcome() {
	fmt.Fprintln(c.out, "═══════════════════════════════════════════")
	fmt.Fprintln(c.out, "   Научный калькулятор")
	fmt.Fprintln(c.out, "═══════════════════════════════════════════")
	fmt.Fprintln(c.out, "  • Выражения: 2 + 3 * 4, 2^3^2, -3 + 5, sqrt(16) + 2")
	fmt.Fprintln(c.out, "  • Функции (градусы): sin, cos, tan, log, ln, exp, sqrt")
	fmt.Fprintln(c.out, "  • Память: m+ <выражение>, m- <выражение>, mr, mc")
	fmt.Fprintln(c.out, "  • Справка: /help, выход: /quit")
	fmt.Fprintln(c.out)
}

// loadHistory показывает последние выражения
func (c *ConsoleInterface) loadHistory() {
	commands := c.interpreter.GetHistoryCommands(5)
	if len(commands) == 0 {
		return
	}
	fmt.Fprintln(c.out, "Последние выражения:")
	for i, cmd := range commands {
		fmt.Fprintf(c.out, "   %d. %s\n", i+1, cmd)
	}
	fmt.Fprintln(c.out)
}

// processCommand обрабатывает введенную команду
func (c *ConsoleInterface) processCommand(input string) {
	switch input {
	case "/history":
		c.printHistory(c.interpreter.GetHistory(20))
		return
	case "/memory":
		fmt.Fprintf(c.out, "M = %s\n", formatNumber(c.interpreter.MemoryRecall()))
		return
	case "/help":
		c.showHelp()
		return
	case "/clear-history", "/clearhist":
		c.interpreter.ClearHistory()
		fmt.Fprintln(c.out, "История очищена")
		return
	}

	result, err := c.interpreter.Execute(input)
	if err != nil {
		fmt.Fprintf(c.out, "Ошибка: %v\n", err)
		return
	}

	switch v := result.(type) {
	case float64:
		fmt.Fprintf(c.out, "= %s\n", formatNumber(v))
	case []history.DetailedHistoryEntry:
		c.printHistory(v)
	case []persistence.HistoryEntry:
		for _, entry := range v {
			fmt.Fprintf(c.out, "  #%d %s\n", entry.ID, entry.Expression)
		}
	default:
		fmt.Fprintf(c.out, "%v\n", result)
	}
}

func (c *ConsoleInterface) printHistory(entries []history.DetailedHistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "История пуста")
		return
	}
	for _, entry := range entries {
		outcome := "= " + entry.Result
		if entry.Error != "" {
			outcome = "ошибка: " + entry.Error
		}
		fmt.Fprintf(c.out, "%3d. [%s] %s %s\n", entry.ID, entry.Time, entry.Expression, outcome)
	}
}

// showHelp показывает подробную справку
func (c *ConsoleInterface) showHelp() {
	fmt.Fprintln(c.out, "ОПЕРАЦИИ:  + - * / ^ (^ правоассоциативен: 2^3^2 = 512), скобки, унарный минус")
	fmt.Fprintf(c.out, "ФУНКЦИИ:   %s (тригонометрия в градусах, log по основанию 10)\n", strings.Join(evaluator.Functions(), " "))
	fmt.Fprintln(c.out, "ПАМЯТЬ:    m+ <выражение>, m- <выражение>, mr, mc, /memory")
	fmt.Fprintln(c.out, "ИСТОРИЯ:   history, history search <слово>, history clear, /history, /clear-history")
	fmt.Fprintln(c.out, "ВЫХОД:     /quit или /exit")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
