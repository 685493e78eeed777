package term

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var CmdDesc = map[string][2]string{
	"sign-in":      {"", "sign in to an account"},
	"register":     {"", "create a new account"},
	"sign-out":     {"", "sign out of the current account"},
	"whoami":       {"", "show the signed-in account"},
	"feed":         {"f", "browse the post feed"},
	"show":         {"", "read a post with its comments"},
	"new":          {"n", "write a new post"},
	"comment":      {"", "comment on a post"},
	"edit-comment": {"", "edit one of your comments"},
	"like":         {"", "like a post"},
	"publish":      {"pub", "publish one of your drafts"},
	"edit":         {"e", "edit one of your posts"},
	"rm":           {"", "delete one of your posts"},
	"profile":      {"pf", "show your profile and posts"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" blog %s ", cmd)

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func MoveUpLines(numLines int) {
	fmt.Printf("\033[%dA", numLines)
}

func PageOutput(output string) {
	cmd := exec.Command("less", "-R")
	cmd.Env = append(os.Environ(), "LESS=FRX", "LESSCHARSET=utf-8")
	cmd.Stdin = strings.NewReader(output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to page output:", err)
	}
}

func GetDivisionLine() string {
	return strings.Repeat("─", getTerminalWidth())
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// not a tty, default width
		return 80
	}
	return width
}
